package catalog

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// EventAttendee is one invitee of a calendar event.
type EventAttendee struct {
	Email       string `json:"email" jsonschema_description:"Attendee email address"`
	DisplayName string `json:"display_name,omitempty" jsonschema_description:"Name shown to other attendees"`
}

// Conference links a calendar event to an online meeting.
type Conference struct {
	Provider string `json:"provider" jsonschema_description:"Conference provider, e.g. google_meet or teams"`
	URL      string `json:"url,omitempty" jsonschema_description:"Join URL"`
}

// WebhookHeader is a custom header sent with every webhook delivery.
type WebhookHeader struct {
	Key   string `json:"key" jsonschema_description:"Header name"`
	Value string `json:"value" jsonschema_description:"Header value"`
}

// Range bounds a numeric search filter such as tenure or headcount.
type Range struct {
	Min int `json:"min,omitempty" jsonschema_description:"Lower bound, inclusive"`
	Max int `json:"max,omitempty" jsonschema_description:"Upper bound, inclusive"`
}

var reflector = &jsonschema.Reflector{
	DoNotReference:            true,
	ExpandedStruct:            true,
	AllowAdditionalProperties: true,
}

// reflectSchema renders prototype as an inline JSON schema map.
func reflectSchema(prototype any) map[string]any {
	raw, err := json.Marshal(reflector.Reflect(prototype))
	if err != nil {
		return map[string]any{"type": "object"}
	}

	var schema map[string]any
	if err := json.Unmarshal(raw, &schema); err != nil {
		return map[string]any{"type": "object"}
	}

	delete(schema, "$schema")
	delete(schema, "$id")

	return schema
}

// option renders the parameter as an mcp-go tool option.
func (p Param) option() mcp.ToolOption {
	props := []mcp.PropertyOption{mcp.Description(p.Description)}

	if p.Required {
		props = append(props, mcp.Required())
	}

	if len(p.Enum) > 0 {
		props = append(props, mcp.Enum(p.Enum...))
	}

	switch p.Type {
	case TypeInteger:
		if n, ok := p.Default.(int); ok {
			props = append(props, mcp.DefaultNumber(float64(n)))
		}

		if p.Max > 0 {
			props = append(props, mcp.Max(float64(p.Max)))
		}

		return mcp.WithNumber(p.Name, props...)
	case TypeBoolean:
		if b, ok := p.Default.(bool); ok {
			props = append(props, mcp.DefaultBool(b))
		}

		return mcp.WithBoolean(p.Name, props...)
	case TypeStrings:
		return withSchema(p.Name, arraySchema(map[string]any{"type": "string"}), props...)
	case TypeIntegers:
		return withSchema(p.Name, arraySchema(map[string]any{"type": "integer"}), props...)
	case TypeObject:
		schema := map[string]any{"type": "object"}
		if p.Item != nil {
			if properties, ok := reflectSchema(p.Item)["properties"].(map[string]any); ok {
				schema["properties"] = properties
			}
		}

		return withSchema(p.Name, schema, props...)
	case TypeObjects:
		items := map[string]any{"type": "object"}
		if p.Item != nil {
			items = reflectSchema(p.Item)
		}

		return withSchema(p.Name, arraySchema(items), props...)
	}

	if s, ok := p.Default.(string); ok {
		props = append(props, mcp.DefaultString(s))
	}

	return mcp.WithString(p.Name, props...)
}

func arraySchema(items map[string]any) map[string]any {
	return map[string]any{"type": "array", "items": items}
}

// withSchema adds a property with a prebuilt schema, for the array and object
// types mcp-go has no helper for. Property options apply as they do for WithString.
func withSchema(name string, schema map[string]any, opts ...mcp.PropertyOption) mcp.ToolOption {
	return func(t *mcp.Tool) {
		for _, opt := range opts {
			opt(schema)
		}

		if required, ok := schema["required"].(bool); ok {
			delete(schema, "required")

			if required {
				t.InputSchema.Required = append(t.InputSchema.Required, name)
			}
		}

		if t.InputSchema.Properties == nil {
			t.InputSchema.Properties = map[string]interface{}{}
		}

		t.InputSchema.Properties[name] = schema
	}
}

func accountOption(scope Scope) (mcp.ToolOption, bool) {
	var description string

	switch scope {
	case ScopeExplicit:
		description = "Optional account ID to restrict the call to. Omit to cover all connected accounts."
	case ScopeMessaging:
		description = "Optional account ID. Defaults to the configured LinkedIn account."
	case ScopeMail:
		description = "Optional account ID. Defaults to the configured email account."
	default:
		return nil, false
	}

	return mcp.WithString(unipile.AccountIDKey, mcp.Description(description)), true
}

// handle builds the MCP tool definition for d.
func (d Descriptor) handle() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.Description)}

	for _, p := range d.Params {
		opts = append(opts, p.option())
	}

	if opt, ok := accountOption(d.Scope); ok {
		opts = append(opts, opt)
	}

	return mcp.NewTool(d.Name, opts...)
}
