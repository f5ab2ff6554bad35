package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools"
	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// Location is where an argument ends up in the request.
type Location int

const (
	InPath Location = iota
	InQuery
	InBody
	// Local arguments are read only by the descriptor's Shaper.
	Local
)

// Type is the JSON type an argument is accepted as.
type Type int

const (
	TypeString Type = iota
	TypeInteger
	TypeBoolean
	TypeStrings
	TypeIntegers
	TypeObject
	TypeObjects
)

/*
Scope decides which account id, if any, accompanies a call. The explicit,
messaging and mail scopes expose an optional account_id argument; only the
last two fall back to a configured default when it is omitted.
*/
type Scope int

const (
	ScopeNone Scope = iota
	ScopeExplicit
	ScopeMessaging
	ScopeMail
	ScopeLinkedIn
)

// Mode selects how a successful response is decoded.
type Mode int

const (
	Structured Mode = iota
	Binary
)

// Param declares one tool argument and its destination.
type Param struct {
	Name        string
	Key         string
	Type        Type
	In          Location
	Required    bool
	Description string
	Default     any
	Enum        []string // advertised in the schema only, the backend validates
	Max         int
	KeepEmpty   bool
	Item        any
}

// key is the wire name of the argument.
func (p Param) key() string {
	if p.Key != "" {
		return p.Key
	}

	return p.Name
}

// Options are the connection-wide values some descriptors read.
type Options struct {
	BaseURL           string
	LinkedInAccountID string
	EmailAccountID    string
}

// Shaper rewrites an assembled call for endpoints whose body is not a flat copy of the arguments.
type Shaper func(args utils.Args, call *unipile.Call, opts Options) error

// Descriptor is the static definition of one tool's HTTP shape.
type Descriptor struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
	Scope       Scope
	Mode        Mode
	Fixed       map[string]any
	Shape       Shaper
}

func (d Descriptor) hasBody() bool {
	if len(d.Fixed) > 0 {
		return true
	}

	for _, p := range d.Params {
		if p.In == InBody {
			return true
		}
	}

	return false
}

/*
Assemble turns the arguments of one invocation into a gateway call. Absent
optionals are dropped, defaults filled in and numeric limits clamped. Any error
is a caller input error and no request must be made.
*/
func (d Descriptor) Assemble(args utils.Args, opts Options) (unipile.Call, error) {
	call := unipile.Call{
		Method: d.Method,
		Query:  map[string]any{},
		Binary: d.Mode == Binary,
	}

	if d.hasBody() {
		call.Body = make(map[string]any, len(d.Fixed)+len(d.Params))
		for k, v := range d.Fixed {
			call.Body[k] = v
		}
	}

	path := d.Path

	for _, p := range d.Params {
		value, ok, err := p.value(args)
		if err != nil {
			return call, fmt.Errorf("%w: %w", tools.ErrInvalidParams, err)
		}

		if !ok {
			continue
		}

		switch p.In {
		case InPath:
			path = strings.ReplaceAll(path, "{"+p.Name+"}", url.PathEscape(fmt.Sprint(value)))
		case InQuery:
			call.Query[p.key()] = value
		case InBody:
			call.Body[p.key()] = value
		}
	}

	if strings.ContainsAny(path, "{}") {
		return call, fmt.Errorf("%w: unresolved path %s", tools.ErrInvalidParams, path)
	}

	call.Path = path

	accountID, err := d.accountID(args, opts)
	if err != nil {
		return call, fmt.Errorf("%w: %w", tools.ErrInvalidParams, err)
	}

	call.AccountID = accountID

	if d.Shape != nil {
		if err := d.Shape(args, &call, opts); err != nil {
			return call, err
		}
	}

	return call, nil
}

func (d Descriptor) accountID(args utils.Args, opts Options) (string, error) {
	switch d.Scope {
	case ScopeNone:
		return "", nil
	case ScopeLinkedIn:
		return opts.LinkedInAccountID, nil
	}

	explicit, err := args.String(unipile.AccountIDKey, false)
	if err != nil || explicit != "" {
		return explicit, err
	}

	switch d.Scope {
	case ScopeMessaging:
		return opts.LinkedInAccountID, nil
	case ScopeMail:
		return opts.EmailAccountID, nil
	}

	return "", nil
}

// value reads the argument; ok is false when it should be left out of the request.
func (p Param) value(args utils.Args) (any, bool, error) {
	if !args.Has(p.Name) {
		if p.Required {
			return nil, false, fmt.Errorf("missing required parameter: '%s'", p.Name)
		}

		return p.Default, p.Default != nil, nil
	}

	switch p.Type {
	case TypeString:
		s, err := args.String(p.Name, p.Required)
		if err != nil {
			return nil, false, err
		}

		if s == "" {
			return p.Default, p.Default != nil, nil
		}

		return s, true, nil
	case TypeInteger:
		n, err := args.Int(p.Name, p.Required)
		if err != nil {
			return nil, false, err
		}

		if p.Max > 0 && n > p.Max {
			n = p.Max
		}

		return n, true, nil
	case TypeBoolean:
		b, err := args.Bool(p.Name, p.Required)
		return b, err == nil, err
	case TypeStrings:
		list, err := args.Strings(p.Name, p.Required)
		return list, err == nil && (len(list) > 0 || p.KeepEmpty), err
	case TypeIntegers:
		list, err := args.Ints(p.Name, p.Required)
		return list, err == nil && (len(list) > 0 || p.KeepEmpty), err
	case TypeObject:
		m, err := args.Map(p.Name, p.Required)
		return m, err == nil && (len(m) > 0 || p.KeepEmpty), err
	case TypeObjects:
		list, err := args.Objects(p.Name, p.Required)
		return list, err == nil && (len(list) > 0 || p.KeepEmpty), err
	}

	return nil, false, fmt.Errorf("parameter '%s' has an unsupported type", p.Name)
}
