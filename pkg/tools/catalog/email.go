package catalog

import (
	"net/http"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

var folderDescriptors = []Descriptor{
	{
		Name:        "list_email_folders",
		Description: "List all email folders (inbox, sent, drafts, trash, spam, etc.).",
		Method:      http.MethodGet,
		Path:        "/folders",
		Scope:       ScopeMail,
	},
	{
		Name:        "get_email_folder",
		Description: "Get details of a specific email folder. account_id is required by the API when folder_id is a provider UID.",
		Method:      http.MethodGet,
		Path:        "/folders/{folder_id}",
		Params:      []Param{pathParam("folder_id", "The folder's Unipile ID or provider UID")},
		Scope:       ScopeMail,
	},
}

var emailDescriptors = []Descriptor{
	{
		Name:        "list_emails",
		Description: "List emails from connected email accounts (Gmail, Outlook, IMAP).",
		Method:      http.MethodGet,
		Path:        "/emails",
		Params: []Param{
			{Name: "limit", Type: TypeInteger, In: InQuery, Default: 100, Description: "Max results (default 100)"},
			queryParam("after", "Only emails after this ISO8601 datetime (e.g. 2026-02-01T00:00:00Z)"),
			queryParam("folder", "Filter by folder name (inbox, sent, drafts, etc.)"),
			queryParam("sender", "Filter by sender email address"),
			queryParam("recipient", "Filter by recipient email address"),
		},
		Scope: ScopeMail,
	},
	{
		Name:        "get_email",
		Description: "Get full details of a specific email: attendees, subject, HTML and plain body, attachments, folders, headers.",
		Method:      http.MethodGet,
		Path:        "/emails/{email_id}",
		Params:      []Param{pathParam("email_id", "The email ID")},
	},
	{
		Name:        "send_email",
		Description: "Send an email with optional open/click tracking. Tracking events (mail_opened) arrive through configured webhooks.",
		Method:      http.MethodPost,
		Path:        "/emails",
		Params: params(composeParams(), []Param{
			{Name: "reply_to", Key: "in_reply_to", Type: TypeString, In: InBody, Description: "Email ID to reply to, for threading"},
			{Name: "track_opens", Type: TypeBoolean, In: Local, Default: false, Description: "Enable open tracking via webhooks"},
			{Name: "track_links", Type: TypeBoolean, In: Local, Default: false, Description: "Enable link click tracking via webhooks"},
			{Name: "tracking_label", Type: TypeString, In: Local, Description: "Custom label for webhook correlation (e.g. job-app)"},
		}),
		Scope: ScopeMail,
		Shape: chain(recipients, trackingOptions),
	},
	{
		Name:        "update_email",
		Description: "Update email properties (read status, star, move to folder).",
		Method:      http.MethodPut,
		Path:        "/emails/{email_id}",
		Params: []Param{
			pathParam("email_id", "The email ID"),
			bodyFlag("read", "Mark as read (true) or unread (false)"),
			bodyFlag("starred", "Star or unstar the email"),
			bodyParam("folder", "Move the email to this folder"),
		},
	},
	{
		Name:        "delete_email",
		Description: "Delete an email.",
		Method:      http.MethodDelete,
		Path:        "/emails/{email_id}",
		Params:      []Param{pathParam("email_id", "The email ID to delete")},
	},
	{
		Name:        "get_email_attachment",
		Description: "Download an email attachment. Returns {content_type, size_bytes, data_base64}.",
		Method:      http.MethodGet,
		Path:        "/emails/{email_id}/attachments/{attachment_id}",
		Params: []Param{
			pathParam("email_id", "The email ID"),
			pathParam("attachment_id", "The attachment ID"),
		},
		Mode: Binary,
	},
	{
		Name:        "create_email_draft",
		Description: "Create an email draft (saved but not sent).",
		Method:      http.MethodPost,
		Path:        "/emails/drafts",
		Params:      composeParams(),
		Scope:       ScopeMail,
		Shape:       recipients,
	},
	{
		Name:        "list_email_contacts",
		Description: "List email contacts from connected email accounts.",
		Method:      http.MethodGet,
		Path:        "/emails/contacts",
		Params:      page(),
		Scope:       ScopeMail,
	},
}

func composeParams() []Param {
	return []Param{
		{Name: "to", Type: TypeStrings, In: InBody, Required: true, Description: "Recipient email addresses"},
		requiredBody("subject", "Email subject line"),
		requiredBody("body", "Email body (HTML supported)"),
		bodyStrings("cc", "CC recipients"),
		bodyStrings("bcc", "BCC recipients"),
	}
}

// recipients rewrites plain address lists into the API's [{identifier}] form.
func recipients(_ utils.Args, call *unipile.Call, _ Options) error {
	for _, field := range []string{"to", "cc", "bcc"} {
		addresses, ok := call.Body[field].([]string)
		if !ok {
			continue
		}

		out := make([]map[string]any, 0, len(addresses))
		for _, address := range addresses {
			out = append(out, map[string]any{"identifier": address})
		}

		call.Body[field] = out
	}

	return nil
}

// trackingOptions adds tracking_options when open or link tracking is on.
func trackingOptions(args utils.Args, call *unipile.Call, _ Options) error {
	opens, _ := args.Bool("track_opens", false)
	links, _ := args.Bool("track_links", false)

	if !opens && !links {
		return nil
	}

	tracking := map[string]any{}

	if opens {
		tracking["opens"] = true
	}

	if links {
		tracking["links"] = true
	}

	if label, _ := args.String("tracking_label", false); label != "" {
		tracking["label"] = label
	}

	call.Body["tracking_options"] = tracking

	return nil
}

// chain runs shapers in order, stopping at the first error.
func chain(shapers ...Shaper) Shaper {
	return func(args utils.Args, call *unipile.Call, opts Options) error {
		for _, shape := range shapers {
			if err := shape(args, call, opts); err != nil {
				return err
			}
		}

		return nil
	}
}
