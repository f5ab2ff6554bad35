package catalog

import "net/http"

var webhookDescriptors = []Descriptor{
	{
		Name:        "list_webhooks",
		Description: "List all configured webhooks.",
		Method:      http.MethodGet,
		Path:        "/webhooks",
		Params:      page(),
	},
	{
		Name: "create_webhook",
		Description: "Create a webhook to receive real-time events. " +
			"Messaging: message_received, message_sent, message_read, message_deleted. " +
			"Email: mail_received, mail_sent, mail_opened. " +
			"Calendar: calendar_event_created, calendar_event_updated, calendar_event_deleted. " +
			"Posts: post_created, post_reaction, post_comment. " +
			"Relations: new_relation, relation_removed. " +
			"Account: creation_success, creation_failure, account_disconnected.",
		Method: http.MethodPost,
		Path:   "/webhooks",
		Params: []Param{
			requiredBody("name", "Webhook name"),
			requiredBody("request_url", "URL to receive webhook POST requests"),
			{Name: "account_ids", Type: TypeStrings, In: InBody, Required: true, Description: "Account IDs to monitor"},
			{Name: "events", Type: TypeStrings, In: InBody, Required: true, Description: "Event types to subscribe to"},
			{Name: "format", Type: TypeString, In: InBody, Default: "json", Enum: []string{"json", "xml"}, Description: "json or xml (default json)"},
			{Name: "headers", Type: TypeObjects, In: InBody, Item: WebhookHeader{}, Description: "Optional custom headers [{key, value}] sent with each webhook request"},
		},
	},
	{
		Name:        "delete_webhook",
		Description: "Delete a webhook.",
		Method:      http.MethodDelete,
		Path:        "/webhooks/{webhook_id}",
		Params:      []Param{pathParam("webhook_id", "The webhook ID to delete")},
	},
}

var advancedDescriptors = []Descriptor{
	{
		Name:        "endorse_skill",
		Description: "Endorse a skill on someone's LinkedIn profile.",
		Method:      http.MethodPost,
		Path:        "/users/{provider_id}/skill/{skill_name}",
		Params: []Param{
			pathParam("provider_id", "The LinkedIn provider ID of the person"),
			pathParam("skill_name", "The skill name to endorse"),
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "raw_linkedin_request",
		Description: "Make a raw LinkedIn API request through Unipile for endpoints not covered by other tools.",
		Method:      http.MethodPost,
		Path:        "/linkedin",
		Params: []Param{
			requiredBody("method", "HTTP method (GET, POST, PUT, DELETE)"),
			requiredBody("request_url", "The LinkedIn API URL path"),
			{Name: "body", Type: TypeObject, In: InBody, Description: "Optional request body"},
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "get_profile_visitors",
		Description: "Get a list of people who recently viewed your LinkedIn profile.",
		Method:      http.MethodGet,
		Path:        "/users/me/profile_visitors",
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "list_user_posts",
		Description: "List posts by a specific LinkedIn user.",
		Method:      http.MethodGet,
		Path:        "/users/{provider_id}/posts",
		Params:      params([]Param{pathParam("provider_id", "The LinkedIn provider ID of the user")}, page()),
		Scope:       ScopeLinkedIn,
	},
}
