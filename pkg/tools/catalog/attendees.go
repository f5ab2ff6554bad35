package catalog

import "net/http"

var attendeeDescriptors = []Descriptor{
	{
		Name:        "list_attendees",
		Description: "List all known chat attendees (contacts) across connected platforms.",
		Method:      http.MethodGet,
		Path:        "/chat_attendees",
		Params:      attendeePage(),
		Scope:       ScopeExplicit,
	},
	{
		Name:        "list_messages_by_attendee",
		Description: "List all messages from a specific attendee.",
		Method:      http.MethodGet,
		Path:        "/chat_attendees/{sender_id}/messages",
		Params: params(
			[]Param{pathParam("sender_id", "The attendee's Unipile ID or provider_id")},
			attendeePage(),
			[]Param{
				queryParam("before", "Only messages before this ISO8601 datetime"),
				queryParam("after", "Only messages after this ISO8601 datetime"),
			},
		),
		Scope: ScopeExplicit,
	},
	{
		Name:        "get_attendee",
		Description: "Get details of a single chat attendee.",
		Method:      http.MethodGet,
		Path:        "/chat_attendees/{attendee_id}",
		Params:      []Param{pathParam("attendee_id", "The attendee ID")},
	},
	{
		Name:        "get_attendee_picture",
		Description: "Get an attendee's profile picture. Returns {content_type, size_bytes, data_base64}.",
		Method:      http.MethodGet,
		Path:        "/chat_attendees/{attendee_id}/picture",
		Params:      []Param{pathParam("attendee_id", "The attendee ID")},
		Mode:        Binary,
	},
	{
		Name:        "list_chats_by_attendee",
		Description: "List all chats that a specific attendee is part of.",
		Method:      http.MethodGet,
		Path:        "/chat_attendees/{attendee_id}/chats",
		Params:      params([]Param{pathParam("attendee_id", "The attendee ID")}, page()),
		Scope:       ScopeExplicit,
	},
	{
		Name:        "add_message_reaction",
		Description: "Add a reaction to a message.",
		Method:      http.MethodPost,
		Path:        "/messages/{message_id}/reactions",
		Params: []Param{
			pathParam("message_id", "The message ID to react to"),
			requiredBody("reaction", "The reaction emoji or type"),
		},
	},
}

func attendeePage() []Param {
	limit := limitParam("Max results per page (1-250, default 50)")
	limit.Max = maxAttendeePage

	return []Param{limit, cursorParam()}
}
