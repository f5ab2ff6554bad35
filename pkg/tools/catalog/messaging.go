package catalog

import (
	"net/http"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

var messagingDescriptors = []Descriptor{
	{
		Name:        "list_chats",
		Description: "List message conversations across ALL connected platforms. Pass account_id to restrict to one account.",
		Method:      http.MethodGet,
		Path:        "/chats",
		Params: params(page(), []Param{
			{Name: "unread_only", Type: TypeBoolean, In: Local, Default: false, Description: "Only return chats with unread messages"},
		}),
		Scope: ScopeExplicit,
		Shape: unreadOnly,
	},
	{
		Name:        "get_chat",
		Description: "Get details for a specific chat conversation.",
		Method:      http.MethodGet,
		Path:        "/chats/{chat_id}",
		Params:      []Param{pathParam("chat_id", "The chat/conversation ID")},
	},
	{
		Name:        "sync_chat",
		Description: "Sync a chat to get the latest messages and state.",
		Method:      http.MethodGet,
		Path:        "/chats/{chat_id}/sync",
		Params:      []Param{pathParam("chat_id", "The chat/conversation ID to sync")},
	},
	{
		Name:        "update_chat",
		Description: "Update chat settings (archive, mute, mark read/unread).",
		Method:      http.MethodPatch,
		Path:        "/chats/{chat_id}",
		Params: []Param{
			pathParam("chat_id", "The chat/conversation ID"),
			bodyFlag("archived", "True to archive, false to unarchive"),
			bodyFlag("muted", "True to mute notifications"),
			bodyFlag("read", "True to mark as read"),
		},
	},
	{
		Name:        "list_chat_attendees",
		Description: "List participants in a specific chat.",
		Method:      http.MethodGet,
		Path:        "/chats/{chat_id}/attendees",
		Params:      []Param{pathParam("chat_id", "The chat/conversation ID")},
	},
	{
		Name:        "get_chat_messages",
		Description: "Get messages from a specific chat (works for any platform).",
		Method:      http.MethodGet,
		Path:        "/chats/{chat_id}/messages",
		Params:      params([]Param{pathParam("chat_id", "The chat/conversation ID (from list_chats)")}, page()),
	},
	{
		Name:        "get_message",
		Description: "Get a specific message by ID.",
		Method:      http.MethodGet,
		Path:        "/messages/{message_id}",
		Params:      []Param{pathParam("message_id", "The message ID")},
	},
	{
		Name:        "send_message",
		Description: "Send a message in an existing chat. The platform is determined by the chat_id.",
		Method:      http.MethodPost,
		Path:        "/chats/{chat_id}/messages",
		Params: []Param{
			pathParam("chat_id", "The chat/conversation ID (from list_chats)"),
			requiredBody("text", "The message content to send"),
		},
	},
	{
		Name:        "forward_message",
		Description: "Forward a message to another chat.",
		Method:      http.MethodPost,
		Path:        "/messages/{message_id}/forward",
		Params: []Param{
			pathParam("message_id", "The message ID to forward"),
			requiredBody("chat_id", "The target chat ID to forward to"),
		},
	},
	{
		Name:        "get_message_attachment",
		Description: "Download a message attachment. Returns {content_type, size_bytes, data_base64}.",
		Method:      http.MethodGet,
		Path:        "/messages/{message_id}/attachment",
		Params:      []Param{pathParam("message_id", "The message ID containing the attachment")},
		Mode:        Binary,
	},
	{
		Name:        "start_chat",
		Description: "Start a new conversation on any connected platform. LinkedIn takes provider IDs, WhatsApp takes phone numbers with country code.",
		Method:      http.MethodPost,
		Path:        "/chats",
		Params: []Param{
			{Name: "attendees_ids", Type: TypeStrings, In: InBody, Required: true, Description: "Provider IDs or phone numbers"},
			requiredBody("text", "The initial message content"),
		},
		Scope: ScopeMessaging,
	},
	{
		Name:        "list_all_messages",
		Description: "List messages across all chats (cross-chat search).",
		Method:      http.MethodGet,
		Path:        "/messages",
		Params: params(page(), []Param{
			queryParam("before", "Only messages before this ISO8601 datetime"),
			queryParam("after", "Only messages after this ISO8601 datetime"),
			queryParam("sender_id", "Filter by sender provider ID"),
		}),
		Scope: ScopeExplicit,
	},
	{
		Name:        "delete_chat",
		Description: "Delete a chat conversation.",
		Method:      http.MethodDelete,
		Path:        "/chats/{chat_id}",
		Params:      []Param{pathParam("chat_id", "The chat ID to delete")},
	},
	{
		Name:        "delete_message",
		Description: "Delete a specific message.",
		Method:      http.MethodDelete,
		Path:        "/messages/{message_id}",
		Params:      []Param{pathParam("message_id", "The message ID to delete")},
	},
}

// unreadOnly sends unread=true only when the filter is switched on.
func unreadOnly(args utils.Args, call *unipile.Call, _ Options) error {
	unread, err := args.Bool("unread_only", false)
	if err != nil {
		return err
	}

	if unread {
		call.Query["unread"] = "true"
	}

	return nil
}
