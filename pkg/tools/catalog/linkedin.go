package catalog

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// maxInvitationMessage is LinkedIn's limit on connection request notes.
const maxInvitationMessage = 300

// ErrInvitationTooLong is reported before any request is made.
var ErrInvitationTooLong = errors.New("invitation message exceeds 300 characters")

// invitationTooLongMessage is the text the caller sees for ErrInvitationTooLong.
const invitationTooLongMessage = "Invitation message must be 300 characters or less"

var invitationDescriptors = []Descriptor{
	{
		Name:        "send_invitation",
		Description: "Send a LinkedIn connection request.",
		Method:      http.MethodPost,
		Path:        "/users/invite",
		Params: []Param{
			requiredBody("provider_id", "LinkedIn provider ID of the person to connect with"),
			bodyParam("message", "Optional personalized message (max 300 characters)"),
		},
		Scope: ScopeLinkedIn,
		Shape: invitationLength,
	},
	{
		Name:        "list_invitations_sent",
		Description: "List pending outbound LinkedIn connection requests.",
		Method:      http.MethodGet,
		Path:        "/users/invite/sent",
		Params:      page(),
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "list_invitations_received",
		Description: "List inbound LinkedIn connection requests.",
		Method:      http.MethodGet,
		Path:        "/users/invite/received",
		Params:      page(),
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "accept_invitation",
		Description: "Accept a received LinkedIn connection request.",
		Method:      http.MethodPost,
		Path:        "/users/invite/received/{invitation_id}",
		Params:      []Param{pathParam("invitation_id", "The invitation ID (from list_invitations_received)")},
		Scope:       ScopeLinkedIn,
		Fixed:       map[string]any{"action": "accept"},
	},
	{
		Name:        "decline_invitation",
		Description: "Decline a received LinkedIn connection request.",
		Method:      http.MethodPost,
		Path:        "/users/invite/received/{invitation_id}",
		Params:      []Param{pathParam("invitation_id", "The invitation ID (from list_invitations_received)")},
		Scope:       ScopeLinkedIn,
		Fixed:       map[string]any{"action": "decline"},
	},
	{
		Name:        "cancel_invitation",
		Description: "Withdraw a sent LinkedIn connection request.",
		Method:      http.MethodDelete,
		Path:        "/users/invite/{invitation_id}",
		Params:      []Param{pathParam("invitation_id", "The invitation ID (from list_invitations_sent)")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "list_relations",
		Description: "List your 1st degree LinkedIn connections.",
		Method:      http.MethodGet,
		Path:        "/users/relations",
		Params:      page(),
		Scope:       ScopeLinkedIn,
	},
}

var inmailDescriptors = []Descriptor{
	{
		Name:        "send_inmail",
		Description: "Send InMail to non-connections (requires LinkedIn Premium or Sales Navigator).",
		Method:      http.MethodPost,
		Path:        "/chats",
		Params: []Param{
			{Name: "attendees_ids", Type: TypeStrings, In: InBody, Required: true, Description: "List of LinkedIn provider IDs"},
			requiredBody("subject", "InMail subject line"),
			requiredBody("text", "Message body"),
		},
		Scope: ScopeLinkedIn,
		Fixed: map[string]any{"linkedin": map[string]any{"inmail": true}},
	},
	{
		Name:        "get_inmail_credits",
		Description: "Check remaining LinkedIn InMail credits.",
		Method:      http.MethodGet,
		Path:        "/linkedin/inmail_balance",
		Scope:       ScopeLinkedIn,
	},
}

var postDescriptors = []Descriptor{
	{
		Name:        "get_post",
		Description: "Get a specific LinkedIn post by ID.",
		Method:      http.MethodGet,
		Path:        "/posts/{post_id}",
		Params:      []Param{pathParam("post_id", "The post ID")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "create_post",
		Description: "Create a new LinkedIn post.",
		Method:      http.MethodPost,
		Path:        "/posts",
		Params:      []Param{requiredBody("text", "The post content text")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "list_post_comments",
		Description: "List comments on a LinkedIn post.",
		Method:      http.MethodGet,
		Path:        "/posts/{post_id}/comments",
		Params:      params([]Param{pathParam("post_id", "The post ID")}, page()),
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "comment_on_post",
		Description: "Comment on a LinkedIn post.",
		Method:      http.MethodPost,
		Path:        "/posts/{post_id}/comments",
		Params: []Param{
			pathParam("post_id", "The post ID to comment on"),
			requiredBody("text", "The comment text"),
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "react_to_post",
		Description: "React to a LinkedIn post.",
		Method:      http.MethodPost,
		Path:        "/posts/{post_id}/reactions",
		Params: []Param{
			pathParam("post_id", "The post ID to react to"),
			{
				Name:        "reaction_type",
				Type:        TypeString,
				In:          InBody,
				Default:     "LIKE",
				Enum:        []string{"LIKE", "CELEBRATE", "SUPPORT", "FUNNY", "LOVE", "INSIGHTFUL", "CURIOUS"},
				Description: "Reaction type (default LIKE)",
			},
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "list_post_reactions",
		Description: "List reactions on a LinkedIn post.",
		Method:      http.MethodGet,
		Path:        "/posts/{post_id}/reactions",
		Params:      params([]Param{pathParam("post_id", "The post ID")}, page()),
		Scope:       ScopeLinkedIn,
	},
}

func invitationLength(_ utils.Args, call *unipile.Call, _ Options) error {
	if message, ok := call.Body["message"].(string); ok && utf8.RuneCountInString(message) > maxInvitationMessage {
		return ErrInvitationTooLong
	}

	return nil
}
