package catalog

import (
	"net/http"
	"strings"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// reconnectExpiry keeps hosted reconnect links valid indefinitely.
const reconnectExpiry = "2099-12-31T23:59:59.999Z"

var accountDescriptors = []Descriptor{
	{
		Name:        "list_accounts",
		Description: "List all connected accounts (LinkedIn, WhatsApp, Email, etc.) with their IDs, types, status and connection details.",
		Method:      http.MethodGet,
		Path:        "/accounts",
	},
	{
		Name:        "get_my_profile",
		Description: "Get the authenticated user's LinkedIn profile: name, headline, summary, experience, education and skills.",
		Method:      http.MethodGet,
		Path:        "/users/me",
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "delete_account",
		Description: "Delete a connected account from Unipile.",
		Method:      http.MethodDelete,
		Path:        "/accounts/{account_id}",
		Params:      []Param{pathParam("account_id", "The account ID to delete")},
	},
	{
		Name:        "reconnect_account",
		Description: "Reconnect a disconnected account via hosted authentication. Returns a URL the user must open in a browser to re-authorize.",
		Method:      http.MethodPost,
		Path:        "/hosted/accounts/link",
		Params: []Param{
			{Name: "account_id", Key: "reconnect_account", Type: TypeString, In: InBody, Required: true, Description: "The account ID to reconnect"},
			bodyParam("google_scopes", "Optional comma-separated Google OAuth scope URLs (max 6)"),
		},
		Fixed: map[string]any{"type": "reconnect", "expiresOn": reconnectExpiry},
		Shape: withHostedAPIURL,
	},
	{
		Name:        "resync_account",
		Description: "Force a full resync of an account's data.",
		Method:      http.MethodGet,
		Path:        "/accounts/{account_id}/resync",
		Params:      []Param{pathParam("account_id", "The account ID to resync")},
	},
	{
		Name:        "get_account",
		Description: "Get details of a single connected account.",
		Method:      http.MethodGet,
		Path:        "/accounts/{account_id}",
		Params:      []Param{pathParam("account_id", "The account ID to retrieve")},
	},
	{
		Name:        "connect_account",
		Description: "Connect a new account using native authentication (username/password).",
		Method:      http.MethodPost,
		Path:        "/accounts",
		Params: []Param{
			requiredBody("provider", "Provider name (e.g. LINKEDIN, WHATSAPP, TELEGRAM, CUSTOM_IMAP)"),
			requiredBody("username", "Account username or email"),
			requiredBody("password", "Account password or app-specific password"),
			bodyParam("imap_host", "IMAP server host (CUSTOM_IMAP only)"),
			{Name: "imap_port", Type: TypeInteger, In: InBody, Description: "IMAP server port (CUSTOM_IMAP only)"},
			bodyParam("smtp_host", "SMTP server host (CUSTOM_IMAP only)"),
			{Name: "smtp_port", Type: TypeInteger, In: InBody, Description: "SMTP server port (CUSTOM_IMAP only)"},
		},
	},
	{
		Name:        "solve_checkpoint",
		Description: "Solve a 2FA/checkpoint challenge during account connection.",
		Method:      http.MethodPost,
		Path:        "/accounts/checkpoint",
		Params: []Param{
			requiredBody("account_id", "The account ID requiring the checkpoint"),
			requiredBody("code", "The verification/2FA code"),
			requiredBody("provider", "Provider name (e.g. LINKEDIN, WHATSAPP)"),
		},
	},
	{
		Name:        "resend_checkpoint",
		Description: "Resend a checkpoint/2FA verification code.",
		Method:      http.MethodPost,
		Path:        "/accounts/checkpoint/resend",
		Params: []Param{
			requiredBody("account_id", "The account ID requiring the checkpoint"),
			requiredBody("provider", "Provider name (e.g. LINKEDIN, WHATSAPP)"),
		},
	},
	{
		Name:        "restart_account",
		Description: "Restart sync processes for an account.",
		Method:      http.MethodPost,
		Path:        "/accounts/{account_id}/restart",
		Params:      []Param{pathParam("account_id", "The account ID to restart")},
	},
}

// withHostedAPIURL points the hosted auth flow at the API root, the base URL minus its /api/ suffix.
func withHostedAPIURL(_ utils.Args, call *unipile.Call, opts Options) error {
	call.Body["api_url"] = hostedAPIURL(opts.BaseURL)
	return nil
}

func hostedAPIURL(baseURL string) string {
	if i := strings.LastIndex(baseURL, "/api/"); i >= 0 {
		return baseURL[:i]
	}

	return baseURL
}
