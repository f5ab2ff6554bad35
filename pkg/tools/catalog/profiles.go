package catalog

import (
	"net/http"
	"strings"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

var profileDescriptors = []Descriptor{
	{
		Name:        "get_profile",
		Description: "Get a LinkedIn user's full profile.",
		Method:      http.MethodGet,
		Path:        "/users/{provider_id}",
		Params: []Param{
			pathParam("provider_id", "The LinkedIn provider ID"),
			{
				Name:        "sections",
				Type:        TypeStrings,
				In:          InQuery,
				Description: "Optional sections: about, experience, education, skills, certifications, languages, projects, recommendations_received",
			},
		},
		Scope: ScopeLinkedIn,
		Shape: joinSections,
	},
	{
		Name:        "get_company_profile",
		Description: "Get a company's LinkedIn page details.",
		Method:      http.MethodGet,
		Path:        "/linkedin/company/{company_id}",
		Params:      []Param{pathParam("company_id", "The LinkedIn company ID or vanity URL name")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "edit_own_profile",
		Description: "Edit your own LinkedIn profile fields.",
		Method:      http.MethodPatch,
		Path:        "/users/me/edit",
		Params: []Param{
			bodyParam("headline", "New profile headline"),
			bodyParam("summary", "New profile summary/about section"),
			bodyParam("location", "New location string"),
		},
		Scope: ScopeMessaging,
		Fixed: map[string]any{"type": "LINKEDIN"},
	},
	{
		Name:        "list_followers",
		Description: "List your LinkedIn followers.",
		Method:      http.MethodGet,
		Path:        "/users/followers",
		Params:      page(),
		Scope:       ScopeMessaging,
	},
	{
		Name:        "list_following",
		Description: "List LinkedIn users and companies you are following.",
		Method:      http.MethodGet,
		Path:        "/users/following",
		Params:      page(),
		Scope:       ScopeMessaging,
	},
	{
		Name:        "list_user_comments",
		Description: "List comments made by a LinkedIn user.",
		Method:      http.MethodGet,
		Path:        "/users/{identifier}/comments",
		Params:      params([]Param{pathParam("identifier", "The user's LinkedIn provider ID or public identifier")}, page()),
		Scope:       ScopeMessaging,
	},
	{
		Name:        "list_user_reactions",
		Description: "List reactions made by a LinkedIn user.",
		Method:      http.MethodGet,
		Path:        "/users/{identifier}/reactions",
		Params:      params([]Param{pathParam("identifier", "The user's LinkedIn provider ID or public identifier")}, page()),
		Scope:       ScopeMessaging,
	},
}

// joinSections sends the section list as one comma separated value.
func joinSections(_ utils.Args, call *unipile.Call, _ Options) error {
	if sections, ok := call.Query["sections"].([]string); ok {
		call.Query["sections"] = strings.Join(sections, ",")
	}

	return nil
}
