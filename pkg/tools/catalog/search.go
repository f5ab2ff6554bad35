package catalog

import (
	"net/http"
	"strings"

	"github.com/theapemachine/mcp-server-unipile/pkg/tools/utils"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

const searchPath = "/linkedin/search"

var searchDescriptors = []Descriptor{
	{
		Name:        "search_people",
		Description: "Search for people on LinkedIn using Classic LinkedIn filters. Use get_search_params to find valid IDs for location, industry and company.",
		Method:      http.MethodPost,
		Path:        searchPath,
		Params:      params(peopleFilters(), searchPage(maxClassicSearch)),
		Scope:       ScopeLinkedIn,
		Fixed:       map[string]any{"api": "classic", "category": "people"},
	},
	{
		Name:        "search_people_sales_nav",
		Description: "Search for people using LinkedIn Sales Navigator (requires a Sales Navigator subscription).",
		Method:      http.MethodPost,
		Path:        searchPath,
		Params: params(peopleFilters(), []Param{
			{Name: "tenure", Type: TypeObject, In: InBody, Item: Range{}, Description: "Years at current company, e.g. {\"min\": 1, \"max\": 5}"},
			bodyStrings("seniority_level", "Job levels (e.g. Director, VP, CXO)"),
			bodyStrings("function", "Job functions (e.g. Engineering, Sales)"),
			{Name: "company_headcount", Type: TypeObjects, In: InBody, Item: Range{}, Description: "Company size ranges"},
			bodyFlag("changed_jobs", "True to find people who recently changed jobs"),
			bodyFlag("posted_on_linkedin", "True to find active posters"),
		}, salesNavPage()),
		Scope: ScopeLinkedIn,
		Fixed: map[string]any{"api": "sales_navigator", "category": "people"},
	},
	{
		Name:        "search_companies",
		Description: "Search for companies on LinkedIn.",
		Method:      http.MethodPost,
		Path:        searchPath,
		Params: params([]Param{
			bodyParam("keywords", "Company name or description keywords"),
			bodyStrings("industry", "List of industry IDs"),
			bodyStrings("location", "List of location IDs (headquarters)"),
			{Name: "headcount_min", Type: TypeInteger, In: Local, Description: "Minimum employee count"},
			{Name: "headcount_max", Type: TypeInteger, In: Local, Description: "Maximum employee count"},
			bodyFlag("has_job_offers", "True to find companies currently hiring"),
		}, searchPage(maxClassicSearch)),
		Scope: ScopeLinkedIn,
		Fixed: map[string]any{"api": "classic", "category": "companies"},
		Shape: headcount,
	},
	{
		Name:        "search_posts",
		Description: "Search for LinkedIn posts and content.",
		Method:      http.MethodPost,
		Path:        searchPath,
		Params: params([]Param{
			requiredBody("keywords", "Content keywords to search for"),
			{Name: "sort_by", Type: TypeString, In: InBody, Enum: []string{"relevance", "date"}, Description: "relevance or date"},
			{Name: "date_posted", Type: TypeString, In: InBody, Enum: []string{"past_day", "past_week", "past_month"}, Description: "past_day, past_week or past_month"},
			{Name: "content_type", Type: TypeString, In: InBody, Enum: []string{"videos", "images", "documents"}, Description: "videos, images or documents"},
		}, searchPage(maxClassicSearch)),
		Scope: ScopeLinkedIn,
		Fixed: map[string]any{"api": "classic", "category": "posts"},
	},
	{
		Name:        "get_search_params",
		Description: "Get valid parameter IDs for LinkedIn search filters.",
		Method:      http.MethodGet,
		Path:        searchPath + "/parameters",
		Params: []Param{
			{
				Name:        "param_type",
				Key:         "type",
				Type:        TypeString,
				In:          InQuery,
				Required:    true,
				Description: "Parameter type: LOCATION, INDUSTRY, COMPANY, SCHOOL, PEOPLE, JOB_FUNCTION, JOB_TITLE, SKILL, REGION, etc.",
			},
			{Name: "query", Key: "q", Type: TypeString, In: InQuery, Description: "Optional search string to filter results"},
		},
		Scope: ScopeLinkedIn,
		Shape: upperParamType,
	},
}

func peopleFilters() []Param {
	return []Param{
		bodyParam("keywords", "Free text search (name, title, company, etc.)"),
		bodyStrings("location", "List of location IDs"),
		bodyStrings("industry", "List of industry IDs"),
		bodyStrings("company", "List of current company IDs"),
		bodyStrings("past_company", "List of past company IDs"),
		{Name: "network_distance", Type: TypeIntegers, In: InBody, Description: "Connection degree [1, 2, 3]"},
		bodyStrings("profile_language", "ISO language codes (e.g. [\"en\"])"),
	}
}

func salesNavPage() []Param {
	limits := searchPage(maxSalesNavSearch)
	limits[0].Description = "Max results (1-100, default 25)"

	return limits
}

// headcount combines the optional bounds into a single {min, max} range.
func headcount(args utils.Args, call *unipile.Call, _ Options) error {
	bounds := map[string]any{}

	for key, name := range map[string]string{"min": "headcount_min", "max": "headcount_max"} {
		if !args.Has(name) {
			continue
		}

		n, err := args.Int(name, false)
		if err != nil {
			return err
		}

		bounds[key] = n
	}

	if len(bounds) > 0 {
		call.Body["headcount"] = bounds
	}

	return nil
}

func upperParamType(_ utils.Args, call *unipile.Call, _ Options) error {
	if t, ok := call.Query["type"].(string); ok {
		call.Query["type"] = strings.ToUpper(t)
	}

	return nil
}
