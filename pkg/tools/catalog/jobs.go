package catalog

import "net/http"

var jobDescriptors = []Descriptor{
	{
		Name:        "list_jobs",
		Description: "List LinkedIn job postings managed by your account.",
		Method:      http.MethodGet,
		Path:        "/linkedin/jobs",
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "get_job",
		Description: "Get details of a specific LinkedIn job posting.",
		Method:      http.MethodGet,
		Path:        "/linkedin/jobs/{job_id}",
		Params:      []Param{pathParam("job_id", "The job ID")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "create_job",
		Description: "Create a new LinkedIn job posting.",
		Method:      http.MethodPost,
		Path:        "/linkedin/jobs",
		Params: []Param{
			requiredBody("title", "Job title"),
			requiredBody("description", "Job description (HTML supported)"),
			requiredBody("location", "Job location"),
			requiredBody("company_id", "LinkedIn company ID to post under"),
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "edit_job",
		Description: "Edit a LinkedIn job posting. Only the fields provided are changed.",
		Method:      http.MethodPatch,
		Path:        "/linkedin/jobs/{job_id}",
		Params: []Param{
			pathParam("job_id", "The job ID"),
			bodyParam("title", "Updated job title"),
			bodyParam("description", "Updated description"),
			bodyParam("location", "Updated location"),
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "publish_job",
		Description: "Publish a draft LinkedIn job posting.",
		Method:      http.MethodPost,
		Path:        "/linkedin/jobs/{job_id}/publish",
		Params:      []Param{pathParam("job_id", "The job ID to publish")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "close_job",
		Description: "Close an active LinkedIn job posting.",
		Method:      http.MethodPost,
		Path:        "/linkedin/jobs/{job_id}/close",
		Params:      []Param{pathParam("job_id", "The job ID to close")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "get_job_applicants",
		Description: "List applicants for a LinkedIn job posting.",
		Method:      http.MethodGet,
		Path:        "/linkedin/jobs/{job_id}/applicants",
		Params:      params([]Param{pathParam("job_id", "The job ID")}, page()),
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "get_applicant_resume",
		Description: "Download an applicant's resume. Returns {content_type, size_bytes, data_base64}.",
		Method:      http.MethodGet,
		Path:        "/linkedin/jobs/{job_id}/applicants/{applicant_id}/resume",
		Params: []Param{
			pathParam("job_id", "The job ID"),
			pathParam("applicant_id", "The applicant ID"),
		},
		Scope: ScopeLinkedIn,
		Mode:  Binary,
	},
	{
		Name:        "get_job_applicant",
		Description: "Get details of a single job applicant.",
		Method:      http.MethodGet,
		Path:        "/linkedin/jobs/applicants/{applicant_id}",
		Params: []Param{
			pathParam("applicant_id", "The applicant ID"),
			queryParam("service", "Optional service (e.g. LINKEDIN, LINKEDIN_RECRUITER)"),
		},
		Scope: ScopeLinkedIn,
	},
	{
		Name:        "get_hiring_projects",
		Description: "List LinkedIn Recruiter hiring projects.",
		Method:      http.MethodGet,
		Path:        "/linkedin/projects",
		Params:      page(),
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "get_hiring_project",
		Description: "Get details of a single LinkedIn Recruiter hiring project.",
		Method:      http.MethodGet,
		Path:        "/linkedin/projects/{project_id}",
		Params:      []Param{pathParam("project_id", "The hiring project ID")},
		Scope:       ScopeLinkedIn,
	},
	{
		Name:        "perform_linkedin_action",
		Description: "Perform an action on a LinkedIn user (follow, unfollow, block, save lead, etc.).",
		Method:      http.MethodPost,
		Path:        "/linkedin/user/{user_id}",
		Params: []Param{
			pathParam("user_id", "The LinkedIn user/provider ID"),
			{
				Name:        "action",
				Type:        TypeString,
				In:          InBody,
				Required:    true,
				Enum:        []string{"follow", "unfollow", "block", "unblock", "saveLead", "removeLead"},
				Description: "Action to perform",
			},
			{Name: "api", Type: TypeString, In: InBody, Default: "LINKEDIN", Description: "API type (default LINKEDIN, can be LINKEDIN_RECRUITER)"},
		},
		Scope: ScopeMessaging,
	},
	{
		Name:        "solve_job_checkpoint",
		Description: "Solve a checkpoint/verification during LinkedIn job publishing.",
		Method:      http.MethodPost,
		Path:        "/linkedin/jobs/{draft_id}/checkpoint",
		Params: []Param{
			pathParam("draft_id", "The draft job ID that requires verification"),
			{Name: "input_value", Key: "input", Type: TypeString, In: InBody, Required: true, Description: "The verification input (e.g. confirmation code)"},
		},
		Scope: ScopeLinkedIn,
	},
}
