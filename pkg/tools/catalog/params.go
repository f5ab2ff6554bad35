package catalog

const (
	defaultPageSize   = 50
	defaultSearchSize = 25
	maxClassicSearch  = 50
	maxSalesNavSearch = 100
	maxAttendeePage   = 250
)

func pathParam(name, description string) Param {
	return Param{Name: name, Type: TypeString, In: InPath, Required: true, Description: description}
}

func queryParam(name, description string) Param {
	return Param{Name: name, Type: TypeString, In: InQuery, Description: description}
}

func bodyParam(name, description string) Param {
	return Param{Name: name, Type: TypeString, In: InBody, Description: description}
}

func requiredBody(name, description string) Param {
	return Param{Name: name, Type: TypeString, In: InBody, Required: true, Description: description}
}

func bodyFlag(name, description string) Param {
	return Param{Name: name, Type: TypeBoolean, In: InBody, Description: description}
}

func bodyStrings(name, description string) Param {
	return Param{Name: name, Type: TypeStrings, In: InBody, Description: description}
}

func limitParam(description string) Param {
	return Param{
		Name:        "limit",
		Type:        TypeInteger,
		In:          InQuery,
		Default:     defaultPageSize,
		Description: description,
	}
}

func cursorParam() Param {
	return queryParam("cursor", "Pagination cursor from a previous response")
}

// page is the limit and cursor pair shared by every paginated listing.
func page() []Param {
	return []Param{limitParam("Max results per page (default 50)"), cursorParam()}
}

// searchPage is the body-carried limit and cursor of LinkedIn search.
func searchPage(max int) []Param {
	return []Param{
		{
			Name:        "limit",
			Type:        TypeInteger,
			In:          InBody,
			Default:     defaultSearchSize,
			Max:         max,
			Description: "Max results (default 25)",
		},
		bodyParam("cursor", "Pagination cursor from a previous response"),
	}
}

func params(groups ...[]Param) []Param {
	var out []Param
	for _, group := range groups {
		out = append(out, group...)
	}
	return out
}
