package adorn

// MiddlewareQuery defines criteria for querying registered middlewares.
type MiddlewareQuery struct {
	// Context filters to middlewares matching a dot-delimited context
	// path. nil matches all scopes; a pointer to the empty string matches
	// the global context only.
	Context *string

	// Name filters by middleware name. Empty string matches all names.
	Name string

	// Anchored filters by whether the middleware declares a wildcard
	// anchor. nil matches both.
	Anchored *bool
}

// Query returns the middlewares matching the query criteria, in current
// registry order.
//
// Example:
//
//	// Find all anchored middlewares scoped to "Site.Page"
//	anchored := true
//	context := "Site.Page"
//	results := adorn.Query(r, adorn.MiddlewareQuery{
//	    Context:  &context,
//	    Anchored: &anchored,
//	})
func Query(r Registry, query MiddlewareQuery) []*Middleware {
	candidates := r.Middlewares()
	if query.Context != nil {
		candidates = r.MatchesForContext(*query.Context)
	}

	var results []*Middleware

	for _, record := range candidates {
		if query.Name != "" && record.Name() != query.Name {
			continue
		}

		if query.Anchored != nil && record.anchored() != *query.Anchored {
			continue
		}

		results = append(results, record)
	}

	return results
}

// QueryNames returns the names of middlewares matching the query criteria.
func QueryNames(r Registry, query MiddlewareQuery) []string {
	return recordNames(Query(r, query))
}

// FindByName returns all middlewares registered under a name. More than
// one record may share a name; they occupy a single ordering identity.
func FindByName(r Registry, name string) []*Middleware {
	return Query(r, MiddlewareQuery{Name: name})
}

// FindAnchored returns all middlewares pulled to an end of the chain by a
// wildcard priority.
func FindAnchored(r Registry) []*Middleware {
	anchored := true

	return Query(r, MiddlewareQuery{Anchored: &anchored})
}
