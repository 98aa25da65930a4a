package adorn

import "strings"

// GlobalContext is the default resolution context. Middlewares registered
// without a scope path match every requested context, including this one.
const GlobalContext = ""

// splitContext splits a dot-delimited context path into its segments. The
// global context has no segments.
func splitContext(context string) []string {
	if context == GlobalContext {
		return nil
	}

	return strings.Split(context, ".")
}

// contextMatches reports whether a registered scope path applies to the
// requested segments. A global record always matches. A scoped record
// matches when its path is no longer than the request and each of its
// segments is the wildcard token or equals the requested segment at the
// same position; requested segments beyond the registered path are
// unconstrained.
func contextMatches(registered, requested []string) bool {
	if registered == nil {
		return true
	}

	if len(registered) > len(requested) {
		return false
	}

	for i, segment := range registered {
		if segment != Wildcard && segment != requested[i] {
			return false
		}
	}

	return true
}
