package adorn

// wildcardKind identifies which priority key, if any, carries a wildcard
// anchor.
type wildcardKind int

const (
	wildcardNone wildcardKind = iota
	wildcardBefore
	wildcardAfter
)

// validateMeta checks that the priority declarations of a registration
// are well-formed. Pure check; runs before normalization.
func validateMeta(meta Meta) error {
	if err := validatePriority("before", meta.Before); err != nil {
		return err
	}

	return validatePriority("after", meta.After)
}

func validatePriority(key string, priority Priority) error {
	for _, name := range priority {
		if name == "" {
			return ErrInvalidPriority(key, "entries must be non-empty names")
		}
	}

	return nil
}

// wildcardPriority inspects a record's normalized priorities for the
// wildcard token and reports which key declared it. A wildcard must be
// the sole entry of its key and must not be combined with any explicit
// priority on the other key. Idempotent and side-effect-free: it runs
// once per record on every sort.
func wildcardPriority(m *Middleware) (wildcardKind, error) {
	before := containsName(m.before, Wildcard)
	after := containsName(m.after, Wildcard)

	if before && len(m.before) > 1 {
		return wildcardNone, ErrWildcardNotAlone("before")
	}

	if after && len(m.after) > 1 {
		return wildcardNone, ErrWildcardNotAlone("after")
	}

	if before && after {
		return wildcardNone, ErrWildcardConflict(m.name)
	}

	if before && len(m.after) > 0 {
		return wildcardNone, ErrWildcardConflict(m.name)
	}

	if after && len(m.before) > 0 {
		return wildcardNone, ErrWildcardConflict(m.name)
	}

	switch {
	case before:
		return wildcardBefore, nil
	case after:
		return wildcardAfter, nil
	default:
		return wildcardNone, nil
	}
}

func containsName(names []string, target string) bool {
	for _, name := range names {
		if name == target {
			return true
		}
	}

	return false
}
