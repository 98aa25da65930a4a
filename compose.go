package adorn

// Compose applies transforms to seed right-to-left: the last transform is
// applied first and the first transform wraps the rest.
//
// Compose(v, f1, f2, f3) behaves as f1(f2(f3(v))). Compose(v) returns v.
func Compose(seed any, transforms ...Factory) any {
	for i := len(transforms) - 1; i >= 0; i-- {
		seed = transforms[i].Wrap(seed)
	}

	return seed
}
