package types

import "github.com/google/gapid/core/data/compare"

// init registers a custom comparator for *Type with core/data/compare, the
// same way core/text/parse registers one for parse.Error. Without this, a
// test's assert.DeepEquals would walk the unexported arena-id and pointer
// fields of two structurally-equivalent-but-not-identical Types and report
// spurious differences; with it, DeepEquals on a Type tree means the same
// thing as Equivalent.
func init() {
	compare.Register(func(c compare.Comparator, reference, value *Type) {
		if !Equivalent(reference, value) {
			c.AddDiff(reference, value)
		}
	})
}
