package matcher

import (
	"testing"

	"github.com/conduit-lang/fsmatch/compiler"
)

func FuzzMatches(f *testing.F) {
	f.Add("a*4.+hi", "aaaaaa4uhi")
	f.Add("a*b", "aab")
	f.Add("a+", "aaa")
	f.Add(".+", "😎")
	f.Add("", "")
	f.Add("*a", "a")
	f.Add("a**", "aa")

	f.Fuzz(func(t *testing.T, pattern, candidate string) {
		g, cerrs := compiler.Compile(pattern)
		if len(cerrs) > 0 {
			return // Invalid pattern is acceptable.
		}

		// Matching must not panic, and must be deterministic across
		// repeated calls on the same compiled graph.
		m := New(g)
		first := m.Matches(candidate)
		if second := m.Matches(candidate); second != first {
			t.Errorf("verdict changed between calls: %v then %v (pattern %q, candidate %q)",
				first, second, pattern, candidate)
		}
	})
}
