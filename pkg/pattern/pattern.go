// Package pattern is the public surface of fsmatch: compile a pattern
// expression once, then match it against any number of candidate strings.
//
// The pattern language is deliberately small: literal characters, '.'
// matching any single character, and the postfix quantifiers '*' (zero or
// more) and '+' (one or more). There is no escaping, so '.', '*' and '+'
// can never be matched literally.
package pattern

import (
	"github.com/conduit-lang/fsmatch/automaton"
	"github.com/conduit-lang/fsmatch/compiler"
	"github.com/conduit-lang/fsmatch/matcher"
)

// Pattern is a compiled pattern. It is immutable and safe for concurrent
// use by multiple goroutines.
type Pattern struct {
	source  string
	graph   *automaton.Graph
	matcher *matcher.Matcher
}

// Compile builds a pattern. The returned error, if any, is a
// compiler/errors.CompileError describing the first problem found.
func Compile(source string) (*Pattern, error) {
	g, cerrs := compiler.Compile(source)
	if len(cerrs) > 0 {
		return nil, cerrs[0]
	}
	return &Pattern{
		source:  source,
		graph:   g,
		matcher: matcher.New(g),
	}, nil
}

// MustCompile is like Compile but panics on error. It simplifies safe
// initialization of package-level pattern variables.
func MustCompile(source string) *Pattern {
	p, err := Compile(source)
	if err != nil {
		panic("pattern: Compile(" + source + "): " + err.Error())
	}
	return p
}

// Matches reports whether the candidate string, as a whole, matches the
// pattern. Matching elements are Unicode code points.
func (p *Pattern) Matches(candidate string) bool {
	return p.matcher.Matches(candidate)
}

// String returns the source expression the pattern was compiled from.
func (p *Pattern) String() string {
	return p.source
}

// Graph exposes the compiled automaton, e.g. for visualization.
func (p *Pattern) Graph() *automaton.Graph {
	return p.graph
}
