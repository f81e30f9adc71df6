// Package matcher walks a compiled automaton graph against candidate
// strings.
//
// The walk is greedy and single-path: every step commits to the first
// transition found (edges are scanned in reverse construction order) and
// never revisits alternatives on later failure. That strategy rejects some
// strings a backtracking engine would accept; those verdicts are the
// contract, not a defect.
package matcher

import (
	"go.uber.org/zap"

	"github.com/conduit-lang/fsmatch/automaton"
)

// Matcher runs candidates against one compiled graph. The graph is never
// mutated, so a single Matcher is safe for concurrent use.
type Matcher struct {
	graph *automaton.Graph
	log   *zap.Logger
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithLogger enables transition tracing at debug level. The default is a
// nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(m *Matcher) {
		m.log = log
	}
}

// New creates a Matcher over a compiled graph.
func New(g *automaton.Graph, opts ...Option) *Matcher {
	m := &Matcher{
		graph: g,
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Matches is a convenience for a one-off match without options.
func Matches(g *automaton.Graph, candidate string) bool {
	return New(g).Matches(candidate)
}

// Matches reports whether the candidate, as a whole, is accepted by the
// graph. Rejection is always a verdict, never an error: a missing
// transition collapses to false here.
func (m *Matcher) Matches(candidate string) bool {
	g := m.graph
	elements := []rune(candidate)

	if len(elements) == 0 {
		next, err := g.Advance(g.Start(), automaton.EndOfInput)
		return err == nil && g.IsTermination(next)
	}

	// Initial probe: pick the graph's entry transition for the first
	// element. The element is not consumed by this step; the loop below
	// scans it again from the selected state.
	current, err := g.Advance(g.Start(), elements[0])
	if err != nil {
		m.log.Debug("rejected at entry", zap.String("candidate", candidate))
		return false
	}

	for i, r := range elements {
		next, err := g.Advance(current, r)
		if err != nil {
			m.log.Debug("rejected",
				zap.String("candidate", candidate),
				zap.Int("position", i),
				zap.Int32("state", int32(current)))
			return false
		}

		// Re-verify the selected state's own rule. Redundant for plain
		// literal and wildcard states, load-bearing when the selected
		// state is a quantifier whose acceptance differs from the edge
		// scan that chose it.
		if !g.Accepts(next, r) {
			m.log.Debug("rejected by self-check",
				zap.String("candidate", candidate),
				zap.Int("position", i),
				zap.Int32("state", int32(next)))
			return false
		}

		m.log.Debug("transition",
			zap.Int("position", i),
			zap.String("element", string(r)),
			zap.Int32("from", int32(current)),
			zap.Int32("to", int32(next)))
		current = next
	}

	final, err := g.Advance(current, automaton.EndOfInput)
	if err != nil {
		m.log.Debug("rejected at end of input", zap.String("candidate", candidate))
		return false
	}
	return g.IsTermination(final)
}
