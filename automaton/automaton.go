// Package automaton implements the state graph a compiled pattern runs on.
//
// A graph is an arena of states addressed by StateID. Edges are stored as
// ordered outgoing lists; the order encodes transition priority and Advance
// scans it last-added-first, so an edge appended later shadows earlier ones.
//
// Properties:
//   - Immutable after construction (quantifier continuations are folded in
//     eagerly by the compiler, never at match time)
//   - Safe for concurrent matching against the same graph
package automaton

import "errors"

// StateID addresses a state inside a Graph's arena.
type StateID int32

// Kind identifies the behavior of a state.
type Kind int

const (
	KindStart Kind = iota
	KindTermination
	KindLiteral
	KindWildcard
	KindZeroOrMore
	KindOneOrMore
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "START"
	case KindTermination:
		return "TERMINATION"
	case KindLiteral:
		return "LITERAL"
	case KindWildcard:
		return "WILDCARD"
	case KindZeroOrMore:
		return "ZERO_OR_MORE"
	case KindOneOrMore:
		return "ONE_OR_MORE"
	default:
		return "UNKNOWN"
	}
}

// EndOfInput is the sentinel element the matcher feeds the graph once the
// candidate is exhausted. It is not a valid literal, so only states that
// legally end a match accept it.
const EndOfInput rune = -1

// ErrNoTransition signals that no outgoing edge accepts the given element.
// It never escapes the matcher boundary; callers of the matcher only ever
// see a boolean verdict.
var ErrNoTransition = errors.New("no transition for input element")

type state struct {
	kind  Kind
	sym   rune    // valid for KindLiteral
	inner StateID // valid for quantifier kinds
	out   []StateID
}

// Graph is an arena-backed automaton rooted at a single start state.
type Graph struct {
	states []state
	start  StateID
}

// NewGraph returns a graph containing only the start state.
func NewGraph() *Graph {
	g := &Graph{}
	g.start = g.add(state{kind: KindStart})
	return g
}

func (g *Graph) add(s state) StateID {
	id := StateID(len(g.states))
	g.states = append(g.states, s)
	return id
}

// Start returns the initial state for every match attempt.
func (g *Graph) Start() StateID {
	return g.start
}

// Len returns the number of states in the arena.
func (g *Graph) Len() int {
	return len(g.states)
}

// Kind returns the kind of the given state.
func (g *Graph) Kind(id StateID) Kind {
	return g.states[id].kind
}

// IsTermination reports whether the state is the termination state.
func (g *Graph) IsTermination(id StateID) bool {
	return g.states[id].kind == KindTermination
}

// Inner returns the wrapped state of a quantifier, or the zero StateID for
// non-quantifier states.
func (g *Graph) Inner(id StateID) StateID {
	return g.states[id].inner
}

// Outgoing returns a copy of the state's outgoing edges in construction order.
func (g *Graph) Outgoing(id StateID) []StateID {
	out := g.states[id].out
	cp := make([]StateID, len(out))
	copy(cp, out)
	return cp
}

// AddLiteral creates an unlinked state accepting exactly sym.
func (g *Graph) AddLiteral(sym rune) StateID {
	return g.add(state{kind: KindLiteral, sym: sym})
}

// AddWildcard creates an unlinked state accepting any element.
func (g *Graph) AddWildcard() StateID {
	return g.add(state{kind: KindWildcard})
}

// AddZeroOrMore creates a zero-or-more state wrapping inner. Its outgoing
// list starts as [inner, self]: the self-loop carries the repetition, and
// the compiler appends the exit edge afterwards.
func (g *Graph) AddZeroOrMore(inner StateID) StateID {
	id := g.add(state{kind: KindZeroOrMore, inner: inner})
	g.states[id].out = append(g.states[id].out, inner, id)
	return id
}

// AddOneOrMore creates a one-or-more state wrapping inner. The mandatory
// first occurrence is the node itself; repetitions beyond it flow through a
// fresh zero-or-more over the same inner state, its initial sole edge.
func (g *Graph) AddOneOrMore(inner StateID) StateID {
	star := g.AddZeroOrMore(inner)
	id := g.add(state{kind: KindOneOrMore, inner: inner})
	g.states[id].out = append(g.states[id].out, star)
	return id
}

// AddTermination creates the unlinked termination state.
func (g *Graph) AddTermination() StateID {
	return g.add(state{kind: KindTermination})
}

// AddEdge appends an outgoing edge from one state to another. Append order
// is load-bearing: Advance scans edges in reverse of it.
func (g *Graph) AddEdge(from, to StateID) {
	g.states[from].out = append(g.states[from].out, to)
}

// Accepts reports whether the state's own rule accepts the element,
// independent of traversal.
//
// Termination accepts only EndOfInput: it is reachable as a verdict solely
// when the candidate is exhausted. A zero-or-more state accepts whatever any
// of its non-zero-or-more edges accept, which covers both one more
// repetition and the continuation already linked past it. A one-or-more
// state accepts exactly what one mandatory occurrence of its inner state
// accepts.
func (g *Graph) Accepts(id StateID, r rune) bool {
	s := &g.states[id]
	switch s.kind {
	case KindTermination:
		return r == EndOfInput
	case KindWildcard:
		return true
	case KindLiteral:
		return r == s.sym
	case KindZeroOrMore:
		for _, t := range s.out {
			if g.states[t].kind == KindZeroOrMore {
				continue
			}
			if g.Accepts(t, r) {
				return true
			}
		}
		return false
	case KindOneOrMore:
		return g.Accepts(s.inner, r)
	default: // KindStart never sits on anyone's outgoing list
		return false
	}
}

// Advance scans the state's outgoing edges from last-added to first-added
// and returns the first whose Accepts is true for the element. The walk
// commits to that edge; there is no backtracking. Returns ErrNoTransition
// if no edge accepts.
func (g *Graph) Advance(id StateID, r rune) (StateID, error) {
	out := g.states[id].out
	for i := len(out) - 1; i >= 0; i-- {
		if g.Accepts(out[i], r) {
			return out[i], nil
		}
	}
	return 0, ErrNoTransition
}
