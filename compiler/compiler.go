// Package compiler turns a pattern expression into an automaton graph.
//
// The grammar has no nesting, so there is no AST stage: the token stream
// from the lexer is linked directly into states. Construction is a single
// left-to-right scan with one token of lookahead.
package compiler

import (
	"fmt"

	"github.com/conduit-lang/fsmatch/automaton"
	"github.com/conduit-lang/fsmatch/compiler/errors"
	"github.com/conduit-lang/fsmatch/compiler/lexer"
)

// Compile builds the state graph for a pattern. On failure it returns no
// graph and every error found; compilation is all-or-nothing.
//
// The returned graph is fully linked and immutable: the continuation edges
// of every one-or-more state are folded into its repetition loop before the
// graph is handed out, so repeated and concurrent matching never mutate it.
func Compile(pattern string) (*automaton.Graph, []errors.CompileError) {
	tokens, lexErrs := lexer.New(pattern).ScanTokens()
	if len(lexErrs) > 0 {
		cerrs := make([]errors.CompileError, 0, len(lexErrs))
		for _, le := range lexErrs {
			cerrs = append(cerrs, errors.New(
				"lexer",
				errors.ErrInvalidCharacter,
				le.Message,
				pattern,
				errors.Location{Column: le.Column, Length: 1},
			))
		}
		return nil, cerrs
	}

	g := automaton.NewGraph()
	prev := g.Start()

	// Quantifier exits are linked one compiler iteration after the
	// quantifier itself, so one-or-more states are collected and their
	// continuations folded once the whole chain is built.
	var oneOrMore []automaton.StateID

	i := 0
	for tokens[i].Type != lexer.TOKEN_EOF {
		tok := tokens[i]

		if tok.Type == lexer.TOKEN_STAR || tok.Type == lexer.TOKEN_PLUS {
			return nil, []errors.CompileError{errors.New(
				"compiler",
				errors.ErrDanglingQuantifier,
				fmt.Sprintf("quantifier %q has no preceding token to quantify", tok.Lexeme),
				pattern,
				errors.Location{Column: tok.Column, Length: 1},
			)}
		}

		// tokens always end with EOF, so i+1 is in bounds here
		if next := tokens[i+1]; next.Type == lexer.TOKEN_STAR || next.Type == lexer.TOKEN_PLUS {
			inner := buildAtom(g, tok)

			var q automaton.StateID
			if next.Type == lexer.TOKEN_STAR {
				q = g.AddZeroOrMore(inner)
			} else {
				q = g.AddOneOrMore(inner)
				oneOrMore = append(oneOrMore, q)
			}

			g.AddEdge(prev, q)
			prev = q
			i += 2
			continue
		}

		n := buildAtom(g, tok)
		g.AddEdge(prev, n)
		prev = n
		i++
	}

	term := g.AddTermination()
	g.AddEdge(prev, term)

	foldContinuations(g, oneOrMore)

	return g, nil
}

// buildAtom creates the unlinked state for a consumable token.
func buildAtom(g *automaton.Graph, tok lexer.Token) automaton.StateID {
	if tok.Type == lexer.TOKEN_DOT {
		return g.AddWildcard()
	}
	return g.AddLiteral(tok.Literal)
}

// foldContinuations gives each one-or-more state's repetition loop access to
// what comes after the repeated block. The state's first edge is its
// zero-or-more loop; every edge appended after it is a continuation the
// compiler linked later, and is copied onto the loop so the walk can leave
// the repetition. Doing this once, here, keeps the graph immutable at match
// time.
func foldContinuations(g *automaton.Graph, oneOrMore []automaton.StateID) {
	for _, id := range oneOrMore {
		out := g.Outgoing(id)
		star := out[0]
		for _, succ := range out[1:] {
			g.AddEdge(star, succ)
		}
	}
}
