package automaton

import (
	"fmt"
	"strings"
)

// Dot renders the graph in Graphviz dot format for debugging and docs.
// Edge labels carry the scan priority (0 = scanned first by Advance).
func (g *Graph) Dot() string {
	var sb strings.Builder
	sb.WriteString("digraph pattern {\n")
	sb.WriteString("  rankdir=LR;\n")

	for id, s := range g.states {
		label := s.kind.String()
		shape := "circle"
		switch s.kind {
		case KindLiteral:
			label = fmt.Sprintf("'%s'", string(s.sym))
		case KindWildcard:
			label = "."
		case KindZeroOrMore:
			label = "*"
		case KindOneOrMore:
			label = "+"
		case KindStart:
			label = "start"
			shape = "diamond"
		case KindTermination:
			label = "end"
			shape = "doublecircle"
		}
		fmt.Fprintf(&sb, "  n%d [label=%q shape=%s];\n", id, label, shape)
	}

	for id, s := range g.states {
		for i := len(s.out) - 1; i >= 0; i-- {
			priority := len(s.out) - 1 - i
			fmt.Fprintf(&sb, "  n%d -> n%d [label=\"%d\"];\n", id, s.out[i], priority)
		}
	}

	sb.WriteString("}\n")
	return sb.String()
}
