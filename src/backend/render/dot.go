// Package render serializes a register interference graph to DOT graph
// description text (spec §6.2). It is the downstream renderer spec.md §1
// names as an external collaborator; SPEC_FULL §0 brings it into this
// repository since a runnable tool needs something to emit the allocator's
// output. Grounded on the teacher's backend/arm/print.go and
// backend/riscv/print.go: walk a data structure, fmt.Fprintf/
// strings.Builder text lines, one line per element — generalized here from
// assembler mnemonics to DOT node/edge statements.
package render

import (
	"fmt"
	"strings"

	"vslcra/src/backend/lir"
	"vslcra/src/ir"
)

// DOT renders the register interference graph g as a DOT "graph" block
// named after fn. One labeled node is emitted per RIG node, using a stable
// integer index (g's insertion order); one undirected edge is emitted per
// pair with weight > 0, each pair already canonicalized smaller-index-first
// by Graph.Edges(). If colors is non-nil, each node gets a "#RRGGBB" fill
// color from the palette (spec §6.2).
func DOT(fn ir.Function, g *lir.Graph, colors lir.ColorMap) string {
	order := g.Order()
	index := make(map[ir.Variable]int, len(order))
	for i1, v := range order {
		index[v] = i1
	}

	sb := strings.Builder{}
	fmt.Fprintf(&sb, "graph %s {\n", dotIdent(string(fn)))
	for i1, v := range order {
		if colors != nil {
			if c, ok := colors[v]; ok {
				fmt.Fprintf(&sb, "  n%d [label=%q, style=filled, fillcolor=%q];\n", i1, v.String(), c.Hex())
				continue
			}
		}
		fmt.Fprintf(&sb, "  n%d [label=%q];\n", i1, v.String())
	}
	for _, e1 := range g.Edges() {
		fmt.Fprintf(&sb, "  n%d -- n%d;\n", index[e1.A], index[e1.B])
	}
	sb.WriteString("}\n")
	return sb.String()
}

// dotIdent returns a DOT-safe identifier for a graph/node name that may
// contain characters DOT's unquoted ID form disallows, or start with a digit.
func dotIdent(name string) string {
	if len(name) > 0 && name[0] >= '0' && name[0] <= '9' {
		return fmt.Sprintf("%q", name)
	}
	for _, r := range name {
		if !(r == '_' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')) {
			return fmt.Sprintf("%q", name)
		}
	}
	if name == "" {
		return `""`
	}
	return name
}
