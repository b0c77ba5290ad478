package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vslcra/src/backend/lir"
	"vslcra/src/ir"
)

// TestDOTEmitsNodesAndEdges checks the rendered text names the graph after
// the function, lists one node per variable and one edge per interfering
// pair (spec §6.2).
func TestDOTEmitsNodesAndEdges(t *testing.T) {
	g := lir.NewGraph()
	g.AddEdge("a", "b")

	out := DOT("f", g, nil)

	require.True(t, strings.HasPrefix(out, "graph f {\n"), "expected graph header naming the function, got:\n%s", out)
	assert.Contains(t, out, `label="%a"`)
	assert.Contains(t, out, `label="%b"`)
	assert.Contains(t, out, "n0 -- n1;")
}

// TestDOTFillsColorWhenProvided checks that a non-nil ColorMap adds a
// fillcolor attribute per node.
func TestDOTFillsColorWhenProvided(t *testing.T) {
	g := lir.NewGraph()
	g.EnsureNode("a")
	colors := lir.ColorMap{"a": lir.Color{R: 0x11, G: 0x22, B: 0x33}}

	out := DOT("f", g, colors)
	assert.Contains(t, out, `fillcolor="#112233"`)
}

// TestDOTNameQuotesNonIdentifierFunctionNames checks dotIdent escapes
// function names DOT's bare identifier form cannot represent.
func TestDOTNameQuotesNonIdentifierFunctionNames(t *testing.T) {
	g := lir.NewGraph()
	out := DOT(ir.Function("my func"), g, nil)
	assert.True(t, strings.HasPrefix(out, `graph "my func" {`), "expected the function name to be quoted, got:\n%s", out)
}
