package frontend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vslcra/src/ir"
)

// TestParseSingleAdd exercises spec §8 scenario S2: a function with a
// single add instruction and no prior defs.
func TestParseSingleAdd(t *testing.T) {
	src := `func @f:i32 (%a:i32, %b:i32) { add %c:i32 %a %b ret %c }`

	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Funcs, 1)

	f := prog.Funcs[0]
	assert.Equal(t, ir.Function("f"), f.Sig.Name)
	assert.Equal(t, ir.Type{K: ir.I32}, f.Sig.Ret)
	require.Len(t, f.Sig.Params, 2)
	require.Len(t, f.Body, 2)

	add, ok := f.Body[0].(*ir.AddInst)
	require.True(t, ok, "expected first statement to be AddInst, got %T", f.Body[0])
	assert.Equal(t, ir.Variable("c"), add.Dest.Name)
	assert.Equal(t, ir.Variable("a"), add.Left)
	assert.Equal(t, ir.Variable("b"), add.Right)

	ret, ok := f.Body[1].(*ir.RetInst)
	require.True(t, ok, "expected second statement to be RetInst, got %T", f.Body[1])
	require.NotNil(t, ret.Value)
	assert.Equal(t, ir.Variable("c"), *ret.Value)
}

// TestParseThreeWayInterference exercises spec §8 scenario S3.
func TestParseThreeWayInterference(t *testing.T) {
	src := `
func @f:i32 (%a:i32, %b:i32, %c:i32) {
	add %x:i32 %a %b
	add %y:i32 %x %c
	ret %y
}`
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Funcs[0].Body, 3)
}

// TestParseRetVoid covers the 'ret void' production.
func TestParseRetVoid(t *testing.T) {
	prog, err := Parse(`func @f:i32 () { ret void }`)
	require.NoError(t, err)
	ret, ok := prog.Funcs[0].Body[0].(*ir.RetInst)
	require.True(t, ok, "expected RetInst, got %T", prog.Funcs[0].Body[0])
	assert.Nil(t, ret.Value, "expected a nil Value for 'ret void'")
}

// TestParseLetAndCall covers the Let and Call productions and the call's
// argument list.
func TestParseLetAndCall(t *testing.T) {
	src := `func @f:i32 (%a:i32) {
		let %n:i32 42
		call %r:i32 @g(%a, %n)
		ret %r
	}`
	prog, err := Parse(src)
	require.NoError(t, err)
	f := prog.Funcs[0]

	let, ok := f.Body[0].(*ir.LetInst)
	require.True(t, ok, "expected LetInst, got %T", f.Body[0])
	lit, ok := let.Value.(ir.IntLiteral)
	require.True(t, ok, "expected an int literal, got %+v", let.Value)
	assert.EqualValues(t, 42, lit)

	call, ok := f.Body[1].(*ir.CallInst)
	require.True(t, ok, "expected CallInst, got %T", f.Body[1])
	assert.Equal(t, ir.Function("g"), call.Callee)
	require.Len(t, call.Args, 2)
	assert.Equal(t, ir.Variable("a"), call.Args[0])
	assert.Equal(t, ir.Variable("n"), call.Args[1])
}

// TestParseMultipleFunctions covers SPEC_FULL §3's independent
// multi-function compilation units.
func TestParseMultipleFunctions(t *testing.T) {
	src := `
func @f:i32 (%a:i32) { ret %a }
func @g:i32 (%b:i32) { ret %b }`
	prog, err := Parse(src)
	require.NoError(t, err)
	require.Len(t, prog.Funcs, 2)
}

// TestParseSyntaxErrorLocation checks that a missing terminal is reported
// with the offending token's source location (spec §4.1's failure
// semantics).
func TestParseSyntaxErrorLocation(t *testing.T) {
	_, err := Parse("func @f:i32 (%a:i32 { ret %a }")
	require.Error(t, err)
	se, ok := err.(*SyntaxError)
	require.True(t, ok, "expected *SyntaxError, got %T", err)
	assert.NotZero(t, se.Line)
}

// TestParseEmptyBody covers spec §8 scenario S1's program shape (the
// type-check rejection itself is exercised in ir's own tests).
func TestParseEmptyBody(t *testing.T) {
	prog, err := Parse(`func @f:i32 () { ret void }`)
	require.NoError(t, err)
	require.Len(t, prog.Funcs[0].Body, 1)
}
