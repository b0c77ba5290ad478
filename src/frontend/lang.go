package frontend

import "vslcra/src/ir"

// itemType values for the reserved keywords of spec §4.1's grammar:
// statement keywords (func/add/sub/let/ret/call) and the primitive Type
// keywords (i8/i16/i32/i64/f32/f64/void). Punctuation ( : ( ) { } , ) is
// emitted as itemType(rune) directly by lexGlobal, the same way the
// teacher's lexer emits single-character tokens it does not special-case.
const (
	kwFunc itemType = iota + 100
	kwAdd
	kwSub
	kwLet
	kwRet
	kwCall
	kwI8
	kwI16
	kwI32
	kwI64
	kwF32
	kwF64
	kwVoid
)

type reservedItem struct {
	val string
	typ itemType
}

// rw contains the set of all reserved keywords of the IR's grammar.
// The first dimension is indexed by word length (index 0 and 1 are
// always empty: the shortest keyword is "i8", two characters).
// Indexing by length and searching should be faster than using a hash
// table for a keyword set this small.
var rw = [...][]reservedItem{
	{}, // length 0
	{}, // length 1
	{ // length 2
		{val: "i8", typ: kwI8},
	},
	{ // length 3
		{val: "add", typ: kwAdd},
		{val: "sub", typ: kwSub},
		{val: "let", typ: kwLet},
		{val: "ret", typ: kwRet},
		{val: "i16", typ: kwI16},
		{val: "i32", typ: kwI32},
		{val: "i64", typ: kwI64},
		{val: "f32", typ: kwF32},
		{val: "f64", typ: kwF64},
	},
	{ // length 4
		{val: "func", typ: kwFunc},
		{val: "call", typ: kwCall},
		{val: "void", typ: kwVoid},
	},
}

// isKeyword returns true if the string s is a reserved keyword.
// On the return of true the itemType of the keyword is returned.
// On the return of false the itemType is itemIdent.
func isKeyword(s string) (bool, itemType) {
	if len(s) == 0 || len(s) >= len(rw) {
		return false, itemIdent
	}
	for _, e1 := range rw[len(s)] {
		if e1.val == s {
			return true, e1.typ
		}
	}
	return false, itemIdent
}

// typeKind reports whether typ is one of the primitive Type keywords
// (i8/i16/i32/i64/f32/f64/void) and the ir.Kind it denotes.
func typeKind(typ itemType) (ir.Kind, bool) {
	switch typ {
	case kwI8:
		return ir.I8, true
	case kwI16:
		return ir.I16, true
	case kwI32:
		return ir.I32, true
	case kwI64:
		return ir.I64, true
	case kwF32:
		return ir.F32, true
	case kwF64:
		return ir.F64, true
	case kwVoid:
		return ir.Void, true
	default:
		return 0, false
	}
}
