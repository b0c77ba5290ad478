// Tests the lexer state functions by verifying that a small sample IR
// program is tokenized into the expected sequence of items.

package frontend

import "testing"

const sample = `; compute a+b, bind c, then return it
func @f:i32 (%a:i32, %b:i32) {
  add %c:i32 %a %b
  ret %c
}
`

func TestLexer(t *testing.T) {
	exp := []item{
		{typ: kwFunc, val: "func"},
		{typ: itemFuncName, val: "@f"},
		{typ: ':', val: ":"},
		{typ: kwI32, val: "i32"},
		{typ: '(', val: "("},
		{typ: itemVarName, val: "%a"},
		{typ: ':', val: ":"},
		{typ: kwI32, val: "i32"},
		{typ: ',', val: ","},
		{typ: itemVarName, val: "%b"},
		{typ: ':', val: ":"},
		{typ: kwI32, val: "i32"},
		{typ: ')', val: ")"},
		{typ: '{', val: "{"},
		{typ: kwAdd, val: "add"},
		{typ: itemVarName, val: "%c"},
		{typ: ':', val: ":"},
		{typ: kwI32, val: "i32"},
		{typ: itemVarName, val: "%a"},
		{typ: itemVarName, val: "%b"},
		{typ: kwRet, val: "ret"},
		{typ: itemVarName, val: "%c"},
		{typ: '}', val: "}"},
		{typ: itemEOF, val: ""},
	}

	l := newLexer(sample, lexGlobal)
	go l.run()

	for i1, e1 := range exp {
		tok := l.nextItem()
		if tok.typ != e1.typ {
			t.Fatalf("token %d: expected type %v, got %v (%q)", i1, e1.typ, tok.typ, tok.val)
		}
		if e1.val != "" && tok.val != e1.val {
			t.Errorf("token %d: expected %q, got %q", i1, e1.val, tok.val)
		}
	}
}

func TestLexerLineComment(t *testing.T) {
	src := "; a whole line comment\nfunc @g:i32 () { ret void }"
	l := newLexer(src, lexGlobal)
	go l.run()

	tok := l.nextItem()
	if tok.typ != kwFunc {
		t.Fatalf("expected leading comment to be skipped, got %v (%q)", tok.typ, tok.val)
	}
	if tok.line != 2 {
		t.Errorf("expected 'func' on line 2, got line %d", tok.line)
	}
}

func TestLexerUnknownCharacter(t *testing.T) {
	l := newLexer("func @f:i32 () { add %x:i32 %a $b }", lexGlobal)
	go l.run()

	for {
		tok := l.nextItem()
		if tok.typ == itemError {
			return
		}
		if tok.typ == itemEOF {
			t.Fatal("expected a lex error for the stray '$' character, got none")
		}
	}
}
