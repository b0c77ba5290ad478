package frontend

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// TokenStream lexes src to completion and returns a tabwriter-aligned table
// of every token emitted, one per line (value, type name, source
// location). Grounded on the teacher's frontend/tree.go TokenStream
// function, adapted from the goyacc token table (yyTokname) to this
// grammar's own token name table.
func TokenStream(src string) (string, error) {
	toks, err := lexAll(src)
	if err != nil {
		return "", err
	}

	sb := strings.Builder{}
	tw := tabwriter.NewWriter(&sb, 10, 2, 2, ' ', 0)
	_, _ = fmt.Fprintf(tw, "Value\tType\tPosition\n")
	for _, t := range toks {
		if t.typ == itemEOF {
			_, _ = fmt.Fprintf(tw, "EOF\tEOF\tline: %d:%d\n", t.line, t.pos)
			continue
		}
		_, _ = fmt.Fprintf(tw, "%q\t%s\tline: %d:%d\n", t.val, tokenName(t.typ), t.line, t.pos)
	}
	if err := tw.Flush(); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// tokenName gives a display name for itemType typ, used by TokenStream.
// Single-character punctuation renders as itself.
func tokenName(typ itemType) string {
	switch typ {
	case itemVarName:
		return "VarName"
	case itemFuncName:
		return "FuncName"
	case itemInteger:
		return "Integer"
	case itemIdent:
		return "Ident"
	case kwFunc:
		return "func"
	case kwAdd:
		return "add"
	case kwSub:
		return "sub"
	case kwLet:
		return "let"
	case kwRet:
		return "ret"
	case kwCall:
		return "call"
	case kwI8:
		return "i8"
	case kwI16:
		return "i16"
	case kwI32:
		return "i32"
	case kwI64:
		return "i64"
	case kwF32:
		return "f32"
	case kwF64:
		return "f64"
	case kwVoid:
		return "void"
	default:
		if typ >= 0 && typ < 256 {
			return string(rune(typ))
		}
		return fmt.Sprintf("itemType(%d)", typ)
	}
}
