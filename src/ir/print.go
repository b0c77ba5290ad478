package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// ----------------------------
// ----- Functions -----
// ----------------------------

// String renders VarTypePair p as "%name:type".
func (p VarTypePair) String() string {
	return fmt.Sprintf("%s:%s", p.Name, p.Typ)
}

// String renders Variable v as "%name".
func (v Variable) String() string {
	return "%" + string(v)
}

// String renders Function f as "@name".
func (f Function) String() string {
	return "@" + string(f)
}

// String renders a FuncSig's parameter list and return type, e.g.
// "@f:i32 (%a:i32, %b:i32)".
func (s FuncSig) String() string {
	parts := make([]string, len(s.Params))
	for i1, e1 := range s.Params {
		parts[i1] = e1.String()
	}
	return fmt.Sprintf("%s:%s (%s)", s.Name, s.Typ(), strings.Join(parts, ", "))
}

// Typ returns the function's return Type. Named to avoid colliding with the
// Ret field name used elsewhere for return Type plumbing.
func (s FuncSig) Typ() Type { return s.Ret }

// stmtString pretty-prints a single statement in the same textual form the
// parser consumes; used for P1's round-trip property and --verbose output.
func stmtString(s Stmt) string {
	switch n := s.(type) {
	case *AddInst:
		return fmt.Sprintf("add %s %s %s", n.Dest, n.Left, n.Right)
	case *SubInst:
		return fmt.Sprintf("sub %s %s %s", n.Dest, n.Left, n.Right)
	case *LetInst:
		switch v := n.Value.(type) {
		case IntLiteral:
			return fmt.Sprintf("let %s %s", n.Dest, strconv.FormatInt(int64(v), 10))
		case VarRef:
			return fmt.Sprintf("let %s %s", n.Dest, Variable(v))
		default:
			return fmt.Sprintf("let %s <?>", n.Dest)
		}
	case *RetInst:
		if n.Value == nil {
			return "ret void"
		}
		return fmt.Sprintf("ret %s", *n.Value)
	case *CallInst:
		args := make([]string, len(n.Args))
		for i1, e1 := range n.Args {
			args[i1] = e1.String()
		}
		return fmt.Sprintf("call %s %s(%s)", n.Dest, n.Callee, strings.Join(args, ", "))
	default:
		return "<?>"
	}
}

// String renders a FuncDef as it would appear in source form.
func (f FuncDef) String() string {
	sb := strings.Builder{}
	fmt.Fprintf(&sb, "func %s {\n", f.Sig)
	for _, e1 := range f.Body {
		fmt.Fprintf(&sb, "  %s\n", stmtString(e1))
	}
	sb.WriteString("}")
	return sb.String()
}

// Print writes FuncDef f to stdout, indenting nested elements. Mirrors the
// depth-indented tree dump the teacher's Node.Print produced, simplified for
// a flat instruction list instead of a recursive tree.
func (f FuncDef) Print() {
	fmt.Printf("func %s\n", f.Sig)
	for _, e1 := range f.Body {
		fmt.Printf("  %s\n", stmtString(e1))
	}
}
