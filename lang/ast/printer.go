package ast

import (
	"fmt"
	"strings"
)

// Sprint renders n as a compact s-expression, useful for tests and for
// ad hoc inspection of a parsed module. It does not print positions.
func Sprint(n Node) string {
	var b strings.Builder
	sprint(&b, n)
	return b.String()
}

func sprint(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case *Module:
		b.WriteString("(module")
		for _, fn := range n.Funcs {
			b.WriteByte(' ')
			sprint(b, fn)
		}
		b.WriteByte(')')
	case *Function:
		fmt.Fprintf(b, "(func %s (", n.Name)
		for i, p := range n.Params {
			if i > 0 {
				b.WriteByte(' ')
			}
			fmt.Fprintf(b, "%s %s", p.Name, p.Type)
		}
		b.WriteString(") ")
		sprint(b, n.Body)
		b.WriteByte(')')
	case *NumberExpr:
		fmt.Fprintf(b, "%d", n.Value)
	case *VarExpr:
		b.WriteString(n.Name)
	case *BinOpExpr:
		b.WriteByte('(')
		b.WriteString(n.Op.String())
		b.WriteByte(' ')
		sprint(b, n.Left)
		b.WriteByte(' ')
		sprint(b, n.Right)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "<%T>", n)
	}
}
