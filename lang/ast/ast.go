// Package ast defines the types that represent the abstract syntax tree
// (AST) of a bada program: a module is an ordered list of named functions,
// each with integer parameters and a single expression body built from
// integer literals, parameter references, and the "+"/"-" binary operators.
//
// The compiler package consumes this AST but does not own it: it is built
// by the parser package and is read-only from the compiler's point of view.
package ast

import "github.com/mna/bada/lang/token"

// Node is any node of the bada AST.
type Node interface {
	// Span reports the start and end position of the node.
	Span() (start, end token.Pos)
}

// Expr is an expression node: NumberExpr, VarExpr or BinOpExpr.
type Expr interface {
	Node
	expr()
}

// Module is an ordered collection of top-level functions. Names are unique
// within a module; the parser rejects duplicate function names while
// building the module.
type Module struct {
	Funcs []*Function
}

func (n *Module) Span() (start, end token.Pos) {
	if len(n.Funcs) == 0 {
		return token.NoPos, token.NoPos
	}
	start, _ = n.Funcs[0].Span()
	_, end = n.Funcs[len(n.Funcs)-1].Span()
	return start, end
}

// Function is a top-level declaration: a name, its parameters in
// declaration order, and a single expression body.
type Function struct {
	Name       string
	NamePos    token.Pos
	Params     []*Param
	Body       Expr
	Start, End token.Pos
}

func (n *Function) Span() (start, end token.Pos) { return n.Start, n.End }

// Param is a single function parameter: a name and its declared type.
// The language only has one type ("int"), but the type token is kept so
// the grammar round-trips the source form the original language used
// (e.g. "f(x int)").
type Param struct {
	Name    string
	NamePos token.Pos
	Type    string
}

type (
	// NumberExpr is a non-negative integer literal.
	NumberExpr struct {
		ValuePos token.Pos
		Value    int
	}

	// VarExpr is a reference to a parameter by name.
	VarExpr struct {
		NamePos token.Pos
		Name    string
	}

	// BinOpExpr is a binary "+" or "-" expression.
	BinOpExpr struct {
		Left  Expr
		Op    token.Token // token.PLUS or token.MINUS
		OpPos token.Pos
		Right Expr
	}
)

func (*NumberExpr) expr() {}
func (*VarExpr) expr()    {}
func (*BinOpExpr) expr()  {}

func (n *NumberExpr) Span() (start, end token.Pos) { return n.ValuePos, n.ValuePos }

func (n *VarExpr) Span() (start, end token.Pos) { return n.NamePos, n.NamePos }

func (n *BinOpExpr) Span() (start, end token.Pos) {
	s, _ := n.Left.Span()
	_, e := n.Right.Span()
	return s, e
}
