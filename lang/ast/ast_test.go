package ast_test

import (
	"testing"

	"github.com/mna/bada/lang/ast"
	"github.com/mna/bada/lang/token"
	"github.com/stretchr/testify/require"
)

func TestSprintBinop(t *testing.T) {
	mod := &ast.Module{
		Funcs: []*ast.Function{
			{
				Name: "f",
				Params: []*ast.Param{
					{Name: "a", Type: "int"},
					{Name: "b", Type: "int"},
				},
				Body: &ast.BinOpExpr{
					Left:  &ast.VarExpr{Name: "a"},
					Op:    token.PLUS,
					Right: &ast.VarExpr{Name: "b"},
				},
			},
		},
	}
	require.Equal(t, "(module (func f (a int b int) (+ a b)))", ast.Sprint(mod))
}

func TestBinOpExprSpanCoversBothOperands(t *testing.T) {
	left := &ast.NumberExpr{ValuePos: 1, Value: 2}
	right := &ast.NumberExpr{ValuePos: 5, Value: 3}
	bin := &ast.BinOpExpr{Left: left, Op: token.PLUS, OpPos: 3, Right: right}

	start, end := bin.Span()
	require.Equal(t, token.Pos(1), start)
	require.Equal(t, token.Pos(5), end)
}

func TestModuleSpanCoversFirstToLastFunction(t *testing.T) {
	mod := &ast.Module{
		Funcs: []*ast.Function{
			{Name: "f", Start: 1, End: 10, Body: &ast.NumberExpr{Value: 1}},
			{Name: "g", Start: 20, End: 30, Body: &ast.NumberExpr{Value: 2}},
		},
	}
	start, end := mod.Span()
	require.Equal(t, token.Pos(1), start)
	require.Equal(t, token.Pos(30), end)
}

func TestModuleSpanEmpty(t *testing.T) {
	mod := &ast.Module{}
	start, end := mod.Span()
	require.Equal(t, token.NoPos, start)
	require.Equal(t, token.NoPos, end)
}
