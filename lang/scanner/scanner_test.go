package scanner_test

import (
	"testing"

	"github.com/mna/bada/lang/scanner"
	"github.com/mna/bada/lang/token"
	"github.com/stretchr/testify/require"
)

func scanString(t *testing.T, src string) []scanner.TokenValue {
	t.Helper()
	fs := token.NewFileSet()
	file := fs.AddFile("test", -1, len(src))

	var s scanner.Scanner
	var errs []string
	s.Init(file, []byte(src), func(pos token.Position, msg string) {
		errs = append(errs, msg)
	})

	var toks []scanner.TokenValue
	for {
		tv := s.Scan()
		toks = append(toks, tv)
		if tv.Tok == token.EOF {
			break
		}
	}
	require.Empty(t, errs)
	return toks
}

func tokKinds(toks []scanner.TokenValue) []token.Token {
	kinds := make([]token.Token, len(toks))
	for i, tv := range toks {
		kinds[i] = tv.Tok
	}
	return kinds
}

func TestScanFunction(t *testing.T) {
	toks := scanString(t, "f(a int b int) = a + b;")
	require.Equal(t, []token.Token{
		token.IDENT, token.LPAREN, token.IDENT, token.IDENT, token.IDENT, token.IDENT, token.RPAREN,
		token.EQ, token.IDENT, token.PLUS, token.IDENT, token.SEMI, token.EOF,
	}, tokKinds(toks))
}

func TestScanNumber(t *testing.T) {
	toks := scanString(t, "42")
	require.Len(t, toks, 2)
	require.Equal(t, token.INT, toks[0].Tok)
	require.Equal(t, "42", toks[0].Lit)
}

func TestScanIllegalCharacter(t *testing.T) {
	fs := token.NewFileSet()
	file := fs.AddFile("test", -1, 1)
	var s scanner.Scanner
	var errs []string
	s.Init(file, []byte("@"), func(pos token.Position, msg string) {
		errs = append(errs, msg)
	})
	s.Scan()
	require.Len(t, errs, 1)
}
