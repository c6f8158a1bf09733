// Package parser implements a small recursive-descent parser that turns
// bada source code into an *ast.Module.
package parser

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/mna/bada/lang/ast"
	"github.com/mna/bada/lang/scanner"
	"github.com/mna/bada/lang/token"
)

// ParseFile parses the named source file and returns its AST and any error
// encountered. The error, if non-nil, is a scanner.ErrorList holding
// the scan, syntax and semantic (e.g. redefinition) errors reported.
func ParseFile(path string) (*ast.Module, error) {
	_, mod, err := ParseFileFS(path)
	return mod, err
}

// ParseFileFS is like ParseFile but also returns the file set used to
// scan path, so a caller (such as the compile driver) can resolve
// positions in errors raised after parsing, e.g. by the compiler package.
func ParseFileFS(path string) (*token.FileSet, *ast.Module, error) {
	fs, toks, err := scanner.ScanFile(path)
	if err != nil {
		return fs, nil, err
	}

	var p parser
	p.fset = fs
	p.toks = toks
	p.advance()

	mod := p.parseModule()
	return fs, mod, p.errors.Err()
}

var errPanicMode = errors.New("panic")

// parser parses a token stream into an *ast.Module.
type parser struct {
	fset *token.FileSet
	toks []scanner.TokenValue
	pos  int // index of the next token to scan in toks

	cur    scanner.TokenValue
	errors scanner.ErrorList
}

func (p *parser) advance() {
	if p.pos < len(p.toks) {
		p.cur = p.toks[p.pos]
		p.pos++
	} else {
		p.cur = scanner.TokenValue{Tok: token.EOF}
	}
}

func (p *parser) error(pos token.Pos, msg string) {
	p.errors.Add(p.position(pos), msg)
}

func (p *parser) errorf(pos token.Pos, format string, args ...any) {
	p.error(pos, fmt.Sprintf(format, args...))
}

func (p *parser) position(pos token.Pos) token.Position {
	if p.fset == nil {
		return token.Position{}
	}
	return p.fset.Position(pos)
}

// expect consumes the current token if it matches tok, reporting an error
// and entering panic mode (recovered at the function-declaration level)
// otherwise.
func (p *parser) expect(tok token.Token) token.Pos {
	pos := p.cur.Pos
	if p.cur.Tok != tok {
		p.errorf(pos, "expected %s, got %s", tok.GoString(), p.cur.Tok.GoString())
		panic(errPanicMode)
	}
	p.advance()
	return pos
}

// parseModule parses zero or more function declarations until EOF.
func (p *parser) parseModule() *ast.Module {
	mod := &ast.Module{}
	seen := make(map[string]bool)

	for p.cur.Tok != token.EOF {
		fn, ok := p.parseFunction()
		if !ok {
			continue
		}
		if seen[fn.Name] {
			p.errorf(fn.NamePos, "function %q redefined", fn.Name)
			continue
		}
		seen[fn.Name] = true
		mod.Funcs = append(mod.Funcs, fn)
	}
	return mod
}

// parseFunction parses a single "name(params) = expr;" declaration. On a
// syntax error, it skips tokens up to (and including) the next ';' or EOF
// and returns ok=false so the caller can keep parsing the rest of the
// module and report as many errors as possible.
func (p *parser) parseFunction() (fn *ast.Function, ok bool) {
	startTok := p.cur
	defer func() {
		if r := recover(); r != nil {
			if r != errPanicMode {
				panic(r)
			}
			p.resync()
			fn, ok = nil, false
		}
	}()

	namePos := p.cur.Pos
	name := p.cur.Lit
	p.expect(token.IDENT)
	p.expect(token.LPAREN)

	var params []*ast.Param
	for p.cur.Tok == token.IDENT {
		pNamePos := p.cur.Pos
		pName := p.cur.Lit
		p.advance()
		pType := p.cur.Lit
		p.expect(token.IDENT)
		params = append(params, &ast.Param{Name: pName, NamePos: pNamePos, Type: pType})
	}
	p.expect(token.RPAREN)
	p.expect(token.EQ)

	body := p.parseExpr()
	endPos := p.expect(token.SEMI)

	return &ast.Function{
		Name:    name,
		NamePos: namePos,
		Params:  params,
		Body:    body,
		Start:   startTok.Pos,
		End:     endPos,
	}, true
}

// resync discards tokens until the next ';' (consuming it) or EOF, so
// parsing of subsequent functions can continue after an error.
func (p *parser) resync() {
	for p.cur.Tok != token.SEMI && p.cur.Tok != token.EOF {
		p.advance()
	}
	if p.cur.Tok == token.SEMI {
		p.advance()
	}
}

// parseExpr parses a left-associative chain of "+"/"-" terms. It does not
// check that an identifier names a known parameter — every IDENT term
// becomes a VarExpr unconditionally; the compiler's code generator is
// what rejects a reference to an unknown name (UnknownVariableError).
func (p *parser) parseExpr() ast.Expr {
	left := p.parseTerm()
	for p.cur.Tok == token.PLUS || p.cur.Tok == token.MINUS {
		op := p.cur.Tok
		opPos := p.cur.Pos
		p.advance()
		right := p.parseTerm()
		left = &ast.BinOpExpr{Left: left, Op: op, OpPos: opPos, Right: right}
	}
	return left
}

func (p *parser) parseTerm() ast.Expr {
	switch p.cur.Tok {
	case token.INT:
		pos := p.cur.Pos
		lit := p.cur.Lit
		p.advance()
		n, err := strconv.Atoi(lit)
		if err != nil {
			p.errorf(pos, "invalid number literal %q: %s", lit, err)
			n = 0
		}
		return &ast.NumberExpr{ValuePos: pos, Value: n}
	case token.IDENT:
		pos := p.cur.Pos
		name := p.cur.Lit
		p.advance()
		return &ast.VarExpr{NamePos: pos, Name: name}
	default:
		p.errorf(p.cur.Pos, "expected number or identifier, got %s", p.cur.Tok.GoString())
		panic(errPanicMode)
	}
}
