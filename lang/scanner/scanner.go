// Package scanner tokenizes bada source files for the parser to consume.
// It drives a go/token.File and reports errors through a
// go/scanner.ErrorList rather than a bespoke error type.
package scanner

import (
	"fmt"
	"go/scanner"
	"os"

	"github.com/mna/bada/lang/token"
)

type (
	// Error and ErrorList are the standard library's scanner error types,
	// reused as-is: a position-tagged message and a sortable list of them.
	Error     = scanner.Error
	ErrorList = scanner.ErrorList
)

// PrintError prints each error in err (if it is an ErrorList, or a single
// error otherwise) to w, one per line.
var PrintError = scanner.PrintError

// TokenValue pairs a scanned token with its literal text (when relevant)
// and its position in the source file.
type TokenValue struct {
	Tok token.Token
	Lit string
	Pos token.Pos
}

// ScanFile tokenizes the named file and returns the file set (with a
// single file registered), the list of scanned tokens, and any error
// encountered. The error, if non-nil, is an ErrorList.
func ScanFile(path string) (*token.FileSet, []TokenValue, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		var el ErrorList
		el.Add(token.Position{Filename: path}, err.Error())
		return nil, nil, el.Err()
	}

	fs := token.NewFileSet()
	file := fs.AddFile(path, -1, len(b))

	var (
		s  Scanner
		el ErrorList
	)
	s.Init(file, b, el.Add)

	var toks []TokenValue
	for {
		tv := s.Scan()
		toks = append(toks, tv)
		if tv.Tok == token.EOF {
			break
		}
	}
	return fs, toks, el.Err()
}

// Scanner tokenizes a single source file.
type Scanner struct {
	file *token.File
	src  []byte
	err  func(token.Position, string)

	cur  rune // current character, -1 at EOF
	off  int  // byte offset of cur
	roff int  // byte offset following cur
}

// Init prepares s to scan src, the contents of file.
func (s *Scanner) Init(file *token.File, src []byte, errHandler func(token.Position, string)) {
	s.file = file
	s.src = src
	s.err = errHandler
	s.cur = ' '
	s.off = 0
	s.roff = 0
	s.advance()
}

func (s *Scanner) advance() {
	if s.roff >= len(s.src) {
		s.off = len(s.src)
		if s.cur == '\n' {
			s.file.AddLine(s.off)
		}
		s.cur = -1
		return
	}
	s.off = s.roff
	if s.cur == '\n' {
		s.file.AddLine(s.off)
	}
	s.cur = rune(s.src[s.roff])
	s.roff++
}

func (s *Scanner) error(off int, msg string) {
	if s.err != nil {
		s.err(s.file.Position(s.file.Pos(off)), msg)
	}
}

func (s *Scanner) errorf(off int, format string, args ...any) {
	s.error(off, fmt.Sprintf(format, args...))
}

func (s *Scanner) skipWhitespace() {
	for s.cur == ' ' || s.cur == '\t' || s.cur == '\n' || s.cur == '\r' {
		s.advance()
	}
}

func isLetter(r rune) bool {
	return r == '_' || 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

func (s *Scanner) ident() string {
	start := s.off
	for isLetter(s.cur) || isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

func (s *Scanner) number() string {
	start := s.off
	for isDigit(s.cur) {
		s.advance()
	}
	return string(s.src[start:s.off])
}

// Scan returns the next token in the source file, ending with a final
// token.EOF once the source is exhausted.
func (s *Scanner) Scan() TokenValue {
	s.skipWhitespace()

	pos := s.file.Pos(s.off)
	off := s.off

	switch {
	case s.cur < 0:
		return TokenValue{Tok: token.EOF, Pos: pos}
	case isLetter(s.cur):
		lit := s.ident()
		return TokenValue{Tok: token.IDENT, Lit: lit, Pos: pos}
	case isDigit(s.cur):
		lit := s.number()
		return TokenValue{Tok: token.INT, Lit: lit, Pos: pos}
	}

	tok := token.ILLEGAL
	ch := s.cur
	s.advance()
	switch ch {
	case '+':
		tok = token.PLUS
	case '-':
		tok = token.MINUS
	case '=':
		tok = token.EQ
	case ';':
		tok = token.SEMI
	case '(':
		tok = token.LPAREN
	case ')':
		tok = token.RPAREN
	default:
		s.errorf(off, "illegal character %#U", ch)
	}
	return TokenValue{Tok: tok, Pos: pos}
}
