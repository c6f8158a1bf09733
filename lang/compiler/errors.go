package compiler

import (
	"fmt"

	"github.com/mna/bada/lang/token"
)

// EncodingUnsupportedError is returned when an operand is outside the
// range the compact argument encoding currently implements: negative, or
// too large to fit the two-byte short form (spec's 0x800 ceiling).
type EncodingUnsupportedError struct {
	N int
}

func (e *EncodingUnsupportedError) Error() string {
	return fmt.Sprintf("compiler: operand %d is outside the supported encoding range", e.N)
}

// UnknownVariableError is returned when an expression references a name
// that is not a parameter of its enclosing function.
type UnknownVariableError struct {
	Name string
	Pos  token.Position
}

func (e *UnknownVariableError) Error() string {
	return fmt.Sprintf("%s: unknown variable %q", e.Pos, e.Name)
}

// InternalError indicates a compiler bug: a violation of the virtual
// register stack discipline that should be impossible for any AST built
// by this repo's own parser. It is not a user-facing error; callers that
// see one should treat it as a crash, not a diagnosable input problem.
type InternalError struct {
	Assertion string
}

func (e *InternalError) Error() string {
	return fmt.Sprintf("compiler: internal error: %s", e.Assertion)
}
