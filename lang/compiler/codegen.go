package compiler

import (
	"github.com/mna/bada/lang/ast"
	"github.com/mna/bada/lang/token"
)

// moduleAtomName is the synthetic module name every function in the
// output belongs to, regardless of the source file it came from. A real
// multi-file linker would derive this from the source file stem instead.
const moduleAtomName = "bada"

// codegen is the per-compilation code generator state: the atom table,
// import table and export table it feeds, the label counter, and the
// growing code byte buffer. It is created fresh for each call to Compile
// and discarded once that call returns.
type codegen struct {
	atoms   *atomTable
	imports *importTable
	exports *exportTable
	fset    *token.FileSet

	labelCount    uint32
	functionCount uint32
	code          []byte
	moduleAtomID  uint32
}

func newCodegen(atoms *atomTable, imports *importTable, exports *exportTable, fset *token.FileSet, moduleAtomID uint32) *codegen {
	return &codegen{
		atoms:        atoms,
		imports:      imports,
		exports:      exports,
		fset:         fset,
		moduleAtomID: moduleAtomID,
	}
}

func (c *codegen) emitByte(b byte) { c.code = append(c.code, b) }

func (c *codegen) emitArg(tag Tag, n int) error {
	b, err := encodeArg(tag, n)
	if err != nil {
		return err
	}
	c.code = append(c.code, b...)
	return nil
}

// compileFunction emits one user function's header, body and epilogue,
// and records its export entry.
func (c *codegen) compileFunction(fn *ast.Function) error {
	c.functionCount++

	c.labelCount++
	hdrLabel := c.labelCount
	c.emitByte(byte(opLabel))
	if err := c.emitArg(TagU, int(hdrLabel)); err != nil {
		return err
	}

	nameID := c.atoms.intern(fn.Name)
	arity := len(fn.Params)

	c.emitByte(byte(opFuncInfo))
	if err := c.emitArg(TagA, int(c.moduleAtomID)); err != nil {
		return err
	}
	if err := c.emitArg(TagA, int(nameID)); err != nil {
		return err
	}
	if err := c.emitArg(TagU, arity); err != nil {
		return err
	}

	c.labelCount++
	entryLabel := c.labelCount
	c.emitByte(byte(opLabel))
	if err := c.emitArg(TagU, int(entryLabel)); err != nil {
		return err
	}
	c.exports.add(nameID, uint32(arity), entryLabel)

	paramIndex := make(map[string]int, len(fn.Params))
	for i, p := range fn.Params {
		paramIndex[p.Name] = i
	}

	fc := &funcgen{codegen: c, arity: arity, params: paramIndex}
	if err := fc.compileExpr(fn.Body); err != nil {
		return err
	}

	if arity > 0 {
		c.emitByte(byte(opMove))
		if err := c.emitArg(TagX, arity); err != nil {
			return err
		}
		if err := c.emitArg(TagX, 0); err != nil {
			return err
		}
	}

	c.emitByte(byte(opReturn))
	return nil
}

// finish emits the single int_code_end sentinel and bumps the label
// count one past the highest allocated label: the recorded label count
// always equals the number of labels referenced plus one.
func (c *codegen) finish() {
	c.emitByte(byte(opIntCodeEnd))
	c.labelCount++
}

// funcgen is the per-function half of code generation: the virtual
// register allocation discipline. arity is S, the number of parameters
// permanently occupying X0..X(arity-1); depth is D, the number of
// scratch slots already committed to in-flight sub-expression results.
type funcgen struct {
	*codegen
	arity  int
	params map[string]int
	depth  int
}

func (f *funcgen) dest() int { return f.arity + f.depth }

func (f *funcgen) compileExpr(e ast.Expr) error {
	switch e := e.(type) {
	case *ast.NumberExpr:
		f.emitByte(byte(opMove))
		if err := f.emitArg(TagI, e.Value); err != nil {
			return err
		}
		if err := f.emitArg(TagX, f.dest()); err != nil {
			return err
		}
		f.depth++
		return nil

	case *ast.VarExpr:
		idx, ok := f.params[e.Name]
		if !ok {
			return &UnknownVariableError{Name: e.Name, Pos: f.position(e.NamePos)}
		}
		f.emitByte(byte(opMove))
		if err := f.emitArg(TagX, idx); err != nil {
			return err
		}
		if err := f.emitArg(TagX, f.dest()); err != nil {
			return err
		}
		f.depth++
		return nil

	case *ast.BinOpExpr:
		if err := f.compileExpr(e.Left); err != nil {
			return err
		}
		if err := f.compileExpr(e.Right); err != nil {
			return err
		}
		if f.depth < 2 {
			return &InternalError{Assertion: "binop requires two operands on the virtual stack"}
		}

		importIdx, ok := f.imports.indexFor(e.Op)
		if !ok {
			return &InternalError{Assertion: "no import registered for binary operator " + e.Op.String()}
		}

		arg1 := f.arity + f.depth - 2
		arg2 := f.arity + f.depth - 1

		f.emitByte(byte(opGcBif2))
		if err := f.emitArg(TagF, 0); err != nil {
			return err
		}
		if err := f.emitArg(TagU, 2); err != nil {
			return err
		}
		if err := f.emitArg(TagU, int(importIdx)); err != nil {
			return err
		}
		if err := f.emitArg(TagX, arg1); err != nil {
			return err
		}
		if err := f.emitArg(TagX, arg2); err != nil {
			return err
		}
		if err := f.emitArg(TagX, arg1); err != nil {
			return err
		}
		f.depth--
		return nil

	default:
		return &InternalError{Assertion: "unhandled expression type in code generator"}
	}
}

// position resolves a token.Pos to a token.Position using the file that
// produced it. The position is only meaningful if pos came from the same
// file set the compiler was handed; Compile keeps track of that.
func (f *funcgen) position(pos token.Pos) token.Position {
	if f.codegen.fset == nil {
		return token.Position{}
	}
	return f.codegen.fset.Position(pos)
}
