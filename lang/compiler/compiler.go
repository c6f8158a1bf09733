// Package compiler is the core of bada: it lowers a validated AST (see
// package ast) into a BEAM-compatible .beam module, byte for byte. It
// does not tokenize or parse source code and does not format diagnostics
// for a terminal — those are the scanner and parser packages' jobs; this
// package's only output is the compiled bytes or the first error.
package compiler

import (
	"encoding/binary"

	"github.com/mna/bada/lang/ast"
	"github.com/mna/bada/lang/token"
)

// Compile lowers mod to a complete .beam module, including its outer
// envelope. It is the sole entry point of the core compiler. On success
// it returns the full module bytes; on the first error encountered
// (there is no error recovery across functions, unlike the parser) it
// returns nil and that error. fset, if non-nil, is used to resolve AST
// positions in any returned error; it may be nil if positions don't
// matter to the caller (e.g. in tests building an AST by hand).
func Compile(mod *ast.Module, fset *token.FileSet) ([]byte, error) {
	atoms := newAtomTable()
	// The synthetic module name is preloaded before any other atom so it
	// is always id 1.
	moduleAtomID := atoms.intern(moduleAtomName)
	imports := newImportTable(atoms)
	exports := &exportTable{}
	gen := newCodegen(atoms, imports, exports, fset, moduleAtomID)

	for _, fn := range mod.Funcs {
		if err := gen.compileFunction(fn); err != nil {
			return nil, err
		}
	}
	gen.finish()

	codeChunk := serializeCodeChunk(gen.labelCount, gen.functionCount, gen.code)

	inner := make([]byte, 0, 4+len(codeChunk))
	inner = append(inner, "BEAM"...)
	inner = append(inner, frame("ImpT", imports.serialize())...)
	inner = append(inner, codeChunk...)
	inner = append(inner, frame("ExpT", exports.serialize())...)
	inner = append(inner, serializeStringChunk()...)
	inner = append(inner, frame("AtU8", atoms.serialize())...)

	out := make([]byte, 0, 8+len(inner))
	out = append(out, "FOR1"...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(inner)))
	out = append(out, inner...)
	return out, nil
}

// serializeCodeChunk builds the Code chunk payload: the fixed 20-byte
// sub-header (SubSize, InstructionSet, OpcodeMax, LabelCount,
// FunctionCount; SubSize records the 16 bytes that follow it) followed by
// the raw instruction stream, framed under the "Code" tag.
func serializeCodeChunk(labelCount, functionCount uint32, code []byte) []byte {
	const subSize uint32 = 16

	payload := make([]byte, 0, 16+len(code))
	payload = binary.BigEndian.AppendUint32(payload, subSize)
	payload = binary.BigEndian.AppendUint32(payload, instructionSet)
	payload = binary.BigEndian.AppendUint32(payload, opcodeMax)
	payload = binary.BigEndian.AppendUint32(payload, labelCount)
	payload = binary.BigEndian.AppendUint32(payload, functionCount)
	payload = append(payload, code...)

	return frame("Code", payload)
}
