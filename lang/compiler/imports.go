package compiler

import (
	"encoding/binary"

	"github.com/dolthub/swiss"
	"github.com/mna/bada/lang/token"
)

// importEntry is a (module-atom-id, function-atom-id, arity) triple the
// generated code may reference by its position in the import table.
type importEntry struct {
	Module, Func, Arity uint32
}

// importTable holds the fixed set of built-in operators the generated
// code can call, plus the mapping from source operator token to import
// index that the code generator consults when emitting GcBif2.
//
// This is deliberately shaped as a small map keyed by operator symbol,
// populated once up front and frozen before the import chunk is
// serialized, so indices stay stable between recording and emission even
// though only two operators exist today.
type importTable struct {
	entries  []importEntry
	byOpKind *swiss.Map[token.Token, uint32] // operator token -> import index
}

// newImportTable interns "erlang", "+" and "-" and records the two fixed
// import entries in the order the target VM expects: "+" at index 0,
// "-" at index 1.
func newImportTable(atoms *atomTable) *importTable {
	erlang := atoms.intern("erlang")
	plus := atoms.intern("+")
	minus := atoms.intern("-")

	t := &importTable{byOpKind: swiss.NewMap[token.Token, uint32](2)}
	t.entries = append(t.entries, importEntry{Module: erlang, Func: plus, Arity: 2})
	t.byOpKind.Put(token.PLUS, 0)
	t.entries = append(t.entries, importEntry{Module: erlang, Func: minus, Arity: 2})
	t.byOpKind.Put(token.MINUS, 1)
	return t
}

// indexFor returns the import index of the built-in bound to a binary
// operator token. It only ever returns ok=false for a token this compiler
// does not implement, which the code generator treats as an internal
// error since the parser never produces such a BinOpExpr.
func (t *importTable) indexFor(op token.Token) (uint32, bool) {
	return t.byOpKind.Get(op)
}

// serialize returns the ImpT chunk payload: a big-endian count, then
// three big-endian 32-bit fields per entry.
func (t *importTable) serialize() []byte {
	payload := binary.BigEndian.AppendUint32(nil, uint32(len(t.entries)))
	for _, e := range t.entries {
		payload = binary.BigEndian.AppendUint32(payload, e.Module)
		payload = binary.BigEndian.AppendUint32(payload, e.Func)
		payload = binary.BigEndian.AppendUint32(payload, e.Arity)
	}
	return payload
}
