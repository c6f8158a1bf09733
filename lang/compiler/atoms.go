package compiler

import (
	"encoding/binary"

	"github.com/dolthub/swiss"
)

// atomTable is an append-only, 1-indexed interning table mapping textual
// names to stable integer ids. Id 0 is reserved and never handed out;
// ids are dense, starting at 1, in insertion order.
type atomTable struct {
	names []string          // insertion order, names[i] has id i+1
	ids   *swiss.Map[string, uint32]
}

func newAtomTable() *atomTable {
	return &atomTable{ids: swiss.NewMap[string, uint32](16)}
}

// intern returns name's id, appending it with a new id if not already
// present.
func (t *atomTable) intern(name string) uint32 {
	if id, ok := t.ids.Get(name); ok {
		return id
	}
	t.names = append(t.names, name)
	id := uint32(len(t.names))
	t.ids.Put(name, id)
	return id
}

// serialize returns the AtU8 chunk payload: a big-endian count followed
// by, for each atom in insertion order, a 1-byte length and its raw UTF-8
// bytes.
func (t *atomTable) serialize() []byte {
	payload := binary.BigEndian.AppendUint32(nil, uint32(len(t.names)))
	for _, name := range t.names {
		payload = append(payload, byte(len(name)))
		payload = append(payload, name...)
	}
	return payload
}
