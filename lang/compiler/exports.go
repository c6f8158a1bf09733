package compiler

import "encoding/binary"

// exportEntry is a (function-atom-id, arity, entry-label) triple recorded
// for each user function. Emission order is not semantically significant.
type exportEntry struct {
	NameID, Arity, Label uint32
}

type exportTable struct {
	entries []exportEntry
}

func (t *exportTable) add(nameID, arity, label uint32) {
	t.entries = append(t.entries, exportEntry{NameID: nameID, Arity: arity, Label: label})
}

// serialize returns the ExpT chunk payload: a big-endian count, then
// three big-endian 32-bit fields per entry.
func (t *exportTable) serialize() []byte {
	payload := binary.BigEndian.AppendUint32(nil, uint32(len(t.entries)))
	for _, e := range t.entries {
		payload = binary.BigEndian.AppendUint32(payload, e.NameID)
		payload = binary.BigEndian.AppendUint32(payload, e.Arity)
		payload = binary.BigEndian.AppendUint32(payload, e.Label)
	}
	return payload
}
