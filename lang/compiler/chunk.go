package compiler

import "encoding/binary"

// frame wraps payload in a four-character tag, a big-endian 32-bit length
// field recording len(payload) (padding excluded), and trailing zero bytes
// padding the whole framed chunk to a four-byte boundary.
func frame(tag string, payload []byte) []byte {
	if len(tag) != 4 {
		panic(&InternalError{Assertion: "chunk tag must be 4 bytes"})
	}

	out := make([]byte, 0, 8+len(payload)+3)
	out = append(out, tag...)
	out = binary.BigEndian.AppendUint32(out, uint32(len(payload)))
	out = append(out, payload...)
	for len(out)%4 != 0 {
		out = append(out, 0)
	}
	return out
}
