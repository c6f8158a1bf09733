package compiler

// serializeStringChunk returns the StrT chunk, which this compiler never
// populates: the source language has no string literals.
func serializeStringChunk() []byte {
	return frame("StrT", nil)
}
