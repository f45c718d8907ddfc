package ledger

import (
	"encoding/binary"
	"fmt"
	"math"
)

// EncodeIndices encodes set indices into a BLOB: a little-endian sequence of
// uint32 values without a length prefix. An empty list encodes to an empty,
// non-NULL BLOB.
func EncodeIndices(indices []int) ([]byte, error) {
	b := make([]byte, len(indices)*4)
	for i, v := range indices {
		if v < 0 || uint64(v) > math.MaxUint32 {
			return nil, fmt.Errorf("ledger: set index %d out of range", v)
		}
		binary.LittleEndian.PutUint32(b[i*4:], uint32(v))
	}
	return b, nil
}

// DecodeIndices decodes a BLOB produced by EncodeIndices.
func DecodeIndices(b []byte) ([]int, error) {
	if len(b)%4 != 0 {
		return nil, fmt.Errorf("ledger: invalid indices blob length %d (not multiple of 4)", len(b))
	}
	out := make([]int, len(b)/4)
	for i := range out {
		out[i] = int(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out, nil
}
