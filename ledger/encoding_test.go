package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndicesEncoding(t *testing.T) {
	blob, err := EncodeIndices([]int{0, 3, 258})
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 3, 0, 0, 0, 2, 1, 0, 0}, blob)

	indices, err := DecodeIndices(blob)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 258}, indices)

	_, err = EncodeIndices([]int{-1})
	assert.Error(t, err)
	_, err = DecodeIndices([]byte{1, 2, 3})
	assert.Error(t, err)
}
