package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLikelyBinary(t *testing.T) {
	assert.False(t, IsLikelyBinary([]byte("plain text")))
	assert.False(t, IsLikelyBinary(nil))
	assert.True(t, IsLikelyBinary([]byte{'a', 0, 'b'}))

	late := make([]byte, maxBinaryCheckBytes+10)
	for i := range late {
		late[i] = 'x'
	}
	late[maxBinaryCheckBytes+5] = 0
	assert.False(t, IsLikelyBinary(late), "NUL past the sniff window is ignored")
}

func TestCleanText(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("“AI” — it’s here…")...)
	got, err := CleanText(in, "test")
	require.NoError(t, err)
	assert.Equal(t, `"AI" -- it's here...`, got)
}

func TestCleanText_InvalidUTF8(t *testing.T) {
	got, err := CleanText([]byte{'o', 'k', 0xff}, "test")
	require.NoError(t, err)
	assert.Equal(t, "ok�", got)
}
