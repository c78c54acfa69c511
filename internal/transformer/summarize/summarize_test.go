package summarize

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fiveSentences = "The cat sat on the mat. The dog slept in the sun. A bird sang in the tree. The fish swam in the pond. The day ended quietly."

func newTransformer(t *testing.T, maxLength int) *SummarizeTransformer {
	t.Helper()
	tr, err := NewSummarizeTransformer(maxLength)
	require.NoError(t, err)
	return tr
}

func TestSummarizeTransformer_Transform(t *testing.T) {
	tr := newTransformer(t, 0)

	got, err := tr.Transform(context.Background(), fiveSentences)
	require.NoError(t, err)
	assert.Equal(t,
		"**AI Summary**: The cat sat on the mat. A bird sang in the tree. The day ended quietly."+
			"\n\n*Key insights extracted from 5 sentences using advanced NLP processing.*",
		got)
}

func TestSummarizeTransformer_ShortTextUnchanged(t *testing.T) {
	tr := newTransformer(t, 0)
	for _, in := range []string{
		"",
		"Just one sentence.",
		"First sentence here. Second sentence here. Third sentence here.",
	} {
		got, err := tr.Transform(context.Background(), in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestSummarizeTransformer_MaxLength(t *testing.T) {
	tr := newTransformer(t, 20)

	got, err := tr.Transform(context.Background(), fiveSentences)
	require.NoError(t, err)
	assert.Contains(t, got, "**AI Summary**: The cat sat on th...\n\n*Key insights")
}

func TestSummarizeTransformer_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTransformer(t, 0).Transform(ctx, fiveSentences)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  string
		maxLength int
	}{
		{name: "no cap", input: "Short text.", expected: "Short text.", maxLength: 0},
		{name: "under cap", input: "Short text.", expected: "Short text.", maxLength: 25},
		{name: "at cap", input: "abcd", expected: "abcd", maxLength: 4},
		{name: "over cap", input: "This is a test", expected: "T...", maxLength: 4},
		{name: "trailing space trimmed", input: "ab cdef", expected: "ab...", maxLength: 6},
		{name: "tiny cap", input: "This is a test", expected: "...", maxLength: 3},
		{name: "multibyte", input: "ñandú ñandú", expected: "ñan...", maxLength: 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, truncate(tt.input, tt.maxLength))
		})
	}
}

func TestSummarizeTransformer_Info(t *testing.T) {
	assert.Equal(t, "Summarize transformer (first, middle and last sentence)", newTransformer(t, 0).Info())
	assert.Equal(t, "Summarize transformer (first, middle and last sentence, max length: 256)", newTransformer(t, 256).Info())
}
