package service

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"notepad/internal/model"
)

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		lines int
		words int
		chars int
	}{
		{name: "empty", text: ""},
		{name: "single line", text: "hello", lines: 1, words: 1, chars: 5},
		{name: "trailing newline", text: "a b\nc\n", lines: 2, words: 3, chars: 6},
		{name: "unicode", text: "привет мир", lines: 1, words: 2, chars: 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := ComputeStats(tt.text, 10)
			assert.Equal(t, tt.lines, stats.Lines)
			assert.Equal(t, tt.words, stats.Words)
			assert.Equal(t, tt.chars, stats.Chars)
		})
	}
}

func TestComputeStatsTopWords(t *testing.T) {
	stats := ComputeStats("Go go, GO! rust; zig zig -- c", 3)

	require.Len(t, stats.TopWords, 3)
	assert.Equal(t, model.WordCount{Word: "go", Count: 3}, stats.TopWords[0])
	assert.Equal(t, model.WordCount{Word: "zig", Count: 2}, stats.TopWords[1])
	assert.Equal(t, model.WordCount{Word: "c", Count: 1}, stats.TopWords[2])
	assert.Equal(t, 8, stats.Words)
}

func TestGenerateWordChart(t *testing.T) {
	_, err := GenerateWordChart(model.Stats{}, "empty")
	assert.True(t, errors.Is(err, model.ErrEmptyDocument))

	png, err := GenerateWordChart(ComputeStats("one two two", 10), "words")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(png, []byte("\x89PNG")))
}
