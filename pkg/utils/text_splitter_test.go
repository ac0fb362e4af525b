package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitTextShortInputSingleChunk(t *testing.T) {
	chunks := SplitText("short text", 100, 10)
	assert.Equal(t, []string{"short text"}, chunks)
}

func TestSplitTextChunkBounds(t *testing.T) {
	text := strings.Repeat("a", 350)
	chunks := SplitText(text, 100, 20)

	assert.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 100)
	}
}

func TestSplitTextOverlapPreserved(t *testing.T) {
	text := strings.Repeat("abcdefghij", 30) // 300 chars
	chunks := SplitText(text, 100, 20)

	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		tail := prev[len(prev)-20:]
		assert.True(t, strings.HasPrefix(chunks[i], tail), "chunk %d must start with the previous chunk's overlap", i)
	}
}

func TestSplitTextOverlapLargerThanChunkDoesNotLoop(t *testing.T) {
	text := strings.Repeat("x", 500)
	chunks := SplitText(text, 100, 100)

	assert.NotEmpty(t, chunks)
	joined := strings.Join(chunks, "")
	assert.GreaterOrEqual(t, len(joined), 500)
}

func TestSplitTextCoversWholeInput(t *testing.T) {
	text := "The quick brown fox jumps over the lazy dog. " + strings.Repeat("Biology notes. ", 50)
	chunks := SplitText(text, 120, 30)

	last := chunks[len(chunks)-1]
	assert.True(t, strings.HasSuffix(text, last))
}
