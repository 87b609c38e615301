package rag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbot/internal/rag"
)

func TestChunk_ShortTextSingleChunk(t *testing.T) {
	chunks := rag.Chunk("hello world", 1000, 200)

	require.Len(t, chunks, 1)
	assert.Equal(t, "hello world", chunks[0])
}

func TestChunk_EmptyText(t *testing.T) {
	assert.Empty(t, rag.Chunk("", 1000, 200))
	assert.Empty(t, rag.Chunk("   \n\t  ", 1000, 200))
}

func TestChunk_OverlappingWindows(t *testing.T) {
	text := strings.Repeat("a", 25)

	chunks := rag.Chunk(text, 10, 5)

	// Step of 5: windows at 0, 5, 10, 15. The window starting at 15 reaches
	// the end of the text, so no tail window contained in it is emitted.
	require.Len(t, chunks, 4)
	assert.Equal(t, strings.Repeat("a", 10), chunks[0])
	assert.Equal(t, strings.Repeat("a", 10), chunks[3])
}

func TestChunk_NoRedundantTailWindow(t *testing.T) {
	text := strings.Repeat("c", 12)

	chunks := rag.Chunk(text, 10, 5)

	// [0:10] then [5:12]; a further window at 10 would add nothing new.
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[1], 7)
}

func TestChunk_NoOverlap(t *testing.T) {
	text := strings.Repeat("b", 30)

	chunks := rag.Chunk(text, 10, 0)

	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Len(t, c, 10)
	}
}

func TestChunk_RuneSafe(t *testing.T) {
	text := strings.Repeat("héllo wörld ", 20)

	chunks := rag.Chunk(text, 50, 10)

	for _, c := range chunks {
		assert.True(t, strings.ContainsRune(c, 'é') || strings.ContainsRune(c, 'ö') || c != "")
		// No broken UTF-8 sequences.
		assert.Equal(t, c, string([]rune(c)))
	}
}

func TestChunk_DefaultsApplied(t *testing.T) {
	text := strings.Repeat("x", 1500)

	chunks := rag.Chunk(text, 0, -1)

	// 1000-rune default window, zero overlap when invalid.
	require.Len(t, chunks, 2)
	assert.Len(t, chunks[0], 1000)
	assert.Len(t, chunks[1], 500)
}

func TestChunk_OverlapLargerThanSizeIgnored(t *testing.T) {
	text := strings.Repeat("y", 30)

	chunks := rag.Chunk(text, 10, 10)

	require.Len(t, chunks, 3)
}
