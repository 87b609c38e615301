package rag_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbot/internal/domain"
	"pitchbot/internal/rag"
)

func TestMemory_AppendAndSummary(t *testing.T) {
	m := rag.NewMemory(6)

	m.Append("q1", "a1")
	m.Append("q2", "a2")

	assert.Equal(t, domain.MemorySummary{Exchanges: 2, TotalMessages: 4}, m.Summary())

	msgs := m.Messages()
	require.Len(t, msgs, 4)
	assert.Equal(t, rag.Message{Role: "user", Content: "q1"}, msgs[0])
	assert.Equal(t, rag.Message{Role: "assistant", Content: "a2"}, msgs[3])
}

func TestMemory_BoundedDropsOldest(t *testing.T) {
	m := rag.NewMemory(6)

	for i := 0; i < 5; i++ {
		m.Append("question", "answer")
	}

	assert.Equal(t, domain.MemorySummary{Exchanges: 3, TotalMessages: 6}, m.Summary())
}

func TestMemory_Clear(t *testing.T) {
	m := rag.NewMemory(6)
	m.Append("q", "a")

	m.Clear()

	assert.Equal(t, domain.MemorySummary{}, m.Summary())
	assert.Empty(t, m.Messages())
}

func TestMemoryBank_PerCollection(t *testing.T) {
	b := rag.NewMemoryBank(6)

	b.For("temp-1").Append("q", "a")

	assert.Equal(t, 2, b.For("temp-1").Summary().TotalMessages)
	assert.Zero(t, b.For("temp-2").Summary().TotalMessages)
}

func TestMemoryBank_RenameFollowsFinalize(t *testing.T) {
	b := rag.NewMemoryBank(6)
	b.For("temp-1").Append("q", "a")

	b.Rename("temp-1", "bot-1")

	assert.Equal(t, 2, b.For("bot-1").Summary().TotalMessages)
}
