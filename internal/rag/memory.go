package rag

import (
	"sync"

	"pitchbot/internal/domain"
)

// Message is one conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Memory is a bounded per-collection conversation buffer. Oldest messages
// fall off once the cap is reached.
type Memory struct {
	mu       sync.Mutex
	max      int
	messages []Message
}

// NewMemory creates a Memory holding at most max messages.
func NewMemory(max int) *Memory {
	if max <= 0 {
		max = 6
	}
	return &Memory{max: max}
}

// Append records a user/assistant exchange.
func (m *Memory) Append(query, answer string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = append(m.messages,
		Message{Role: "user", Content: query},
		Message{Role: "assistant", Content: answer},
	)
	if over := len(m.messages) - m.max; over > 0 {
		m.messages = m.messages[over:]
	}
}

// Messages returns a copy of the buffered conversation.
func (m *Memory) Messages() []Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Message, len(m.messages))
	copy(out, m.messages)
	return out
}

// Clear drops the conversation.
func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages = nil
}

// Summary reports the buffer state.
func (m *Memory) Summary() domain.MemorySummary {
	m.mu.Lock()
	defer m.mu.Unlock()
	return domain.MemorySummary{
		TotalMessages: len(m.messages),
		Exchanges:     len(m.messages) / 2,
	}
}

// MemoryBank hands out one Memory per collection.
type MemoryBank struct {
	mu       sync.Mutex
	max      int
	memories map[string]*Memory
}

// NewMemoryBank creates a MemoryBank with the given per-collection cap.
func NewMemoryBank(max int) *MemoryBank {
	return &MemoryBank{max: max, memories: map[string]*Memory{}}
}

// For returns the Memory for a collection, creating it on first use.
func (b *MemoryBank) For(collection string) *Memory {
	b.mu.Lock()
	defer b.mu.Unlock()
	m, ok := b.memories[collection]
	if !ok {
		m = NewMemory(b.max)
		b.memories[collection] = m
	}
	return m
}

// Rename moves a collection's memory to a new name, e.g. on finalize.
func (b *MemoryBank) Rename(oldName, newName string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.memories[oldName]; ok {
		delete(b.memories, oldName)
		b.memories[newName] = m
	}
}
