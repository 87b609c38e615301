package rag

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

// Options tunes chunking and retrieval.
type Options struct {
	ChunkSize    int
	ChunkOverlap int
	TopK         int
}

func (o Options) withDefaults() Options {
	if o.ChunkSize <= 0 {
		o.ChunkSize = 1000
	}
	if o.ChunkOverlap < 0 {
		o.ChunkOverlap = 200
	}
	if o.TopK <= 0 {
		o.TopK = 3
	}
	return o
}

// Engine drives the knowledge-base lifecycle: build a temporary collection
// from resume knowledge, answer queries against it, and promote it to a
// permanent name on finalize. Providers are passed per call because each bot
// brings its own key.
type Engine struct {
	store  port.VectorStore
	memory *MemoryBank
	opts   Options
}

// NewEngine creates an Engine over a vector store.
func NewEngine(store port.VectorStore, memory *MemoryBank, opts Options) *Engine {
	return &Engine{store: store, memory: memory, opts: opts.withDefaults()}
}

// TempCollectionName mints a fresh temporary collection handle.
func TempCollectionName() string {
	return "temp-" + uuid.New().String()
}

// IsTemporary reports whether a collection handle is an unfinalized one.
func IsTemporary(collection string) bool {
	return strings.HasPrefix(collection, "temp-")
}

// BuildTemporary chunks and embeds the knowledge text into a new temporary
// collection and returns its handle.
func (e *Engine) BuildTemporary(ctx context.Context, embedder port.Embedder, knowledgeText string) (string, error) {
	collection := TempCollectionName()
	if err := e.index(ctx, embedder, collection, knowledgeText, 0); err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrBuildFailure, err)
	}
	log.Printf("rag.Engine: built temporary collection %s", collection)
	return collection, nil
}

// AddDocuments chunks and embeds additional text into an existing collection.
// Returns the number of chunks added.
func (e *Engine) AddDocuments(ctx context.Context, embedder port.Embedder, collection, text string) (int, error) {
	existing, err := e.store.Count(ctx, collection)
	if err != nil {
		return 0, err
	}
	chunks := Chunk(text, e.opts.ChunkSize, e.opts.ChunkOverlap)
	if len(chunks) == 0 {
		return 0, nil
	}
	if err := e.indexChunks(ctx, embedder, collection, chunks, existing); err != nil {
		return 0, err
	}
	return len(chunks), nil
}

func (e *Engine) index(ctx context.Context, embedder port.Embedder, collection, text string, startPos int) error {
	chunks := Chunk(text, e.opts.ChunkSize, e.opts.ChunkOverlap)
	if len(chunks) == 0 {
		return fmt.Errorf("no indexable content")
	}
	return e.indexChunks(ctx, embedder, collection, chunks, startPos)
}

func (e *Engine) indexChunks(ctx context.Context, embedder port.Embedder, collection string, texts []string, startPos int) error {
	vectors, err := embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("embedding chunks: %w", err)
	}
	if len(vectors) != len(texts) {
		return fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(texts))
	}

	chunks := make([]domain.Chunk, len(texts))
	for i, text := range texts {
		chunks[i] = domain.Chunk{
			ID:         uuid.New(),
			Collection: collection,
			Position:   startPos + i,
			Text:       text,
			Embedding:  vectors[i],
		}
	}
	return e.store.InsertChunks(ctx, collection, chunks)
}

// Finalize promotes a temporary collection to its permanent name. Conversation
// memory follows the rename.
func (e *Engine) Finalize(ctx context.Context, tempCollection, permanentCollection string) error {
	if tempCollection == permanentCollection {
		return nil
	}
	if err := e.store.Rename(ctx, tempCollection, permanentCollection); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFinalizeFailure, err)
	}
	e.memory.Rename(tempCollection, permanentCollection)
	log.Printf("rag.Engine: finalized %s as %s", tempCollection, permanentCollection)
	return nil
}

// Answer holds a chat reply plus the memory state after it.
type Answer struct {
	Text   string
	Memory domain.MemorySummary
}

// Query embeds the question, retrieves the top matching chunks, and asks the
// generator for an advocate-voiced answer. Empty retrieval short-circuits to
// a fixed reply without spending a generation call.
func (e *Engine) Query(ctx context.Context, provider port.LLMProvider, collection, query string) (*Answer, error) {
	vectors, err := provider.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("embedder returned no vector for query")
	}

	matches, err := e.store.Search(ctx, collection, vectors[0], e.opts.TopK)
	if err != nil {
		return nil, err
	}

	mem := e.memory.For(collection)
	if len(matches) == 0 {
		return &Answer{Text: noContextAnswer, Memory: mem.Summary()}, nil
	}

	contextChunks := make([]string, len(matches))
	for i, m := range matches {
		contextChunks[i] = m.Chunk.Text
	}

	prompt := BuildPrompt(contextChunks, mem.Messages(), query)
	answer, err := provider.Generate(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("generating answer: %w", err)
	}

	mem.Append(query, answer)
	return &Answer{Text: answer, Memory: mem.Summary()}, nil
}

// ResetMemory clears a collection's conversation buffer.
func (e *Engine) ResetMemory(collection string) {
	e.memory.For(collection).Clear()
}

// MemorySummary reports a collection's conversation state.
func (e *Engine) MemorySummary(collection string) domain.MemorySummary {
	return e.memory.For(collection).Summary()
}

// Drop removes a collection outright, e.g. an abandoned temporary one.
func (e *Engine) Drop(ctx context.Context, collection string) error {
	return e.store.Delete(ctx, collection)
}
