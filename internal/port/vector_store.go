package port

import (
	"context"

	"pitchbot/internal/domain"
)

// VectorStore holds embedded knowledge-base chunks grouped into named
// collections. Temporary collections use a "temp-" name prefix and are
// promoted to a permanent name by Rename.
type VectorStore interface {
	InsertChunks(ctx context.Context, collection string, chunks []domain.Chunk) error
	Search(ctx context.Context, collection string, query []float32, topK int) ([]domain.ChunkMatch, error)
	Rename(ctx context.Context, oldName, newName string) error
	Count(ctx context.Context, collection string) (int, error)
	Delete(ctx context.Context, collection string) error
}
