package postgres

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

type vectorRepo struct {
	db *sqlx.DB
}

// NewVectorRepo creates a pgvector-backed VectorStore. The chunks table holds
// one row per embedded fragment; a collection is just a shared name, so
// promotion from temporary to permanent is a single UPDATE.
func NewVectorRepo(db *sqlx.DB) port.VectorStore {
	return &vectorRepo{db: db}
}

func (r *vectorRepo) InsertChunks(ctx context.Context, collection string, chunks []domain.Chunk) error {
	if len(chunks) == 0 {
		return nil
	}
	now := time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("vectorRepo.InsertChunks begin: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	query := `INSERT INTO chunks (id, collection_name, position, text, embedding, created_at)
		VALUES ($1, $2, $3, $4, $5::vector, $6)`
	for _, c := range chunks {
		if _, err := tx.ExecContext(ctx, query,
			c.ID, collection, c.Position, c.Text, VectorLiteral(c.Embedding), now); err != nil {
			return fmt.Errorf("vectorRepo.InsertChunks: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("vectorRepo.InsertChunks commit: %w", err)
	}
	return nil
}

func (r *vectorRepo) Search(ctx context.Context, collection string, query []float32, topK int) ([]domain.ChunkMatch, error) {
	if topK <= 0 {
		topK = 3
	}
	count, err := r.Count(ctx, collection)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, domain.ErrCollectionNotFound
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id, collection_name, position, text,
       1 - (embedding <=> $2::vector) AS score
FROM chunks
WHERE collection_name = $1
ORDER BY embedding <=> $2::vector
LIMIT $3`, collection, VectorLiteral(query), topK)
	if err != nil {
		return nil, fmt.Errorf("vectorRepo.Search: %w", err)
	}
	defer func() { _ = rows.Close() }()

	matches := make([]domain.ChunkMatch, 0, topK)
	for rows.Next() {
		var m domain.ChunkMatch
		if err := rows.Scan(&m.Chunk.ID, &m.Chunk.Collection, &m.Chunk.Position, &m.Chunk.Text, &m.Score); err != nil {
			return nil, fmt.Errorf("vectorRepo.Search scan: %w", err)
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

func (r *vectorRepo) Rename(ctx context.Context, oldName, newName string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE chunks SET collection_name = $2 WHERE collection_name = $1`, oldName, newName)
	if err != nil {
		return fmt.Errorf("vectorRepo.Rename: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrCollectionNotFound
	}
	return nil
}

func (r *vectorRepo) Count(ctx context.Context, collection string) (int, error) {
	var n int
	err := r.db.GetContext(ctx, &n,
		`SELECT COUNT(*) FROM chunks WHERE collection_name = $1`, collection)
	if err != nil {
		return 0, fmt.Errorf("vectorRepo.Count: %w", err)
	}
	return n, nil
}

func (r *vectorRepo) Delete(ctx context.Context, collection string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM chunks WHERE collection_name = $1`, collection); err != nil {
		return fmt.Errorf("vectorRepo.Delete: %w", err)
	}
	return nil
}

// VectorLiteral renders a float32 slice as a pgvector text literal.
func VectorLiteral(vec []float32) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range vec {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(float64(v), 'f', -1, 32))
	}
	b.WriteByte(']')
	return b.String()
}
