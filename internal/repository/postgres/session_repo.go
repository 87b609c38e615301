package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

type sessionRepo struct {
	db *sqlx.DB
}

// NewSessionRepo creates a PostgreSQL-backed SessionStore. The snapshot is
// stored as one JSON document; by construction it never contains the raw
// resume binary, only its metadata.
func NewSessionRepo(db *sqlx.DB) port.SessionStore {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Save(ctx context.Context, rec *domain.SessionRecord) error {
	doc, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("sessionRepo.Save marshal: %w", err)
	}

	query := `INSERT INTO pipeline_sessions (id, phase, doc, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET phase = $2, doc = $3, updated_at = $5`

	now := time.Now().UTC()
	created := rec.CreatedAt
	if created.IsZero() {
		created = now
	}
	if _, err := r.db.ExecContext(ctx, query, rec.ID, rec.Phase, doc, created, now); err != nil {
		return fmt.Errorf("sessionRepo.Save: %w", err)
	}
	return nil
}

func (r *sessionRepo) Restore(ctx context.Context, id string) (*domain.SessionRecord, error) {
	var doc []byte
	err := r.db.GetContext(ctx, &doc,
		`SELECT doc FROM pipeline_sessions WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sessionRepo.Restore: %w", err)
	}

	var rec domain.SessionRecord
	if err := json.Unmarshal(doc, &rec); err != nil {
		return nil, fmt.Errorf("sessionRepo.Restore unmarshal: %w", err)
	}
	return &rec, nil
}

func (r *sessionRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM pipeline_sessions WHERE id = $1`, id); err != nil {
		return fmt.Errorf("sessionRepo.Delete: %w", err)
	}
	return nil
}
