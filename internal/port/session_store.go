package port

import (
	"context"

	"pitchbot/internal/domain"
)

// SessionStore persists pipeline session snapshots across restarts. The raw
// resume binary never reaches this store; see domain.SessionRecord.
type SessionStore interface {
	Save(ctx context.Context, rec *domain.SessionRecord) error
	Restore(ctx context.Context, id string) (*domain.SessionRecord, error)
	Delete(ctx context.Context, id string) error
}
