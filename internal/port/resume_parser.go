package port

import (
	"context"

	"pitchbot/internal/domain"
)

// ResumeParser turns raw resume text into structured sections. Implementations
// must be safe for concurrent use. An empty result with a nil error is allowed
// only from the pure heuristic parser; callers map it to a parse failure.
type ResumeParser interface {
	Parse(ctx context.Context, rawText string) (domain.ParsedResumeData, error)
}
