// Package pipeline implements the upload -> enrich -> preview -> dashboard
// flow that turns a parsed resume into a finalized chatbot collection.
package pipeline

import (
	"sync"
	"time"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
)

// Session is one user's in-progress resume pipeline. It is constructed
// explicitly and owns all mutable pipeline state; every transition goes
// through a named method so invalid jumps are impossible.
type Session struct {
	mu sync.Mutex

	id          string
	phase       domain.PipelinePhase
	parsed      domain.ParsedResumeData
	enrichments *enrichment.Store

	// fileBytes is the opaque handle to the uploaded binary. It lives only in
	// memory and is dropped on finalize; snapshots carry fileMeta instead.
	fileBytes []byte
	fileMeta  *domain.ResumeFileMeta

	tempCollection string
	permanentBotID string
	buildInFlight  bool

	createdAt time.Time
}

// NewSession creates an empty session in the Upload phase.
func NewSession(id string) *Session {
	return &Session{
		id:          id,
		phase:       domain.PhaseUpload,
		parsed:      domain.NewParsedResumeData(),
		enrichments: enrichment.NewStore(),
		createdAt:   time.Now().UTC(),
	}
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// Phase returns the current pipeline phase.
func (s *Session) Phase() domain.PipelinePhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ApplyParse records a successful parse and moves to Enrich. A fresh upload
// overwrites any previous parse and discards its enrichments and collection
// handles. Empty parse results are rejected: callers must surface those as a
// parse failure, never feed them forward.
func (s *Session) ApplyParse(parsed domain.ParsedResumeData, fileBytes []byte, meta domain.ResumeFileMeta) error {
	if parsed.Empty() {
		return domain.ErrParseFailure
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buildInFlight {
		return domain.ErrBuildInFlight
	}
	s.parsed = parsed
	s.fileBytes = fileBytes
	s.fileMeta = &meta
	s.enrichments = enrichment.NewStore()
	s.tempCollection = ""
	s.permanentBotID = ""
	s.phase = domain.PhaseEnrich
	return nil
}

// SetEnrichment records an annotation. Edits apply synchronously, so they are
// always visible to the next BeginBuild.
func (s *Session) SetEnrichment(key, text string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseEnrich {
		return domain.ErrInvalidTransition
	}
	s.enrichments.Set(key, text)
	return nil
}

// GetEnrichment returns an annotation by key.
func (s *Session) GetEnrichment(key string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.enrichments.Get(key)
}

// CompletionStats reports enrichment completion for the current parse.
func (s *Session) CompletionStats() enrichment.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return enrichment.CompletionStats(s.parsed, s.enrichments.Map())
}

// ParsedData returns the current parse result.
func (s *Session) ParsedData() domain.ParsedResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.parsed
}

// CanBuild reports whether a build may be started: the session must be in
// Enrich with the original file still in hand. A restored session without its
// binary cannot build and needs a re-upload.
func (s *Session) CanBuild() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase == domain.PhaseEnrich && len(s.fileBytes) > 0 && !s.buildInFlight
}

// BuildRequest is the snapshot handed to the build backend.
type BuildRequest struct {
	Parsed      domain.ParsedResumeData
	Enrichments map[string]string
	FileBytes   []byte
	FileMeta    domain.ResumeFileMeta
}

// BeginBuild marks a build as in flight and returns the submission snapshot.
// A second BeginBuild while one is outstanding fails, so two builds can never
// race to two different temporary collections.
func (s *Session) BeginBuild() (*BuildRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhaseEnrich {
		return nil, domain.ErrInvalidTransition
	}
	if s.buildInFlight {
		return nil, domain.ErrBuildInFlight
	}
	if len(s.fileBytes) == 0 {
		return nil, domain.ErrFileUnavailable
	}
	s.buildInFlight = true
	return &BuildRequest{
		Parsed:      s.parsed,
		Enrichments: s.enrichments.Map(),
		FileBytes:   s.fileBytes,
		FileMeta:    *s.fileMeta,
	}, nil
}

// CompleteBuild records the temporary collection handle and moves to Preview.
func (s *Session) CompleteBuild(tempCollection string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.buildInFlight {
		return domain.ErrInvalidTransition
	}
	s.buildInFlight = false
	s.tempCollection = tempCollection
	s.phase = domain.PhasePreview
	return nil
}

// FailBuild clears the in-flight flag and stays in Enrich. The parse result
// and every enrichment edit survive a failed build.
func (s *Session) FailBuild() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buildInFlight = false
}

// TempCollection returns the temporary collection handle, if any.
func (s *Session) TempCollection() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tempCollection
}

// Finalize promotes the temporary collection to a permanent bot identity and
// clears the working state: parse result, file handle, and the temporary
// collection are all gone after this. Dashboard is the resting phase.
func (s *Session) Finalize(permanentBotID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase != domain.PhasePreview || s.tempCollection == "" {
		return domain.ErrInvalidTransition
	}
	s.permanentBotID = permanentBotID
	s.tempCollection = ""
	s.parsed = domain.NewParsedResumeData()
	s.fileBytes = nil
	s.fileMeta = nil
	s.enrichments = enrichment.NewStore()
	s.phase = domain.PhaseDashboard
	return nil
}

// PermanentBotID returns the finalized bot identity, if any.
func (s *Session) PermanentBotID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.permanentBotID
}

// Reset abandons everything and returns to Upload. Allowed from any phase.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.parsed = domain.NewParsedResumeData()
	s.fileBytes = nil
	s.fileMeta = nil
	s.enrichments = enrichment.NewStore()
	s.tempCollection = ""
	s.permanentBotID = ""
	s.buildInFlight = false
	s.phase = domain.PhaseUpload
}

// Snapshot externalizes the session for persistence. The raw binary never
// leaves the process; only its metadata is included.
func (s *Session) Snapshot() *domain.SessionRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	return &domain.SessionRecord{
		ID:             s.id,
		Phase:          s.phase,
		ParsedData:     s.parsed,
		Enrichments:    s.enrichments.Map(),
		FileMeta:       s.fileMeta,
		TempCollection: s.tempCollection,
		PermanentBotID: s.permanentBotID,
		CreatedAt:      s.createdAt,
		UpdatedAt:      time.Now().UTC(),
	}
}

// FromRecord rebuilds a session from a persisted snapshot. The file handle is
// unrecoverable, so a restored session with parsed data cannot build until
// the resume is uploaded again.
func FromRecord(rec *domain.SessionRecord) *Session {
	s := NewSession(rec.ID)
	s.phase = rec.Phase
	if !s.phase.Valid() {
		s.phase = domain.PhaseUpload
	}
	s.parsed = rec.ParsedData
	if s.parsed.Sections == nil {
		s.parsed = domain.NewParsedResumeData()
	}
	s.enrichments.Replace(rec.Enrichments)
	s.fileMeta = rec.FileMeta
	s.tempCollection = rec.TempCollection
	s.permanentBotID = rec.PermanentBotID
	if !rec.CreatedAt.IsZero() {
		s.createdAt = rec.CreatedAt
	}
	return s
}

// FileMeta returns the uploaded file metadata, if known.
func (s *Session) FileMeta() *domain.ResumeFileMeta {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fileMeta
}
