package pipeline_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
	"pitchbot/internal/pipeline"
)

func parsedFixture() domain.ParsedResumeData {
	data := domain.NewParsedResumeData()
	data.Add("EXPERIENCE", []domain.ParsedItem{{Title: "Engineer at A", Date: "2020-2023"}})
	data.Add("PROJECTS", []domain.ParsedItem{{Title: "Game Solver"}})
	return data
}

func metaFixture() domain.ResumeFileMeta {
	return domain.ResumeFileMeta{Name: "resume.pdf", Size: 1234, MIME: "application/pdf"}
}

func enrichedSession(t *testing.T) *pipeline.Session {
	t.Helper()
	s := pipeline.NewSession("s1")
	require.NoError(t, s.ApplyParse(parsedFixture(), []byte("%PDF"), metaFixture()))
	return s
}

func TestSession_StartsInUpload(t *testing.T) {
	s := pipeline.NewSession("s1")

	assert.Equal(t, domain.PhaseUpload, s.Phase())
	assert.False(t, s.CanBuild())
}

func TestSession_ApplyParse_MovesToEnrich(t *testing.T) {
	s := enrichedSession(t)

	assert.Equal(t, domain.PhaseEnrich, s.Phase())
	assert.True(t, s.CanBuild())
	assert.Equal(t, "resume.pdf", s.FileMeta().Name)
}

func TestSession_ApplyParse_RejectsEmptyResult(t *testing.T) {
	s := pipeline.NewSession("s1")

	err := s.ApplyParse(domain.NewParsedResumeData(), []byte("%PDF"), metaFixture())

	assert.ErrorIs(t, err, domain.ErrParseFailure)
	assert.Equal(t, domain.PhaseUpload, s.Phase())
}

func TestSession_ReparseDiscardsEnrichments(t *testing.T) {
	s := enrichedSession(t)
	require.NoError(t, s.SetEnrichment("EXPERIENCE-0", "led the team"))

	require.NoError(t, s.ApplyParse(parsedFixture(), []byte("%PDF2"), metaFixture()))

	_, ok := s.GetEnrichment("EXPERIENCE-0")
	assert.False(t, ok)
	assert.Equal(t, domain.PhaseEnrich, s.Phase())
}

func TestSession_SetEnrichment_OnlyInEnrich(t *testing.T) {
	s := pipeline.NewSession("s1")

	err := s.SetEnrichment("EXPERIENCE-0", "text")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSession_CompletionStats(t *testing.T) {
	s := enrichedSession(t)
	require.NoError(t, s.SetEnrichment("EXPERIENCE-0", "led the team"))
	require.NoError(t, s.SetEnrichment("PROJECTS-0", "  "))

	assert.Equal(t, enrichment.Stats{Enriched: 1, Total: 2}, s.CompletionStats())
}

func TestSession_BuildLifecycle(t *testing.T) {
	s := enrichedSession(t)
	require.NoError(t, s.SetEnrichment("PROJECTS-0", "minimax solver"))

	req, err := s.BeginBuild()
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF"), req.FileBytes)
	assert.Equal(t, "minimax solver", req.Enrichments["PROJECTS-0"])

	// Double-begin while in flight is rejected.
	_, err = s.BeginBuild()
	assert.ErrorIs(t, err, domain.ErrBuildInFlight)

	require.NoError(t, s.CompleteBuild("temp-abc"))
	assert.Equal(t, domain.PhasePreview, s.Phase())
	assert.Equal(t, "temp-abc", s.TempCollection())
}

func TestSession_BeginBuild_RequiresEnrichPhase(t *testing.T) {
	s := pipeline.NewSession("s1")

	_, err := s.BeginBuild()

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSession_FailedBuildPreservesState(t *testing.T) {
	s := enrichedSession(t)
	require.NoError(t, s.SetEnrichment("EXPERIENCE-0", "note"))

	_, err := s.BeginBuild()
	require.NoError(t, err)
	s.FailBuild()

	assert.Equal(t, domain.PhaseEnrich, s.Phase())
	v, ok := s.GetEnrichment("EXPERIENCE-0")
	assert.True(t, ok)
	assert.Equal(t, "note", v)
	assert.True(t, s.CanBuild())
}

func TestSession_CompleteBuild_WithoutBegin(t *testing.T) {
	s := enrichedSession(t)

	err := s.CompleteBuild("temp-abc")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSession_Finalize_ClearsWorkingState(t *testing.T) {
	s := enrichedSession(t)
	_, err := s.BeginBuild()
	require.NoError(t, err)
	require.NoError(t, s.CompleteBuild("temp-abc"))

	require.NoError(t, s.Finalize("bot-123"))

	assert.Equal(t, domain.PhaseDashboard, s.Phase())
	assert.Equal(t, "bot-123", s.PermanentBotID())
	assert.Empty(t, s.TempCollection())
	assert.True(t, s.ParsedData().Empty())
	assert.Nil(t, s.FileMeta())
}

func TestSession_Finalize_RequiresPreview(t *testing.T) {
	s := enrichedSession(t)

	err := s.Finalize("bot-123")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestSession_Reset_FromAnyPhase(t *testing.T) {
	s := enrichedSession(t)
	_, err := s.BeginBuild()
	require.NoError(t, err)
	require.NoError(t, s.CompleteBuild("temp-abc"))

	s.Reset()

	assert.Equal(t, domain.PhaseUpload, s.Phase())
	assert.Empty(t, s.TempCollection())
	assert.True(t, s.ParsedData().Empty())
}

func TestSession_SnapshotExcludesFileBytes(t *testing.T) {
	s := enrichedSession(t)

	rec := s.Snapshot()
	doc, err := json.Marshal(rec)
	require.NoError(t, err)

	assert.NotContains(t, string(doc), "%PDF")
	require.NotNil(t, rec.FileMeta)
	assert.Equal(t, "resume.pdf", rec.FileMeta.Name)
}

func TestFromRecord_RestoredSessionCannotBuild(t *testing.T) {
	s := enrichedSession(t)
	require.NoError(t, s.SetEnrichment("EXPERIENCE-0", "note"))

	restored := pipeline.FromRecord(s.Snapshot())

	assert.Equal(t, domain.PhaseEnrich, restored.Phase())
	v, ok := restored.GetEnrichment("EXPERIENCE-0")
	assert.True(t, ok)
	assert.Equal(t, "note", v)

	// The binary never round-trips, so a build needs a fresh upload.
	assert.False(t, restored.CanBuild())
	_, err := restored.BeginBuild()
	assert.ErrorIs(t, err, domain.ErrFileUnavailable)
}

func TestFromRecord_BadPhaseFallsBackToUpload(t *testing.T) {
	restored := pipeline.FromRecord(&domain.SessionRecord{ID: "s1", Phase: "bogus"})

	assert.Equal(t, domain.PhaseUpload, restored.Phase())
}
