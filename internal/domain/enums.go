package domain

// PipelinePhase is the current step of a resume-to-bot pipeline session.
type PipelinePhase string

const (
	PhaseUpload    PipelinePhase = "upload"
	PhaseEnrich    PipelinePhase = "enrich"
	PhasePreview   PipelinePhase = "preview"
	PhaseDashboard PipelinePhase = "dashboard"
)

// Valid reports whether p is a known phase.
func (p PipelinePhase) Valid() bool {
	switch p {
	case PhaseUpload, PhaseEnrich, PhasePreview, PhaseDashboard:
		return true
	}
	return false
}

// ChatbotStatus is the lifecycle state of a registry row.
type ChatbotStatus string

const (
	ChatbotActive   ChatbotStatus = "active"
	ChatbotArchived ChatbotStatus = "archived"
)

// Known LLM provider names. Bots carry their own provider choice (BYOK).
const (
	ProviderGoogle = "google"
	ProviderOpenAI = "openai"
	ProviderMock   = "mock"
)
