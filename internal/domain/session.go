package domain

import "time"

// SessionRecord is the durable snapshot of a pipeline session. The raw resume
// binary is deliberately absent: only its descriptive metadata survives a save.
type SessionRecord struct {
	ID             string            `db:"id" json:"id"`
	Phase          PipelinePhase     `db:"phase" json:"phase"`
	ParsedData     ParsedResumeData  `db:"-" json:"parsed_data"`
	Enrichments    map[string]string `db:"-" json:"enrichments"`
	FileMeta       *ResumeFileMeta   `db:"-" json:"file_meta,omitempty"`
	TempCollection string            `db:"temp_collection" json:"temp_collection,omitempty"`
	PermanentBotID string            `db:"permanent_bot_id" json:"permanent_bot_id,omitempty"`
	CreatedAt      time.Time         `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time         `db:"updated_at" json:"updated_at"`
}
