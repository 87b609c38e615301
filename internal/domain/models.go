package domain

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// ParsedItem is one structured entry extracted from a resume section.
type ParsedItem struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// ParsedResumeData maps canonical section names (EDUCATION, PROJECTS, ...) to
// their items. Section order is preserved separately because Go maps do not
// keep insertion order; SectionOrder reflects document order.
type ParsedResumeData struct {
	Sections     map[string][]ParsedItem
	SectionOrder []string
}

// NewParsedResumeData creates an empty ParsedResumeData.
func NewParsedResumeData() ParsedResumeData {
	return ParsedResumeData{Sections: map[string][]ParsedItem{}}
}

// Empty reports whether no sections were recognized. Callers must treat an
// empty result as a parse failure, never as a valid "no sections" resume.
func (d ParsedResumeData) Empty() bool {
	return len(d.Sections) == 0
}

// Add appends items under a section, recording document order on first use.
func (d *ParsedResumeData) Add(section string, items []ParsedItem) {
	if d.Sections == nil {
		d.Sections = map[string][]ParsedItem{}
	}
	if _, seen := d.Sections[section]; !seen {
		d.SectionOrder = append(d.SectionOrder, section)
	}
	d.Sections[section] = append(d.Sections[section], items...)
}

// TotalItems counts items across all sections.
func (d ParsedResumeData) TotalItems() int {
	n := 0
	for _, items := range d.Sections {
		n += len(items)
	}
	return n
}

// MarshalJSON renders the section map in document order.
func (d ParsedResumeData) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, name := range d.SectionOrder {
		if i > 0 {
			buf = append(buf, ',')
		}
		key, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(d.Sections[name])
		if err != nil {
			return nil, err
		}
		buf = append(buf, key...)
		buf = append(buf, ':')
		buf = append(buf, val...)
	}
	return append(buf, '}'), nil
}

// UnmarshalJSON decodes a section map, silently dropping any top-level value
// that is not an array of items. Upstream payloads can carry sibling metadata
// (e.g. a personal-details object) that must never be iterated as a section.
func (d *ParsedResumeData) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	keys := make([]string, 0, len(raw))
	var ordered []orderedKey
	if ok := decodeKeyOrder(data, &ordered); ok {
		for _, k := range ordered {
			keys = append(keys, k.name)
		}
	} else {
		for k := range raw {
			keys = append(keys, k)
		}
	}

	d.Sections = map[string][]ParsedItem{}
	d.SectionOrder = nil
	for _, name := range keys {
		msg, ok := raw[name]
		if !ok {
			continue
		}
		var items []ParsedItem
		if err := json.Unmarshal(msg, &items); err != nil {
			continue // non-array sibling field
		}
		d.Add(name, items)
	}
	return nil
}

type orderedKey struct {
	name string
}

// decodeKeyOrder walks the raw JSON object to recover key order; falls back to
// map iteration when the payload is not a plain object.
func decodeKeyOrder(data []byte, out *[]orderedKey) bool {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return false
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return false
		}
		name, ok := tok.(string)
		if !ok {
			return false
		}
		*out = append(*out, orderedKey{name: name})
		var skip json.RawMessage
		if err := dec.Decode(&skip); err != nil {
			return false
		}
	}
	return true
}

// ResumeFileMeta is the only part of an uploaded resume that may be persisted.
// The raw binary is retained in memory for the life of a pipeline session and
// is never written to durable storage.
type ResumeFileMeta struct {
	Name string `json:"name"`
	Size int64  `json:"size"`
	MIME string `json:"mime"`
}

// Chatbot is a registry row for a finalized resume chatbot.
type Chatbot struct {
	ID              uuid.UUID     `db:"id" json:"id"`
	UserID          uuid.UUID     `db:"user_id" json:"user_id"`
	ProjectName     string        `db:"project_name" json:"project_name"`
	CollectionName  string        `db:"collection_name" json:"collection_name"`
	LLMProvider     string        `db:"llm_provider" json:"llm_provider"`
	EncryptedAPIKey string        `db:"encrypted_api_key" json:"-"`
	Status          ChatbotStatus `db:"status" json:"status"`
	CreatedAt       time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time     `db:"updated_at" json:"updated_at"`
}

// Chunk is one embedded knowledge-base fragment inside a collection.
type Chunk struct {
	ID         uuid.UUID `db:"id" json:"id"`
	Collection string    `db:"collection_name" json:"collection_name"`
	Position   int       `db:"position" json:"position"`
	Text       string    `db:"text" json:"text"`
	Embedding  []float32 `db:"-" json:"-"`
}

// ChunkMatch is a retrieval result with its similarity score.
type ChunkMatch struct {
	Chunk Chunk
	Score float64
}

// MemorySummary describes the state of a collection's conversation memory.
type MemorySummary struct {
	Exchanges     int `json:"exchanges"`
	TotalMessages int `json:"total_messages"`
}
