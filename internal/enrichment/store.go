// Package enrichment keeps user-supplied annotations attached to parsed
// resume items for the duration of a pipeline session.
package enrichment

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"pitchbot/internal/domain"
)

// Key addresses one item within one section for the current parse. Keys are
// positional and therefore not stable across a re-parse; see StableKey.
func Key(section string, index int) string {
	return fmt.Sprintf("%s-%d", section, index)
}

// StableKey derives a content-addressed key from section and item title. It
// survives re-parsing as long as the item keeps its title, unlike the
// positional Key. Offered for callers that re-run the parser mid-session.
func StableKey(section, title string) string {
	sum := sha256.Sum256([]byte(section + "\x00" + title))
	return section + "-" + hex.EncodeToString(sum[:8])
}

// Stats reports enrichment completion against the parsed item total.
type Stats struct {
	Enriched int `json:"enriched"`
	Total    int `json:"total"`
}

// Store is a plain keyed map of annotations. It is not safe for concurrent
// use; a session owns exactly one store and mutates it from one goroutine.
type Store struct {
	entries map[string]string
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{entries: map[string]string{}}
}

// Set records an annotation for a key. Overwrites are idempotent and an empty
// value explicitly clears the annotation text while keeping the key.
func (s *Store) Set(key, text string) {
	s.entries[key] = text
}

// Get returns the annotation for a key and whether it was ever set.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.entries[key]
	return v, ok
}

// Len returns the number of keys ever set.
func (s *Store) Len() int {
	return len(s.entries)
}

// Map returns a copy of the underlying entries for submission.
func (s *Store) Map() map[string]string {
	out := make(map[string]string, len(s.entries))
	for k, v := range s.entries {
		out[k] = v
	}
	return out
}

// Replace swaps in a restored enrichment map.
func (s *Store) Replace(entries map[string]string) {
	s.entries = map[string]string{}
	for k, v := range entries {
		s.entries[k] = v
	}
}

// Clear drops all annotations.
func (s *Store) Clear() {
	s.entries = map[string]string{}
}

// CompletionStats recomputes completion from current state. Total counts items
// across parsed sections; domain.ParsedResumeData already guarantees every
// section value is an item sequence. Enriched counts entries whose trimmed
// value is non-empty.
func CompletionStats(parsed domain.ParsedResumeData, enrichments map[string]string) Stats {
	stats := Stats{Total: parsed.TotalItems()}
	for _, v := range enrichments {
		if strings.TrimSpace(v) != "" {
			stats.Enriched++
		}
	}
	return stats
}
