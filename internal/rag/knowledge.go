package rag

import (
	"fmt"
	"strings"

	"pitchbot/internal/domain"
	"pitchbot/internal/enrichment"
)

// FlattenKnowledge renders a parsed resume plus its enrichments into the
// plain-text knowledge document that gets chunked and embedded. Enrichments
// are looked up by their positional key, so they attach to exactly the item
// the user annotated.
func FlattenKnowledge(parsed domain.ParsedResumeData, enrichments map[string]string) string {
	var b strings.Builder

	for _, section := range parsed.SectionOrder {
		items := parsed.Sections[section]
		b.WriteString(fmt.Sprintf("\n\nSection: %s\n", section))
		for i, item := range items {
			b.WriteString(fmt.Sprintf("\n- Title: %s", orNA(item.Title)))
			if item.Subtitle != "" {
				b.WriteString(fmt.Sprintf("\n  Subtitle: %s", item.Subtitle))
			}
			if item.Date != "" {
				b.WriteString(fmt.Sprintf("\n  Date: %s", item.Date))
			}
			if item.Description != "" {
				b.WriteString(fmt.Sprintf("\n  Description: %s", item.Description))
			}
			if note := enrichments[enrichment.Key(section, i)]; strings.TrimSpace(note) != "" {
				b.WriteString(fmt.Sprintf("\n  Additional User Context: %s", note))
			}
		}
	}
	return b.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
