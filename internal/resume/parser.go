package resume

import (
	"context"
	"regexp"
	"strings"

	"pitchbot/internal/domain"
)

var (
	yearRangeRe = regexp.MustCompile(`(?i)\b(20\d{2})\s*[-–—]\s*(20\d{2}|Present)\b`)
	monthYearRe = regexp.MustCompile(`(?i)\b(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)\s+20\d{2}\b`)
	blockSplit  = regexp.MustCompile(`\n\s*\n`)
)

// Parser is the deterministic heuristic section parser. It is pure: same text
// in, same sections out, no I/O.
type Parser struct {
	vocab    Vocabulary
	headerRe *regexp.Regexp
}

// NewParser creates a Parser over the given header vocabulary. A nil or empty
// vocabulary falls back to DefaultVocabulary.
func NewParser(vocab Vocabulary) *Parser {
	if len(vocab) == 0 {
		vocab = DefaultVocabulary()
	}
	tokens := make([]string, len(vocab))
	for i, h := range vocab {
		tokens[i] = regexp.QuoteMeta(h.Token)
	}
	re := regexp.MustCompile(`(?im)^[ \t]*(` + strings.Join(tokens, "|") + `)`)
	return &Parser{vocab: vocab, headerRe: re}
}

// Parse implements port.ResumeParser. The context is unused; parsing is pure.
func (p *Parser) Parse(_ context.Context, rawText string) (domain.ParsedResumeData, error) {
	return p.ParseText(rawText), nil
}

type headerMatch struct {
	canonical string
	// contentStart is the offset just past the header token; contentEnd is the
	// start of the next recognized header (or end of text).
	start        int
	contentStart int
	contentEnd   int
}

// ParseText scans rawText for recognized section headers and extracts
// structured items for each section span. Text with no recognized headers
// yields an empty result; callers must surface that as a parse failure.
func (p *Parser) ParseText(rawText string) domain.ParsedResumeData {
	data := domain.NewParsedResumeData()

	locs := p.headerRe.FindAllStringSubmatchIndex(rawText, -1)
	matches := make([]headerMatch, 0, len(locs))
	for _, loc := range locs {
		token := rawText[loc[2]:loc[3]]
		matches = append(matches, headerMatch{
			canonical:    p.canonicalize(token),
			start:        loc[0],
			contentStart: loc[3],
		})
	}
	for i := range matches {
		if i+1 < len(matches) {
			matches[i].contentEnd = matches[i+1].start
		} else {
			matches[i].contentEnd = len(rawText)
		}
	}

	for _, m := range matches {
		content := strings.TrimSpace(rawText[m.contentStart:m.contentEnd])
		data.Add(m.canonical, extractItems(m.canonical, content))
	}
	return data
}

func (p *Parser) canonicalize(token string) string {
	upper := strings.ToUpper(strings.TrimSpace(token))
	for _, h := range p.vocab {
		if strings.EqualFold(h.Token, upper) {
			return h.Canonical
		}
	}
	return upper
}

// extractItems splits a section span into blank-line-separated blocks and
// shapes one item per block. Different sections carry different salient
// fields: education wants degree and institution, experience wants the role
// line and a date, skills and projects are title-only.
func extractItems(section, content string) []domain.ParsedItem {
	var items []domain.ParsedItem

	for _, block := range blockSplit.Split(content, -1) {
		lines := nonBlankLines(block)
		if len(lines) == 0 {
			continue
		}

		date := findDate(block)

		switch section {
		case "EDUCATION":
			title := strings.Join(lines[:min(2, len(lines))], " - ")
			items = append(items, domain.ParsedItem{Title: title, Date: date})
		case "PROJECTS", "SKILLS":
			items = append(items, domain.ParsedItem{Title: lines[0]})
		default:
			// EXPERIENCE, INTERNSHIPS, HACKATHONS, and anything unrecognized.
			items = append(items, domain.ParsedItem{Title: lines[0], Date: date})
		}
	}

	if len(items) == 0 {
		return []domain.ParsedItem{{Title: fallbackTitle(section, content)}}
	}
	return items
}

// fallbackTitle guards against losing a section entirely when its span has no
// usable blocks. Titles are mandatory, so an empty span falls back to the
// section name itself.
func fallbackTitle(section, content string) string {
	for _, line := range strings.Split(content, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			return s
		}
	}
	return section
}

func nonBlankLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	return lines
}

// findDate searches a whole block for a year range first, then a month-year
// point, regardless of which line the match sits on.
func findDate(block string) string {
	if m := yearRangeRe.FindString(block); m != "" {
		return m
	}
	return monthYearRe.FindString(block)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
