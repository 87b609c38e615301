package resume

import (
	"context"
	"fmt"
	"log"

	"pitchbot/internal/config"
	"pitchbot/internal/domain"
	"pitchbot/internal/port"
)

// ChainParser tries parsers in order and returns the first non-empty result.
// It implements port.ResumeParser. A transport failure or an empty result
// moves on to the next parser; only the last parser's error is surfaced.
type ChainParser struct {
	parsers []port.ResumeParser
	names   []string
}

// NewChainParser creates a ChainParser from an ordered list of parsers and
// their names.
func NewChainParser(parsers []port.ResumeParser, names []string) *ChainParser {
	return &ChainParser{parsers: parsers, names: names}
}

func (c *ChainParser) Parse(ctx context.Context, rawText string) (domain.ParsedResumeData, error) {
	var lastErr error
	for i, p := range c.parsers {
		data, err := p.Parse(ctx, rawText)
		if err != nil {
			log.Printf("resume.ChainParser: %s failed: %v", c.names[i], err)
			lastErr = err
			continue
		}
		if !data.Empty() {
			return data, nil
		}
	}
	if lastErr != nil {
		return domain.ParsedResumeData{}, lastErr
	}
	return domain.NewParsedResumeData(), nil
}

// NewFromConfig builds the configured parser: heuristic only, Gemini only, or
// a Gemini-then-heuristic chain.
func NewFromConfig(cfg *config.ParserConfig) (port.ResumeParser, error) {
	switch cfg.Mode {
	case "", "heuristic":
		return NewParser(nil), nil
	case "gemini":
		if cfg.APIKey == "" {
			return nil, domain.ErrMissingAPIKey
		}
		return NewGeminiParser(cfg), nil
	case "chain":
		if cfg.APIKey == "" {
			return nil, domain.ErrMissingAPIKey
		}
		return NewChainParser(
			[]port.ResumeParser{NewGeminiParser(cfg), NewParser(nil)},
			[]string{"gemini", "heuristic"},
		), nil
	default:
		return nil, fmt.Errorf("unknown parser mode: %s", cfg.Mode)
	}
}
