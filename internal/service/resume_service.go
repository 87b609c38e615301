package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"sync"

	"pitchbot/internal/domain"
	"pitchbot/internal/port"
	"pitchbot/internal/resume"
)

// ParseResumeInput carries an uploaded resume file.
type ParseResumeInput struct {
	FileBytes   []byte
	FileName    string
	ContentType string
}

// ResumeService turns uploaded resumes into structured sections.
type ResumeService interface {
	Parse(ctx context.Context, input *ParseResumeInput) (domain.ParsedResumeData, error)
}

type resumeService struct {
	parser        port.ResumeParser
	maxFileSize   int64
	cacheMu       sync.Mutex
	cacheByDigest map[string]domain.ParsedResumeData
}

// NewResumeService creates a ResumeService over the configured parser.
// Results are cached by content digest, so re-uploading the same file skips
// extraction and parsing.
func NewResumeService(parser port.ResumeParser, maxFileSizeMB int64) ResumeService {
	return &resumeService{
		parser:        parser,
		maxFileSize:   maxFileSizeMB * 1024 * 1024,
		cacheByDigest: map[string]domain.ParsedResumeData{},
	}
}

func (s *resumeService) Parse(ctx context.Context, input *ParseResumeInput) (domain.ParsedResumeData, error) {
	if len(input.FileBytes) == 0 {
		return domain.ParsedResumeData{}, domain.ErrParseFailure
	}
	if s.maxFileSize > 0 && int64(len(input.FileBytes)) > s.maxFileSize {
		return domain.ParsedResumeData{}, domain.ErrFileTooLarge
	}
	if !isSupportedResume(input.ContentType, input.FileName) {
		return domain.ParsedResumeData{}, domain.ErrUnsupportedFile
	}

	digest := sha256.Sum256(input.FileBytes)
	key := hex.EncodeToString(digest[:])

	s.cacheMu.Lock()
	cached, ok := s.cacheByDigest[key]
	s.cacheMu.Unlock()
	if ok {
		log.Printf("resumeService: cache hit for %s", key[:12])
		return cached, nil
	}

	rawText, err := resume.ExtractText(input.FileBytes)
	if err != nil {
		if errors.Is(err, domain.ErrNoExtractableText) {
			return domain.ParsedResumeData{}, err
		}
		return domain.ParsedResumeData{}, domain.ErrParseFailure
	}

	parsed, err := s.parser.Parse(ctx, rawText)
	if err != nil {
		return domain.ParsedResumeData{}, domain.ErrParseFailure
	}
	if parsed.Empty() {
		// Zero recognized sections is a failure, not an empty success.
		return domain.ParsedResumeData{}, domain.ErrParseFailure
	}

	s.cacheMu.Lock()
	s.cacheByDigest[key] = parsed
	s.cacheMu.Unlock()
	return parsed, nil
}

func isSupportedResume(contentType, fileName string) bool {
	if strings.Contains(contentType, "pdf") {
		return true
	}
	return strings.HasSuffix(strings.ToLower(fileName), ".pdf")
}
