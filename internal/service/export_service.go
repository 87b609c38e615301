package service

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"pitchbot/internal/config"
	"pitchbot/internal/domain"
	"pitchbot/internal/export"
	"pitchbot/internal/port"
)

// ReportInput is the material for a knowledge-base workbook.
type ReportInput struct {
	UserID      uuid.UUID
	BotID       uuid.UUID
	Parsed      domain.ParsedResumeData
	Enrichments map[string]string
}

// ExportService produces downloadable artifacts and embed snippets for a
// registered chatbot.
type ExportService interface {
	KnowledgeReport(ctx context.Context, input *ReportInput) (string, error)
	EmbedSnippets(ctx context.Context, userID, botID uuid.UUID) (export.EmbedSnippets, error)
}

type exportService struct {
	storage  port.ObjectStorage
	registry RegistryService
	s3cfg    config.S3Config
	emailCfg config.EmailConfig
	apiURL   string
}

// NewExportService creates an ExportService.
func NewExportService(storage port.ObjectStorage, registry RegistryService, s3cfg config.S3Config, emailCfg config.EmailConfig, apiURL string) ExportService {
	return &exportService{
		storage:  storage,
		registry: registry,
		s3cfg:    s3cfg,
		emailCfg: emailCfg,
		apiURL:   apiURL,
	}
}

// KnowledgeReport renders the parsed sections plus enrichments as an xlsx
// workbook, uploads it, and returns a presigned download URL.
func (s *exportService) KnowledgeReport(ctx context.Context, input *ReportInput) (string, error) {
	if _, err := s.registry.Get(ctx, input.UserID, input.BotID); err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := export.WriteWorkbook(&buf, input.Parsed, input.Enrichments); err != nil {
		return "", fmt.Errorf("exportService.KnowledgeReport: %w", err)
	}

	key := fmt.Sprintf("reports/%s/%s-%d.xlsx", input.UserID, input.BotID, time.Now().Unix())
	if _, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        &buf,
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}); err != nil {
		return "", fmt.Errorf("exportService.KnowledgeReport: %w", err)
	}

	expiry := s.s3cfg.PresignExpiry
	if expiry <= 0 {
		expiry = 900
	}
	url, err := s.storage.GetPresignedURL(ctx, s.s3cfg.Bucket, key, expiry)
	if err != nil {
		return "", fmt.Errorf("exportService.KnowledgeReport: %w", err)
	}
	return url, nil
}

func (s *exportService) EmbedSnippets(ctx context.Context, userID, botID uuid.UUID) (export.EmbedSnippets, error) {
	bot, err := s.registry.Get(ctx, userID, botID)
	if err != nil {
		return export.EmbedSnippets{}, err
	}
	return export.BuildEmbedSnippets(s.emailCfg.FrontendURL, s.apiURL, bot.ID.String(), bot.CollectionName), nil
}
