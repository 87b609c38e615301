package noop

import (
	"context"
	"fmt"
	"log"
	"net/url"

	"pitchbot/internal/port"
)

type noopSender struct {
	frontendURL string
}

// NewNoopSender creates a no-op EmailSender that logs bot URLs to stdout.
func NewNoopSender(frontendURL string) port.EmailSender {
	return &noopSender{frontendURL: frontendURL}
}

func (s *noopSender) SendBotReadyEmail(_ context.Context, toEmail, toName, botID string) error {
	botURL := fmt.Sprintf("%s/dashboard?bot=%s", s.frontendURL, url.QueryEscape(botID))
	log.Printf("[NOOP EMAIL] Bot-ready email for %s (%s): %s", toName, toEmail, botURL)
	return nil
}
