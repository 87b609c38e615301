package port

import "context"

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendBotReadyEmail(ctx context.Context, toEmail, toName, botID string) error
}
