package services

import (
	"context"
	"fmt"

	"github.com/ideamk/leadmail/config"
	"github.com/ideamk/leadmail/logger"
	"github.com/resend/resend-go/v2"
)

// ResendMailer sends messages through the Resend HTTP API.
type ResendMailer struct {
	config *config.MailConfig
	client *resend.Client
}

func NewResendMailer(cfg *config.MailConfig) *ResendMailer {
	return &ResendMailer{
		config: cfg,
		client: resend.NewClient(cfg.ResendAPIKey),
	}
}

func (m *ResendMailer) Name() string { return config.ProviderResend }

func (m *ResendMailer) Ready() error {
	if m.config.ResendAPIKey == "" {
		return ErrResendCredentialsMissing
	}
	return nil
}

// Send posts msg to Resend and returns the email ID it assigns.
func (m *ResendMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := m.Ready(); err != nil {
		return "", err
	}

	params := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Cc:      msg.Cc,
		Subject: msg.Subject,
		Text:    msg.Text,
		Html:    msg.HTML,
	}
	if msg.Attachment.Filename != "" {
		params.Attachments = []*resend.Attachment{{
			Content:     msg.Attachment.Content,
			Filename:    msg.Attachment.Filename,
			ContentType: msg.Attachment.ContentType,
		}}
	}

	resp, err := m.client.Emails.SendWithContext(ctx, params)
	if err != nil {
		logger.GetLogger().Errorw("Resend delivery failed",
			"to", logger.MaskEmail(msg.To),
			"error", err)
		return "", fmt.Errorf("resend send: %w", err)
	}

	return resp.Id, nil
}
