package services

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/ideamk/leadmail/config"
	"github.com/ideamk/leadmail/logger"
	"github.com/wneessen/go-mail"
)

// SMTPMailer sends messages through an authenticated SMTP relay. A new
// connection is dialled for every message.
type SMTPMailer struct {
	config *config.MailConfig
}

func NewSMTPMailer(cfg *config.MailConfig) *SMTPMailer {
	return &SMTPMailer{config: cfg}
}

func (m *SMTPMailer) Name() string { return config.ProviderSMTP }

func (m *SMTPMailer) Ready() error {
	if !m.config.SMTPCredentialsSet() {
		return ErrSMTPCredentialsMissing
	}
	return nil
}

// Send dials the relay, delivers msg and returns the generated Message-ID.
func (m *SMTPMailer) Send(ctx context.Context, msg Message) (string, error) {
	if err := m.Ready(); err != nil {
		return "", err
	}

	out, err := buildSMTPMessage(msg)
	if err != nil {
		return "", err
	}

	client, err := mail.NewClient(m.config.SMTPHost, m.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("smtp client: %w", err)
	}

	log := logger.GetLogger()
	if err := client.DialAndSendWithContext(ctx, out); err != nil {
		log.Errorw("SMTP delivery failed",
			"host", m.config.SMTPHost,
			"port", m.config.SMTPPort,
			"to", logger.MaskEmail(msg.To),
			"error", err)
		return "", fmt.Errorf("smtp send: %w", err)
	}

	return out.GetMessageID(), nil
}

func (m *SMTPMailer) clientOptions() []mail.Option {
	opts := []mail.Option{
		mail.WithPort(m.config.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.config.SMTPUser),
		mail.WithPassword(m.config.SMTPPassword),
		mail.WithTimeout(time.Duration(m.config.TimeoutSeconds) * time.Second),
	}
	if m.config.SecureTransport() {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return opts
}

// buildSMTPMessage converts msg into a MIME message with a text part, an
// HTML alternative and the attachment.
func buildSMTPMessage(msg Message) (*mail.Msg, error) {
	out := mail.NewMsg()
	if err := out.From(msg.From); err != nil {
		return nil, fmt.Errorf("invalid from address %q: %w", msg.From, err)
	}
	if err := out.To(msg.To); err != nil {
		return nil, fmt.Errorf("invalid recipient %q: %w", msg.To, err)
	}
	if len(msg.Cc) > 0 {
		if err := out.Cc(msg.Cc...); err != nil {
			return nil, fmt.Errorf("invalid cc address: %w", err)
		}
	}
	out.Subject(msg.Subject)
	out.SetMessageID()
	out.SetDate()
	out.SetBodyString(mail.TypeTextPlain, msg.Text)
	out.AddAlternativeString(mail.TypeTextHTML, msg.HTML)

	if msg.Attachment.Filename != "" {
		err := out.AttachReader(msg.Attachment.Filename,
			bytes.NewReader(msg.Attachment.Content),
			mail.WithFileContentType(mail.ContentType(msg.Attachment.ContentType)))
		if err != nil {
			return nil, fmt.Errorf("attach %s: %w", msg.Attachment.Filename, err)
		}
	}

	return out, nil
}
