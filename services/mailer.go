package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/ideamk/leadmail/config"
)

var (
	ErrSMTPCredentialsMissing   = errors.New("SMTP credentials missing. Set SMTP_HOST, SMTP_USER, SMTP_PASS.")
	ErrResendCredentialsMissing = errors.New("Resend API key missing. Set RESEND_API_KEY.")
)

// Attachment is a single file attached to an outgoing message.
type Attachment struct {
	Filename    string
	Content     []byte
	ContentType string
}

// Message is one outgoing email.
type Message struct {
	From       string
	To         string
	Cc         []string
	Subject    string
	Text       string
	HTML       string
	Attachment Attachment
}

// Mailer hands a message to a mail transport.
type Mailer interface {
	// Send delivers msg and returns the transport's message identifier.
	Send(ctx context.Context, msg Message) (string, error)
	// Ready reports whether the mailer has the credentials it needs.
	Ready() error
	// Name identifies the transport in logs and metrics.
	Name() string
}

// IsCredentialsError reports whether err is a missing-credentials error from
// one of the mailers.
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrSMTPCredentialsMissing) || errors.Is(err, ErrResendCredentialsMissing)
}

// NewMailer builds the mailer selected by cfg.Provider.
func NewMailer(cfg *config.MailConfig) (Mailer, error) {
	switch cfg.Provider {
	case config.ProviderSMTP, "":
		return NewSMTPMailer(cfg), nil
	case config.ProviderResend:
		return NewResendMailer(cfg), nil
	default:
		return nil, fmt.Errorf("unknown mail provider %q", cfg.Provider)
	}
}
