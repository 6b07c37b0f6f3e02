package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ideamk/leadmail/config"
	"github.com/ideamk/leadmail/internal/leadfmt"
	"github.com/ideamk/leadmail/logger"
	"github.com/ideamk/leadmail/types"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.IsTest = true
	m.Run()
}

var fixedNow = time.Date(2025, 10, 1, 8, 30, 15, 0, time.UTC)

func newTestLeadService(t *testing.T, cfg *config.MailConfig, mailer Mailer) *LeadService {
	t.Helper()
	labels, err := leadfmt.BuiltinLabels("en")
	require.NoError(t, err)
	svc := NewLeadServiceWithRegistry(cfg, mailer, leadfmt.NewRenderer(labels, "landing"), prometheus.NewRegistry())
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func TestRecipient(t *testing.T) {
	tests := []struct {
		name string
		lead types.Lead
		cfg  config.MailConfig
		want string
	}{
		{"partner email wins", types.Lead{PartnerEmail: "p@x.com"}, config.MailConfig{ToEmail: "sales@example.com"}, "p@x.com"},
		{"partner email without config", types.Lead{PartnerEmail: "p@x.com"}, config.MailConfig{}, "p@x.com"},
		{"configured recipient", types.Lead{}, config.MailConfig{ToEmail: "sales@example.com"}, "sales@example.com"},
		{"hard fallback", types.Lead{}, config.MailConfig{}, FallbackRecipient},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Recipient(tt.lead, &tt.cfg))
		})
	}
}

func TestCarbonCopy(t *testing.T) {
	withPartner := types.Lead{PartnerEmail: "p@x.com"}

	assert.Nil(t, CarbonCopy(withPartner, &config.MailConfig{}))
	assert.Nil(t, CarbonCopy(types.Lead{}, &config.MailConfig{CCPartner: true}))
	assert.Equal(t, []string{"p@x.com"}, CarbonCopy(withPartner, &config.MailConfig{CCPartner: true}))
}

func TestDispatch_Success(t *testing.T) {
	cfg := &config.MailConfig{SMTPUser: "leads@example.com", CCPartner: true}
	mailer := new(MockMailer)
	svc := newTestLeadService(t, cfg, mailer)

	lead := types.Lead{
		FirstName:    "Jane",
		LastName:     "Doe",
		PhoneE164:    "+38970000000",
		Partner:      "Acme",
		PartnerEmail: "p@x.com",
	}

	mailer.On("Ready").Return(nil)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg Message) bool {
		return msg.From == "leads@example.com" &&
			msg.To == "p@x.com" &&
			len(msg.Cc) == 1 && msg.Cc[0] == "p@x.com" &&
			msg.Subject == "New credit request — Jane Doe — Acme" &&
			strings.Contains(msg.Text, "Full name: Jane Doe") &&
			strings.Contains(msg.HTML, "&lt;p@x.com&gt;") &&
			msg.Attachment.Filename == "lead-20251001083015.csv" &&
			msg.Attachment.ContentType == "text/csv" &&
			strings.HasSuffix(string(msg.Attachment.Content), ",2025-10-01T08:30:15.000Z\n")
	})).Return("<abc@example.com>", nil).Once()

	id, err := svc.Dispatch(context.Background(), lead)

	require.NoError(t, err)
	assert.Equal(t, "<abc@example.com>", id)
	assert.Equal(t, float64(1), testGetCounterValue(svc.metrics.sentCount))
	assert.Equal(t, uint64(1), testGetHistogramCount(svc.metrics.sendLatency))
	mailer.AssertExpectations(t)
}

func TestDispatch_MissingCredentials(t *testing.T) {
	mailer := new(MockMailer)
	svc := newTestLeadService(t, &config.MailConfig{}, mailer)

	mailer.On("Ready").Return(ErrSMTPCredentialsMissing)

	id, err := svc.Dispatch(context.Background(), types.Lead{FullName: "Ana Ana", PhoneE164: "+38970000000"})

	assert.Empty(t, id)
	assert.ErrorIs(t, err, ErrSMTPCredentialsMissing)
	assert.Equal(t, float64(1), testGetCounterValue(svc.metrics.errorCount.WithLabelValues("config")))
	assert.Equal(t, float64(0), testGetCounterValue(svc.metrics.sentCount))
	mailer.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestDispatch_TransportFailureIsNotRetried(t *testing.T) {
	mailer := new(MockMailer)
	svc := newTestLeadService(t, &config.MailConfig{SMTPUser: "leads@example.com"}, mailer)

	sendErr := errors.New("535 authentication failed")
	mailer.On("Ready").Return(nil)
	mailer.On("Send", mock.Anything, mock.Anything).Return("", sendErr).Once()

	_, err := svc.Dispatch(context.Background(), types.Lead{FullName: "Ana Ana", PhoneE164: "+38970000000"})

	assert.ErrorIs(t, err, sendErr)
	assert.Equal(t, float64(1), testGetCounterValue(svc.metrics.errorCount.WithLabelValues("transport")))
	mailer.AssertNumberOfCalls(t, "Send", 1)
}

func TestDispatch_FallbackRecipient(t *testing.T) {
	mailer := new(MockMailer)
	svc := newTestLeadService(t, &config.MailConfig{SMTPUser: "leads@example.com", CCPartner: true}, mailer)

	mailer.On("Ready").Return(nil)
	mailer.On("Send", mock.Anything, mock.MatchedBy(func(msg Message) bool {
		return msg.To == FallbackRecipient && msg.Cc == nil
	})).Return("id-1", nil).Once()

	_, err := svc.Dispatch(context.Background(), types.Lead{FullName: "Ana Ana", PhoneE164: "+38970000000"})

	require.NoError(t, err)
	mailer.AssertExpectations(t)
}
