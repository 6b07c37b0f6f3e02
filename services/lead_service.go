package services

import (
	"context"
	"time"

	"github.com/ideamk/leadmail/config"
	"github.com/ideamk/leadmail/internal/leadfmt"
	"github.com/ideamk/leadmail/logger"
	"github.com/ideamk/leadmail/types"
	"github.com/prometheus/client_golang/prometheus"
)

// FallbackRecipient receives leads when neither the lead nor the
// configuration names a recipient.
const FallbackRecipient = "ideamkkredit@yahoo.com"

type LeadMetrics struct {
	sendLatency prometheus.Histogram
	errorCount  *prometheus.CounterVec
	sentCount   prometheus.Counter
}

// LeadService renders a validated lead and hands it to the mailer. It keeps
// no state between calls.
type LeadService struct {
	config   *config.MailConfig
	mailer   Mailer
	renderer *leadfmt.Renderer
	metrics  *LeadMetrics
	now      func() time.Time
}

func NewLeadService(cfg *config.MailConfig, mailer Mailer, renderer *leadfmt.Renderer) *LeadService {
	return NewLeadServiceWithRegistry(cfg, mailer, renderer, prometheus.DefaultRegisterer)
}

func NewLeadServiceWithRegistry(cfg *config.MailConfig, mailer Mailer, renderer *leadfmt.Renderer, reg prometheus.Registerer) *LeadService {
	metrics := &LeadMetrics{
		sendLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "leadmail_dispatch_duration_seconds",
			Help:    "Time taken to hand a lead to the mail transport",
			Buckets: []float64{.1, .25, .5, 1, 2.5, 5, 10, 30},
		}),
		errorCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "leadmail_dispatch_errors_total",
			Help: "Total number of failed lead dispatches",
		}, []string{"reason"}),
		sentCount: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "leadmail_leads_sent_total",
			Help: "Total number of leads delivered to the mail transport",
		}),
	}

	reg.MustRegister(metrics.sendLatency)
	reg.MustRegister(metrics.errorCount)
	reg.MustRegister(metrics.sentCount)

	return &LeadService{
		config:   cfg,
		mailer:   mailer,
		renderer: renderer,
		metrics:  metrics,
		now:      time.Now,
	}
}

// Recipient is the partner email, else the configured recipient, else
// FallbackRecipient.
func Recipient(lead types.Lead, cfg *config.MailConfig) string {
	if lead.PartnerEmail != "" {
		return lead.PartnerEmail
	}
	if cfg.ToEmail != "" {
		return cfg.ToEmail
	}
	return FallbackRecipient
}

// CarbonCopy returns the partner email when CC_PARTNER is on and the lead
// has one.
func CarbonCopy(lead types.Lead, cfg *config.MailConfig) []string {
	if cfg.CCPartner && lead.PartnerEmail != "" {
		return []string{lead.PartnerEmail}
	}
	return nil
}

// Dispatch renders lead and sends it exactly once. It returns the mailer's
// message ID. Nothing is retried.
func (s *LeadService) Dispatch(ctx context.Context, lead types.Lead) (string, error) {
	log := logger.GetLogger()

	if err := s.mailer.Ready(); err != nil {
		s.metrics.errorCount.WithLabelValues("config").Inc()
		log.Errorw("Mailer not configured", "provider", s.mailer.Name(), "error", err)
		return "", err
	}

	rendered, err := s.renderer.Render(lead, s.now())
	if err != nil {
		s.metrics.errorCount.WithLabelValues("render").Inc()
		log.Errorw("Failed to render lead", "error", err)
		return "", err
	}

	msg := Message{
		From:    s.config.Sender(),
		To:      Recipient(lead, s.config),
		Cc:      CarbonCopy(lead, s.config),
		Subject: rendered.Subject,
		Text:    rendered.Text,
		HTML:    rendered.HTML,
		Attachment: Attachment{
			Filename:    rendered.AttachmentName,
			Content:     rendered.CSV,
			ContentType: leadfmt.CSVContentType,
		},
	}

	startTime := time.Now()
	messageID, err := s.mailer.Send(ctx, msg)
	s.metrics.sendLatency.Observe(time.Since(startTime).Seconds())
	if err != nil {
		reason := "transport"
		if IsCredentialsError(err) {
			reason = "config"
		}
		s.metrics.errorCount.WithLabelValues(reason).Inc()
		log.Errorw("Lead dispatch failed",
			"provider", s.mailer.Name(),
			"to", logger.MaskEmail(msg.To),
			"phone", logger.MaskPhone(lead.PhoneE164),
			"error", err)
		return "", err
	}

	s.metrics.sentCount.Inc()
	log.Infow("Lead dispatched",
		"provider", s.mailer.Name(),
		"message_id", messageID,
		"to", logger.MaskEmail(msg.To),
		"cc_partner", len(msg.Cc) > 0,
		"phone", logger.MaskPhone(lead.PhoneE164),
		"received_at", lead.ReceivedAt)

	return messageID, nil
}
