package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	apperrors "github.com/ideamk/leadmail/errors"
	"github.com/ideamk/leadmail/logger"
	"github.com/ideamk/leadmail/services"
	"github.com/ideamk/leadmail/types"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	outcomeAccepted         = "accepted"
	outcomeInvalid          = "invalid"
	outcomeFailed           = "failed"
	outcomeMethodNotAllowed = "method_not_allowed"
)

// LeadDispatcher renders and sends a validated lead.
type LeadDispatcher interface {
	Dispatch(ctx context.Context, lead types.Lead) (string, error)
}

// LeadHandler is the intake endpoint for the landing page form.
type LeadHandler struct {
	dispatcher LeadDispatcher
	received   *prometheus.CounterVec
	now        func() time.Time
}

func NewLeadHandler(dispatcher LeadDispatcher) *LeadHandler {
	return NewLeadHandlerWithRegistry(dispatcher, prometheus.DefaultRegisterer)
}

func NewLeadHandlerWithRegistry(dispatcher LeadDispatcher, reg prometheus.Registerer) *LeadHandler {
	received := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "leadmail_leads_received_total",
		Help: "Lead intake requests by outcome",
	}, []string{"outcome"})
	reg.MustRegister(received)

	return &LeadHandler{
		dispatcher: dispatcher,
		received:   received,
		now:        time.Now,
	}
}

// HandleLead godoc
// @Summary Submit a lead
// @Description Validates a credit request and mails it, with a CSV attachment, to the partner or the configured recipient.
// @Tags leads
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param request body docs.LeadRequest true "Lead submission"
// @Success 200 {object} types.LeadResponse "Lead mailed"
// @Failure 400 {object} types.LeadResponse "Missing name or phone"
// @Failure 405 {object} types.LeadResponse "Method other than POST or OPTIONS"
// @Failure 500 {object} types.LeadResponse "Mailer misconfigured or delivery failed"
// @Router /api/leads [post]
func (h *LeadHandler) HandleLead(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		c.Status(http.StatusOK)
		return
	case http.MethodPost:
	default:
		h.received.WithLabelValues(outcomeMethodNotAllowed).Inc()
		_ = c.Error(apperrors.MethodNotAllowed(c.Request.Method))
		return
	}

	log := logger.ForRequest(c)

	body := readLeadBody(c)
	switch body.kind {
	case bodyParseFailed:
		log.Warnw("Lead body could not be parsed, treating as empty", "error", body.err)
	case bodyEmpty:
		log.Infow("Lead body is empty")
	}

	lead := types.LeadFromFields(body.Fields())
	if err := lead.Validate(); err != nil {
		h.received.WithLabelValues(outcomeInvalid).Inc()
		_ = c.Error(apperrors.ValidationFailed(err.Error(), "body: "+body.kind.String()))
		return
	}
	lead.Stamp(h.now())

	messageID, err := h.dispatcher.Dispatch(c.Request.Context(), lead)
	if err != nil {
		h.received.WithLabelValues(outcomeFailed).Inc()
		if services.IsCredentialsError(err) {
			_ = c.Error(apperrors.MisconfiguredMailer(err))
		} else {
			_ = c.Error(apperrors.DeliveryFailed(err))
		}
		return
	}

	h.received.WithLabelValues(outcomeAccepted).Inc()
	c.JSON(http.StatusOK, types.Succeeded(messageID))
}
