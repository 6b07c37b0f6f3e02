package services

import (
	"time"

	"github.com/ideamk/leadmail/logger"
	"github.com/ideamk/leadmail/types"
	"go.uber.org/zap"
)

type HealthService struct {
	mailer    Mailer
	version   string
	startedAt time.Time
	log       *zap.SugaredLogger
}

func NewHealthService(mailer Mailer, version string) *HealthService {
	return &HealthService{
		mailer:    mailer,
		version:   version,
		startedAt: time.Now(),
		log:       logger.GetLogger(),
	}
}

// CheckHealth reports DOWN when the mailer lacks credentials, since every
// lead would then be rejected with a 500.
func (h *HealthService) CheckHealth() types.HealthCheck {
	mailerStatus := h.checkMailer()

	return types.HealthCheck{
		Status:     mailerStatus.Status,
		Components: map[string]types.HealthComponent{"mailer": mailerStatus},
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startedAt).Round(time.Second).String(),
	}
}

func (h *HealthService) checkMailer() types.HealthComponent {
	if err := h.mailer.Ready(); err != nil {
		h.log.Warnw("Mailer health check failed", "provider", h.mailer.Name(), "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: err.Error(),
		}
	}
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: h.mailer.Name(),
	}
}
