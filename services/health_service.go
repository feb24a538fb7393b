package services

import (
	"context"
	"time"

	"github.com/knowgrow/agency-backend/logger"
	"github.com/knowgrow/agency-backend/types"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type HealthService struct {
	redisClient *redis.Client
	mailer      types.Mailer
	version     string
	startTime   time.Time
	log         *zap.SugaredLogger
}

// NewHealthService builds a health checker. redisClient is nil when Redis is
// disabled and is then left out of the report.
func NewHealthService(redisClient *redis.Client, mailer types.Mailer, version string) *HealthService {
	return &HealthService{
		redisClient: redisClient,
		mailer:      mailer,
		version:     version,
		startTime:   time.Now(),
		log:         logger.GetLogger(),
	}
}

func (h *HealthService) CheckHealth(ctx context.Context) types.HealthCheck {
	components := make(map[string]types.HealthComponent)
	overallStatus := types.HealthStatusUp

	components["email_provider"] = h.checkMailer()
	if components["email_provider"].Status == types.HealthStatusDown {
		overallStatus = types.HealthStatusDown
	}

	// Redis only guards optional features, so an outage degrades rather than
	// takes the service down.
	if h.redisClient != nil {
		redisStatus := h.checkRedis(ctx)
		components["redis"] = redisStatus
		if redisStatus.Status != types.HealthStatusUp && overallStatus == types.HealthStatusUp {
			overallStatus = types.HealthStatusDegraded
		}
	}

	return types.HealthCheck{
		Status:     overallStatus,
		Components: components,
		Version:    h.version,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Uptime:     time.Since(h.startTime).Round(time.Second).String(),
	}
}

func (h *HealthService) checkMailer() types.HealthComponent {
	if h.mailer == nil {
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Email provider not configured",
		}
	}
	return types.HealthComponent{
		Status:  types.HealthStatusUp,
		Details: h.mailer.Name(),
	}
}

func (h *HealthService) checkRedis(ctx context.Context) types.HealthComponent {
	if err := h.redisClient.Ping(ctx).Err(); err != nil {
		h.log.Errorw("Redis health check failed", "error", err)
		return types.HealthComponent{
			Status:  types.HealthStatusDown,
			Details: "Redis connection failed",
		}
	}

	return types.HealthComponent{
		Status: types.HealthStatusUp,
	}
}
