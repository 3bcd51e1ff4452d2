package controllers

import (
	"context"
	"helpmynew-service/internal/pkg/constvars"
	"helpmynew-service/internal/pkg/dto/responses"
	"helpmynew-service/internal/pkg/utils"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
)

// HealthCheck probes one dependency; nil means healthy.
type HealthCheck func(ctx context.Context) error

type HealthController struct {
	Log     *zap.Logger
	Version string
	Checks  map[string]HealthCheck
}

var (
	healthControllerInstance *HealthController
	onceHealthController     sync.Once
)

func NewHealthController(logger *zap.Logger, version string, checks map[string]HealthCheck) *HealthController {
	onceHealthController.Do(func() {
		healthControllerInstance = &HealthController{
			Log:     logger,
			Version: version,
			Checks:  checks,
		}
	})
	return healthControllerInstance
}

func (ctrl *HealthController) Root(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ServiceRootSuccessMessage, map[string]string{
		"message": constvars.ServiceRootSuccessMessage,
		"version": constvars.ServiceRootVersionSuccessInfo,
	})
}

// Healthz answers 200 when every check passes and 503 otherwise.
func (ctrl *HealthController) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	result := responses.Health{Status: constvars.HealthCheckSuccessMessage, Version: ctrl.Version}
	if len(ctrl.Checks) > 0 {
		result.Checks = make(map[string]string, len(ctrl.Checks))
	}

	code := constvars.StatusOK
	for name, check := range ctrl.Checks {
		if err := check(ctx); err != nil {
			ctrl.Log.Warn("HealthController.Healthz dependency unhealthy",
				zap.String("dependency", name),
				zap.Error(err),
			)
			result.Checks[name] = err.Error()
			result.Status = constvars.ResponseError
			code = constvars.StatusServiceUnavailable
			continue
		}
		result.Checks[name] = constvars.HealthCheckSuccessMessage
	}

	utils.BuildSuccessResponse(w, code, result.Status, result)
}
