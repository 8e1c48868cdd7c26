package modules

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/musemarket/musemarket-api/pkg/response"
)

// Pinger checks one backing service.
type Pinger func(ctx context.Context) error

// HealthModule reports whether the required backends answer.
type HealthModule struct {
	Checks map[string]Pinger
}

func NewHealthModule(checks map[string]Pinger) *HealthModule {
	return &HealthModule{Checks: checks}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/health", m.health)
}

func (m *HealthModule) health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := http.StatusOK
	report := make(map[string]string, len(m.Checks))
	for name, ping := range m.Checks {
		if err := ping(ctx); err != nil {
			report[name] = err.Error()
			status = http.StatusServiceUnavailable
			continue
		}
		report[name] = "ok"
	}
	if status != http.StatusOK {
		response.Error[any](c, status, "unhealthy", report)
		return
	}
	response.Success(c, status, report, "healthy", nil)
}
