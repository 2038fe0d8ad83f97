package health

import (
	"context"
	"net/http"
	"time"

	"github.com/GlebRadaev/vending/pkg/utils"
	"go.uber.org/zap"
)

//go:generate mockgen -source=health.go -destination=mock_health.go -package=health

const pingTimeout = 2 * time.Second

type Pinger interface {
	Ping(ctx context.Context) error
}

type Response struct {
	Status    string    `json:"status" example:"healthy"`
	Timestamp time.Time `json:"timestamp"`
	Database  string    `json:"database" example:"connected"`
}

type HealthHandler struct {
	db  Pinger
	now func() time.Time
}

func New(db Pinger) *HealthHandler {
	return &HealthHandler{db: db, now: time.Now}
}

// Check godoc
//
//	@Summary	Service health
//	@Tags		Health
//	@Produce	json
//	@Success	200	{object}	health.Response	"Database reachable"
//	@Failure	503	{object}	health.Response	"Database unreachable"
//	@Router		/health [get]
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := Response{Status: "healthy", Timestamp: h.now(), Database: "connected"}
	code := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		zap.L().Warn("health check failed", zap.Error(err))
		resp.Status, resp.Database = "unhealthy", "disconnected"
		code = http.StatusServiceUnavailable
	}
	utils.RespondWithJSON(w, code, resp)
}
