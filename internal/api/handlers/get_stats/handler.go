package get_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

const msgSessionClosed = "сессия завершена"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/{customer|provider}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[Dashboard](r.Context())
	if !ok {
		h.logger.Error("GET %s - Dashboard missing in context", r.URL.Path)
		handlers.RespondInternalError(w)
		return
	}

	stats, err := dashboard.Stats(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrClosed), errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("GET %s - Failed to get stats: %v", r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET %s - Stats retrieved: pending=%d, current=%d, completed=%d",
		r.URL.Path, stats.PendingBookings, stats.CurrentBookings, stats.CompletedBookings)
	handlers.RespondJSON(w, http.StatusOK, stats)
}
