package get_overview

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
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

// Handle GET /api/v1/provider/overview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("GET /provider/overview - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	overview, err := dashboard.Overview(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrSession), errors.Is(err, providerDashboard.ErrClosed):
			h.logger.Warn("GET /provider/overview - Session unavailable: %v", err)
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("GET /provider/overview - Failed to get overview: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /provider/overview - Overview retrieved: email=%s, unread=%d", overview.Email, overview.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, overview)
}
