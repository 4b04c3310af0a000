package get_notifications

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

// Handle GET /api/v1/provider/notifications
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("GET /provider/notifications - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := dashboard.Notifications(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("GET /provider/notifications - Failed to get notifications: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /provider/notifications - Notifications retrieved: toasts=%d, unread=%d",
		len(result.Toasts), result.UnreadCount)
	handlers.RespondJSON(w, http.StatusOK, result)
}
