package mark_notifications_read

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

// Handle POST /api/v1/provider/notifications/read
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("POST /provider/notifications/read - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := dashboard.MarkNotificationsRead(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("POST /provider/notifications/read - Failed to reset counter: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /provider/notifications/read - Unread counter reset")
	handlers.RespondJSON(w, http.StatusOK, result)
}
