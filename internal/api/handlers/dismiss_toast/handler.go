package dismiss_toast

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

// Handle DELETE /api/v1/provider/notifications/{toastId}
// Удаление идемпотентно: неизвестный или уже удаленный toast тоже дает 204
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	toastID := mux.Vars(r)["toastId"]

	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("DELETE /provider/notifications/{id} - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	removed, err := dashboard.DismissToast(r.Context(), toastID)
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("DELETE /provider/notifications/{id} - Failed to dismiss toast: toast_id=%s, error=%v", toastID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /provider/notifications/{id} - Toast dismissed: toast_id=%s, removed=%t", toastID, removed)
	handlers.RespondNoContent(w)
}
