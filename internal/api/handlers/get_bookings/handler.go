package get_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

const (
	msgInvalidStatus = "некорректный статус: ожидается PENDING, ACCEPTED, ACTIVE, COMPLETED или CANCELLED"
	msgSessionClosed = "сессия завершена"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle GET /api/v1/{customer|provider}/bookings
// Query params: status, search (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[Dashboard](r.Context())
	if !ok {
		h.logger.Error("GET %s - Dashboard missing in context", r.URL.Path)
		handlers.RespondInternalError(w)
		return
	}

	req := ToFilterRequest(r.URL.Query())

	result, err := dashboard.Bookings(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrInvalidInput), errors.Is(err, providerDashboard.ErrInvalidInput):
			h.logger.Warn("GET %s - Invalid filter: %v", r.URL.Path, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, customerDashboard.ErrClosed), errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)

		default:
			h.logger.Error("GET %s - Failed to list bookings: %v", r.URL.Path, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET %s - Bookings retrieved: count=%d", r.URL.Path, result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
