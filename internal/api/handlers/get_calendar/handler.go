package get_calendar

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
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

// Handle GET /api/v1/customer/calendar
// Сетка месяца, слоты и текущий выбор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[CustomerDashboard](r.Context())
	if !ok {
		h.logger.Error("GET /customer/calendar - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	calendar, err := dashboard.Calendar(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("GET /customer/calendar - Failed to get calendar: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customer/calendar - Calendar retrieved: month=%s %d", calendar.Month, calendar.Year)
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
