package navigate_calendar

import (
	"context"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

const (
	msgInvalidDirection = "некорректное направление: ожидается previous, next, today или reset"
	msgSessionClosed    = "сессия завершена"
)

// Направления навигации
const (
	DirectionPrevious = "previous"
	DirectionNext     = "next"
	DirectionToday    = "today"
	DirectionReset    = "reset"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/customer/calendar/{direction}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	direction := mux.Vars(r)["direction"]

	dashboard, ok := middleware.GetDashboard[CustomerDashboard](r.Context())
	if !ok {
		h.logger.Error("POST /customer/calendar/{direction} - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	var navigate func(ctx context.Context) (*customerDashboard.CalendarResponse, error)
	switch direction {
	case DirectionPrevious:
		navigate = dashboard.PreviousMonth
	case DirectionNext:
		navigate = dashboard.NextMonth
	case DirectionToday:
		navigate = dashboard.Refresh
	case DirectionReset:
		navigate = dashboard.ResetSelection
	default:
		h.logger.Warn("POST /customer/calendar/{direction} - Invalid direction: %q", direction)
		handlers.RespondBadRequest(w, msgInvalidDirection)
		return
	}

	calendar, err := navigate(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("POST /customer/calendar/{direction} - Failed to navigate: direction=%s, error=%v", direction, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customer/calendar/{direction} - Calendar moved: direction=%s, month=%s %d",
		direction, calendar.Month, calendar.Year)
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
