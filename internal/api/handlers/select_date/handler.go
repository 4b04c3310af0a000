package select_date

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSessionClosed      = "сессия завершена"
)

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}

// Handle POST /api/v1/customer/calendar/date
// Недоступная дата не ошибка: ответ 200 с applied=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customer/calendar/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dashboard, ok := middleware.GetDashboard[CustomerDashboard](r.Context())
	if !ok {
		h.logger.Error("POST /customer/calendar/date - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	calendar, err := dashboard.SelectDate(r.Context(), req.Date)
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("POST /customer/calendar/date - Failed to select date: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customer/calendar/date - Date selection: date=%s, applied=%t", req.Date, calendar.Applied)
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
