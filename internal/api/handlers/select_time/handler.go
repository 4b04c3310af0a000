package select_time

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

// Handle POST /api/v1/customer/calendar/time
// Слот вне каталога не ошибка: ответ 200 с applied=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customer/calendar/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dashboard, ok := middleware.GetDashboard[CustomerDashboard](r.Context())
	if !ok {
		h.logger.Error("POST /customer/calendar/time - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	calendar, err := dashboard.SelectTime(r.Context(), req.Time)
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("POST /customer/calendar/time - Failed to select time: time=%s, error=%v", req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customer/calendar/time - Time selection: time=%s, applied=%t", req.Time, calendar.Applied)
	handlers.RespondJSON(w, http.StatusOK, calendar)
}
