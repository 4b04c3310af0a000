package transition_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

const (
	msgInvalidAction = "некорректное действие: ожидается accept, reject, start или complete"
	msgNotFound      = "бронирование не найдено"
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

// Handle PATCH /api/v1/provider/bookings/{bookingId}/{action}
// Действие из неподходящего статуса возвращает 200 с applied=false
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	bookingID := vars["bookingId"]

	action, err := providerDashboard.ParseAction(vars["action"])
	if err != nil {
		h.logger.Warn("PATCH /provider/bookings/{id}/{action} - Invalid action: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAction)
		return
	}

	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("PATCH /provider/bookings/{id}/{action} - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := dashboard.Transition(r.Context(), bookingID, action)
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrBookingNotFound):
			h.logger.Warn("PATCH /provider/bookings/{id}/{action} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, providerDashboard.ErrInvalidAction):
			handlers.RespondBadRequest(w, msgInvalidAction)

		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)

		default:
			h.logger.Error("PATCH /provider/bookings/{id}/{action} - Failed to apply action: booking_id=%s, action=%s, error=%v",
				bookingID, action, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /provider/bookings/{id}/{action} - Action processed: booking_id=%s, action=%s, applied=%t, status=%s",
		bookingID, action, result.Applied, result.Booking.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
