package get_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

const (
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

// Handle GET /api/v1/provider/bookings/{bookingId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("GET /provider/bookings/{id} - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	booking, err := dashboard.Booking(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrBookingNotFound):
			h.logger.Warn("GET /provider/bookings/{id} - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)

		default:
			h.logger.Error("GET /provider/bookings/{id} - Failed to get booking: booking_id=%s, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /provider/bookings/{id} - Booking retrieved: booking_id=%s", bookingID)
	handlers.RespondJSON(w, http.StatusOK, booking)
}
