package simulate_booking

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

// Handle POST /api/v1/provider/bookings/simulate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dashboard, ok := middleware.GetDashboard[ProviderDashboard](r.Context())
	if !ok {
		h.logger.Error("POST /provider/bookings/simulate - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	booking, err := dashboard.SimulateBooking(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, providerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)
		default:
			h.logger.Error("POST /provider/bookings/simulate - Failed to simulate booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /provider/bookings/simulate - Test booking created: booking_id=%s, customer=%s",
		booking.ID, booking.CustomerName)
	handlers.RespondJSON(w, http.StatusCreated, booking)
}
