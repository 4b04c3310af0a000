package submit_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgUnknownService     = "услуга не найдена в каталоге"
	msgInvalidDate        = "некорректная дата бронирования, ожидается YYYY-MM-DD"
	msgDateOutOfWindow    = "дата вне окна бронирования"
	msgInvalidTimeSlot    = "некорректный временной слот"
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

// Handle POST /api/v1/customer/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubmitBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /customer/bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	dashboard, ok := middleware.GetDashboard[CustomerDashboard](r.Context())
	if !ok {
		h.logger.Error("POST /customer/bookings - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := dashboard.Submit(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrUnknownService):
			h.logger.Warn("POST /customer/bookings - Unknown service: %q", req.ServiceType)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, customerDashboard.ErrInvalidDate):
			h.logger.Warn("POST /customer/bookings - Invalid date: %q", req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, customerDashboard.ErrDateOutOfWindow):
			h.logger.Warn("POST /customer/bookings - Date out of window: %q", req.Date)
			handlers.RespondBadRequest(w, msgDateOutOfWindow)

		case errors.Is(err, customerDashboard.ErrInvalidTimeSlot):
			h.logger.Warn("POST /customer/bookings - Invalid time slot: %q", req.Time)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, customerDashboard.ErrSession), errors.Is(err, customerDashboard.ErrClosed):
			h.logger.Warn("POST /customer/bookings - Session unavailable: %v", err)
			handlers.RespondUnauthorized(w, msgSessionClosed)

		default:
			h.logger.Error("POST /customer/bookings - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /customer/bookings - Booking submitted: booking_id=%s, service=%s",
		result.Booking.ID, result.Booking.ServiceType)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
