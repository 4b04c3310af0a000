package get_receipt

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
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

// Handle GET /api/v1/customer/bookings/{bookingId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID := mux.Vars(r)["bookingId"]

	dashboard, ok := middleware.GetDashboard[CustomerDashboard](r.Context())
	if !ok {
		h.logger.Error("GET /customer/bookings/{id}/receipt - Dashboard missing in context")
		handlers.RespondInternalError(w)
		return
	}

	doc, err := dashboard.Receipt(r.Context(), bookingID)
	if err != nil {
		switch {
		case errors.Is(err, customerDashboard.ErrBookingNotFound):
			h.logger.Warn("GET /customer/bookings/{id}/receipt - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, customerDashboard.ErrClosed):
			handlers.RespondUnauthorized(w, msgSessionClosed)

		default:
			h.logger.Error("GET /customer/bookings/{id}/receipt - Failed to render receipt: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /customer/bookings/{id}/receipt - Receipt generated: booking_id=%s, file=%s", bookingID, doc.Filename)
	handlers.RespondFile(w, doc.Filename, doc.ContentType, doc.Content)
}
