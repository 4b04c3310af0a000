package get_booking

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
)

type ProviderDashboard interface {
	Booking(ctx context.Context, bookingID string) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
