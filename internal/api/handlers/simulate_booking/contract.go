package simulate_booking

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
)

type ProviderDashboard interface {
	SimulateBooking(ctx context.Context) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
