package get_bookings

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
)

// Dashboard любой дашборд со списком бронирований (клиента или провайдера)
type Dashboard interface {
	Bookings(ctx context.Context, req *models.FilterRequest) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
