package get_stats

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
)

// Dashboard любой дашборд со статистикой (клиента или провайдера)
type Dashboard interface {
	Stats(ctx context.Context) (*models.StatsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
