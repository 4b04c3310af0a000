package select_date

import (
	"context"

	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

type CustomerDashboard interface {
	SelectDate(ctx context.Context, fullDate string) (*customerDashboard.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
