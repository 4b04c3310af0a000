package get_calendar

import (
	"context"

	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

type CustomerDashboard interface {
	Calendar(ctx context.Context) (*customerDashboard.CalendarResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
