package get_receipt

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/reports"
)

type CustomerDashboard interface {
	Receipt(ctx context.Context, bookingID string) (*reports.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
