package get_invoice

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/reports"
)

type ProviderDashboard interface {
	Invoice(ctx context.Context, bookingID string) (*reports.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
