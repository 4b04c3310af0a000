package get_report

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/reports"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

type ProviderDashboard interface {
	Report(ctx context.Context, format providerDashboard.ReportFormat) (*reports.Document, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
