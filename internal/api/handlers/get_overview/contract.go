package get_overview

import (
	"context"

	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

type ProviderDashboard interface {
	Overview(ctx context.Context) (*providerDashboard.OverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
