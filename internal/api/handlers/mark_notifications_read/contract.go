package mark_notifications_read

import (
	"context"

	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

type ProviderDashboard interface {
	MarkNotificationsRead(ctx context.Context) (*providerDashboard.NotificationsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
