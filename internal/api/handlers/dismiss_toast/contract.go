package dismiss_toast

import "context"

type ProviderDashboard interface {
	DismissToast(ctx context.Context, toastID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
