package get_me

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

type SessionService interface {
	CurrentUser(ctx context.Context) (domain.User, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
