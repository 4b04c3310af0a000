package logout

import "context"

type SessionService interface {
	Logout(ctx context.Context) error
}

// DashboardPool дашборды пользователей по email
type DashboardPool interface {
	Remove(key string) bool
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
