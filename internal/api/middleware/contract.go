package middleware

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
)

// Authenticator проверка токена запроса
type Authenticator interface {
	Authenticate(ctx context.Context, rawToken string) (session.Principal, error)
}

// DashboardOpener возвращает дашборд пользователя, создавая его при первом обращении
type DashboardOpener func(ctx context.Context, owner domain.User) (interface{}, error)

// HTTPMetrics метрики HTTP запросов
type HTTPMetrics interface {
	ObserveHTTPRequest(method, route, status string, seconds float64)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
