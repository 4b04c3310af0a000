package customer_dashboard

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// SessionContext сессия пользователя, переданная дашборду при создании
type SessionContext interface {
	CurrentUser(ctx context.Context) (domain.User, error)
	Logout(ctx context.Context) error
}

// TransactionManager очередь мутаций дашборда
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
	Close()
}

// Metrics метрики дашборда
type Metrics interface {
	BookingSubmitted(dashboard, serviceType string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
