package provider_dashboard

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"

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

// Clock источник времени и таймеров (clock.Clock или clock.Mock)
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) *clock.Timer
	Ticker(d time.Duration) *clock.Ticker
}

// RandomSource равномерная выборка из [0, 1)
type RandomSource interface {
	Float64() float64
}

// Metrics метрики дашборда
type Metrics interface {
	BookingTransition(dashboard, from, to string)
	SimulatedArrival()
	ToastShown(toastType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
