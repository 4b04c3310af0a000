package notifications

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
)

// Clock источник времени и таймеров (clock.Clock или clock.Mock)
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) *clock.Timer
}

// TransactionManager очередь, через которую выполняется удаление по таймеру
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики уведомлений
type Metrics interface {
	ToastShown(toastType string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
