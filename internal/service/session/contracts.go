package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/integrations/authservice"
)

// TokenVerifier проверка токенов сервиса авторизации
type TokenVerifier interface {
	Verify(raw string) (*authservice.Token, error)
}

// RevocationStore хранилище отозванных токенов
type RevocationStore interface {
	Revoke(ctx context.Context, tokenID string, until time.Time) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// UserDirectory справочник пользователей (опционально)
type UserDirectory interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
