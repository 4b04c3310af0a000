package session

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Principal аутентифицированный пользователь запроса
type Principal struct {
	TokenID   string
	User      domain.User
	ExpiresAt time.Time
}

type principalKey struct{}

// WithPrincipal кладет пользователя запроса в контекст
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext достает пользователя запроса из контекста
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
