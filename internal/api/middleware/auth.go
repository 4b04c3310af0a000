package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
)

const (
	msgMissingToken  = "отсутствует токен авторизации"
	msgInvalidToken  = "недействительный токен авторизации"
	msgTokenRevoked  = "сессия завершена"
	msgForbiddenRole = "доступ запрещен для роли пользователя"
)

const bearerPrefix = "Bearer "

// Auth проверяет заголовок Authorization: Bearer <token>
// и кладет пользователя запроса в контекст
func Auth(auth Authenticator, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				logger.Warn("%s %s - Missing bearer token", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			principal, err := auth.Authenticate(r.Context(), strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix)))
			if err != nil {
				switch {
				case errors.Is(err, session.ErrTokenRevoked):
					handlers.RespondUnauthorized(w, msgTokenRevoked)
				case errors.Is(err, session.ErrUnauthenticated):
					handlers.RespondUnauthorized(w, msgInvalidToken)
				default:
					logger.Error("%s %s - Authentication failed: %v", r.Method, r.URL.Path, err)
					handlers.RespondInternalError(w)
				}
				return
			}

			next.ServeHTTP(w, r.WithContext(session.WithPrincipal(r.Context(), principal)))
		})
	}
}

// RequireRole пропускает только пользователей с указанной ролью
// Должен стоять после Auth
func RequireRole(role domain.Role, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			if principal.User.Role != role {
				logger.Warn("%s %s - Role %s is not allowed, required %s: email=%s",
					r.Method, r.URL.Path, principal.User.Role, role, principal.User.Email)
				handlers.RespondForbidden(w, msgForbiddenRole)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GetPrincipal возвращает пользователя запроса
func GetPrincipal(ctx context.Context) (session.Principal, bool) {
	return session.PrincipalFromContext(ctx)
}
