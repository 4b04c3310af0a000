package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
)

const msgMissingUser = "отсутствует пользователь запроса"

type dashboardKey struct{}

// Dashboard открывает дашборд пользователя запроса и кладет его в контекст
// Должен стоять после Auth
func Dashboard(open DashboardOpener, logger Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			principal, ok := GetPrincipal(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgMissingUser)
				return
			}

			dashboard, err := open(r.Context(), principal.User)
			if err != nil {
				logger.Error("%s %s - Failed to open dashboard: email=%s, error=%v",
					r.Method, r.URL.Path, principal.User.Email, err)
				handlers.RespondInternalError(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithDashboard(r.Context(), dashboard)))
		})
	}
}

// WithDashboard кладет дашборд в контекст
func WithDashboard(ctx context.Context, dashboard interface{}) context.Context {
	return context.WithValue(ctx, dashboardKey{}, dashboard)
}

// GetDashboard достает дашборд из контекста как интерфейс T, нужный обработчику
func GetDashboard[T any](ctx context.Context) (T, bool) {
	d, ok := ctx.Value(dashboardKey{}).(T)
	return d, ok
}
