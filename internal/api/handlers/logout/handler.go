package logout

import (
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
)

const msgUnauthenticated = "пользователь не аутентифицирован"

type Handler struct {
	session SessionService
	pools   []DashboardPool
	logger  Logger
}

func NewHandler(session SessionService, logger Logger, pools ...DashboardPool) *Handler {
	return &Handler{
		session: session,
		pools:   pools,
		logger:  logger,
	}
}

// Handle POST /api/v1/logout
// Отзывает токен и закрывает дашборды пользователя
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /logout - Missing principal")
		handlers.RespondUnauthorized(w, msgUnauthenticated)
		return
	}

	if err := h.session.Logout(r.Context()); err != nil {
		if session.IsUnauthenticated(err) {
			handlers.RespondUnauthorized(w, msgUnauthenticated)
			return
		}
		h.logger.Error("POST /logout - Failed to revoke token: email=%s, error=%v", principal.User.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	closed := 0
	for _, pool := range h.pools {
		if pool.Remove(principal.User.Email) {
			closed++
		}
	}

	h.logger.Info("POST /logout - User logged out: email=%s, dashboards closed=%d", principal.User.Email, closed)
	handlers.RespondNoContent(w)
}
