package get_me

import (
	"net/http"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
)

const msgUnauthenticated = "пользователь не аутентифицирован"

type Handler struct {
	session SessionService
	logger  Logger
}

func NewHandler(session SessionService, logger Logger) *Handler {
	return &Handler{
		session: session,
		logger:  logger,
	}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	user, err := h.session.CurrentUser(r.Context())
	if err != nil {
		if session.IsUnauthenticated(err) {
			h.logger.Warn("GET /me - Unauthenticated: %v", err)
			handlers.RespondUnauthorized(w, msgUnauthenticated)
			return
		}
		h.logger.Error("GET /me - Failed to get current user: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /me - Current user retrieved: email=%s", user.Email)
	handlers.RespondJSON(w, http.StatusOK, FromDomainUser(user))
}
