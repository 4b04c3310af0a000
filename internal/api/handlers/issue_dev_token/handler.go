package issue_dev_token

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidUser        = "некорректные данные пользователя: нужны name, email и role (CUSTOMER или SERVICE_PROVIDER)"
)

// Handler выдает токены для локальной разработки без сервиса авторизации
type Handler struct {
	issuer TokenIssuer
	ttl    time.Duration
	logger Logger
}

func NewHandler(issuer TokenIssuer, ttl time.Duration, logger Logger) *Handler {
	return &Handler{
		issuer: issuer,
		ttl:    ttl,
		logger: logger,
	}
}

// Handle POST /api/v1/auth/dev-token
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/dev-token - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	user, err := req.ToDomainUser()
	if err != nil {
		h.logger.Warn("POST /auth/dev-token - Invalid user: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUser)
		return
	}

	token, err := h.issuer.Issue(user, h.ttl)
	if err != nil {
		h.logger.Error("POST /auth/dev-token - Failed to issue token: email=%s, error=%v", user.Email, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /auth/dev-token - Token issued: email=%s, role=%s", user.Email, user.Role)
	handlers.RespondJSON(w, http.StatusCreated, &TokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int(h.ttl.Seconds()),
	})
}
