package authservice

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Claims полезная нагрузка токена сервиса авторизации
// sub содержит email пользователя, jti используется для отзыва при logout
type Claims struct {
	Name string `json:"name"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Token проверенный токен
type Token struct {
	ID        string
	User      domain.User
	ExpiresAt time.Time
}
