package userservice

import "github.com/m04kA/SMC-WashDashboard/internal/domain"

// Profile профиль пользователя из UserService
type Profile struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"` // CUSTOMER | SERVICE_PROVIDER
}

// ToDomain конвертирует профиль в domain модель
func (p *Profile) ToDomain() *domain.User {
	return &domain.User{
		Name:  p.Name,
		Email: p.Email,
		Role:  domain.Role(p.Role),
	}
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
