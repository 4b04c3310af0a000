package get_me

import "github.com/m04kA/SMC-WashDashboard/internal/domain"

// UserResponse текущий пользователь
type UserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// FromDomainUser конвертирует пользователя в DTO
func FromDomainUser(u domain.User) *UserResponse {
	return &UserResponse{
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}
