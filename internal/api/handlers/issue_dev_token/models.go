package issue_dev_token

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

var (
	errMissingName  = errors.New("name is required")
	errInvalidEmail = errors.New("invalid email")
	errInvalidRole  = errors.New("invalid role")
)

var validate = validator.New()

// IssueTokenRequest данные пользователя для dev-токена
type IssueTokenRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=CUSTOMER SERVICE_PROVIDER"`
}

// TokenResponse выданный токен
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"` // секунды
}

// ToDomainUser валидирует запрос и конвертирует его в пользователя
func (r *IssueTokenRequest) ToDomainUser() (domain.User, error) {
	normalized := IssueTokenRequest{
		Name:  strings.TrimSpace(r.Name),
		Email: strings.ToLower(strings.TrimSpace(r.Email)),
		Role:  strings.ToUpper(strings.TrimSpace(r.Role)),
	}

	if err := validate.Struct(&normalized); err != nil {
		return domain.User{}, fieldError(err)
	}

	return domain.User{
		Name:  normalized.Name,
		Email: normalized.Email,
		Role:  domain.Role(normalized.Role),
	}, nil
}

// fieldError сводит ошибку валидатора к ошибке первого невалидного поля
func fieldError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return err
	}

	switch errs[0].Field() {
	case "Name":
		return errMissingName
	case "Email":
		return errInvalidEmail
	default:
		return errInvalidRole
	}
}
