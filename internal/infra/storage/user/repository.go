package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/pkg/psqlbuilder"
)

// Repository справочник пользователей (таблица users сервиса авторизации)
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория пользователей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByEmail получает пользователя по email (без учета регистра)
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query, args, err := buildGetByEmailQuery(email)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - build select query: %v", ErrBuildQuery, err)
	}

	var u domain.User
	var role string

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&u.Name,
		&u.Email,
		&role,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByEmail - scan: %v", ErrScanRow, err)
	}

	u.Role = domain.Role(role)
	if !u.Role.IsValid() {
		return nil, fmt.Errorf("%w: GetByEmail - email=%s role=%q", ErrInvalidRole, email, role)
	}

	return &u, nil
}

func buildGetByEmailQuery(email string) (string, []interface{}, error) {
	return psqlbuilder.Select(
		"name",
		"email",
		"role",
	).
		From("users").
		Where(squirrel.Eq{"lower(email)": strings.ToLower(email)}).
		Limit(1).
		ToSql()
}
