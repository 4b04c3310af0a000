package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Service сессия пользователя поверх токенов сервиса авторизации
// Реализует контракт {CurrentUser, Logout}, который получают дашборды
type Service struct {
	verifier   TokenVerifier
	revocation RevocationStore
	directory  UserDirectory
	logger     Logger
}

// NewService создает сервис сессий; directory может быть nil
func NewService(verifier TokenVerifier, revocation RevocationStore, directory UserDirectory, logger Logger) *Service {
	return &Service{
		verifier:   verifier,
		revocation: revocation,
		directory:  directory,
		logger:     logger,
	}
}

// Authenticate проверяет токен и его отзыв
// Результат кладется в контекст запроса через WithPrincipal
func (s *Service) Authenticate(ctx context.Context, rawToken string) (Principal, error) {
	token, err := s.verifier.Verify(rawToken)
	if err != nil {
		s.logger.Warn("Authenticate: token rejected: %v", err)
		return Principal{}, fmt.Errorf("%w: %v", ErrUnauthenticated, err)
	}

	revoked, err := s.revocation.IsRevoked(ctx, token.ID)
	if err != nil {
		s.logger.Error("Authenticate: revocation check failed for jti=%s: %v", token.ID, err)
		return Principal{}, fmt.Errorf("%w: Authenticate - revocation check: %v", ErrInternal, err)
	}
	if revoked {
		s.logger.Warn("Authenticate: token jti=%s was revoked", token.ID)
		return Principal{}, ErrTokenRevoked
	}

	return Principal{
		TokenID:   token.ID,
		User:      token.User,
		ExpiresAt: token.ExpiresAt,
	}, nil
}

// CurrentUser возвращает пользователя текущего запроса
// Имя дополняется из справочника; при его ошибке используются данные токена
func (s *Service) CurrentUser(ctx context.Context) (domain.User, error) {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return domain.User{}, ErrUnauthenticated
	}

	user := p.User
	if s.directory == nil {
		return user, nil
	}

	found, err := s.directory.GetByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Warn("CurrentUser: directory lookup for email=%s failed, using token claims: %v", user.Email, err)
		return user, nil
	}

	if found.Name != "" {
		user.Name = found.Name
	}
	if found.Role != user.Role {
		// роль из токена определяет смонтированный дашборд, расхождение только логируем
		s.logger.Warn("CurrentUser: role mismatch for email=%s: token=%s directory=%s", user.Email, user.Role, found.Role)
	}

	return user, nil
}

// Logout отзывает токен текущего запроса до истечения его срока
func (s *Service) Logout(ctx context.Context) error {
	p, ok := PrincipalFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	if err := s.revocation.Revoke(ctx, p.TokenID, p.ExpiresAt); err != nil {
		s.logger.Error("Logout: failed to revoke jti=%s: %v", p.TokenID, err)
		return fmt.Errorf("%w: Logout - revoke: %v", ErrInternal, err)
	}

	s.logger.Info("Logout: user email=%s logged out, jti=%s", p.User.Email, p.TokenID)
	return nil
}

// IsUnauthenticated проверяет, относится ли ошибка к отсутствию сессии
func IsUnauthenticated(err error) bool {
	return errors.Is(err, ErrUnauthenticated) || errors.Is(err, ErrTokenRevoked)
}
