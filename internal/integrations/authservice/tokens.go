package authservice

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// TokenManager проверяет токены сервиса авторизации (HS256)
// Выпуск токенов используется только в dev-режиме и тестах
type TokenManager struct {
	secret       []byte
	issuer       string
	timeProvider TimeProvider
}

// NewTokenManager создает менеджер токенов с общим секретом
func NewTokenManager(secret, issuer string, timeProvider TimeProvider) *TokenManager {
	return &TokenManager{
		secret:       []byte(secret),
		issuer:       issuer,
		timeProvider: timeProvider,
	}
}

// Issue выпускает токен для пользователя со сроком жизни ttl
func (m *TokenManager) Issue(user domain.User, ttl time.Duration) (string, error) {
	now := m.timeProvider.Now()

	claims := Claims{
		Name: user.Name,
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   user.Email,
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("%w: Issue - %v", ErrSign, err)
	}

	return signed, nil
}

// Verify проверяет подпись, срок действия, издателя и обязательные поля
func (m *TokenManager) Verify(raw string) (*Token, error) {
	claims := &Claims{}

	_, err := jwt.ParseWithClaims(raw, claims,
		func(t *jwt.Token) (interface{}, error) {
			return m.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.timeProvider.Now),
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	role := domain.Role(claims.Role)
	if claims.Subject == "" || claims.ID == "" || !role.IsValid() {
		return nil, fmt.Errorf("%w: sub=%q jti=%q role=%q", ErrInvalidClaims, claims.Subject, claims.ID, claims.Role)
	}

	return &Token{
		ID: claims.ID,
		User: domain.User{
			Name:  claims.Name,
			Email: claims.Subject,
			Role:  role,
		},
		ExpiresAt: claims.ExpiresAt.Time.UTC(),
	}, nil
}
