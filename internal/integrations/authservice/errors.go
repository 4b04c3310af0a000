package authservice

import "errors"

var (
	// ErrInvalidToken возвращается, когда токен не прошел проверку подписи или формата
	ErrInvalidToken = errors.New("authservice: invalid token")

	// ErrTokenExpired возвращается для просроченного токена
	ErrTokenExpired = errors.New("authservice: token expired")

	// ErrInvalidClaims возвращается, когда в токене нет обязательных полей
	ErrInvalidClaims = errors.New("authservice: invalid token claims")

	// ErrSign возвращается при ошибке подписи токена
	ErrSign = errors.New("authservice: failed to sign token")
)
