package session

import "errors"

var (
	// ErrUnauthenticated возвращается, когда в запросе нет действующей сессии
	ErrUnauthenticated = errors.New("session: unauthenticated")

	// ErrTokenRevoked возвращается для токена, отозванного при logout
	ErrTokenRevoked = errors.New("session: token revoked")

	// ErrInternal возвращается при внутренних ошибках сессии
	ErrInternal = errors.New("session: internal error")
)
