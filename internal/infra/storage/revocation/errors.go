package revocation

import "errors"

var (
	// ErrEmptyTokenID возвращается при попытке отозвать токен без jti
	ErrEmptyTokenID = errors.New("revocation: empty token id")

	// ErrStore возвращается при ошибке внешнего хранилища
	ErrStore = errors.New("revocation: store error")
)
