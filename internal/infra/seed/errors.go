package seed

import "errors"

var (
	// ErrRead возвращается, если файл с демо-данными не прочитан
	ErrRead = errors.New("seed: failed to read fixtures")

	// ErrParse возвращается при некорректном YAML
	ErrParse = errors.New("seed: failed to parse fixtures")

	// ErrInvalidBooking возвращается, если бронирование в демо-данных некорректно
	ErrInvalidBooking = errors.New("seed: invalid booking")
)
