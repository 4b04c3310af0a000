package bookings

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("bookings: booking not found")

	// ErrInvalidSeed возвращается при некорректных демо-данных
	ErrInvalidSeed = errors.New("bookings: invalid seed data")
)
