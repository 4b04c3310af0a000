package customer_dashboard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("customer_dashboard: invalid input data")

	// ErrUnknownService возвращается, когда услуги нет в каталоге
	ErrUnknownService = errors.New("customer_dashboard: unknown service")

	// ErrInvalidDate возвращается при пустой или некорректной дате
	ErrInvalidDate = errors.New("customer_dashboard: invalid booking date")

	// ErrDateOutOfWindow возвращается, когда дата вне окна бронирования
	ErrDateOutOfWindow = errors.New("customer_dashboard: date is outside the booking window")

	// ErrInvalidTimeSlot возвращается при пустом слоте или слоте вне каталога
	ErrInvalidTimeSlot = errors.New("customer_dashboard: invalid time slot")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("customer_dashboard: booking not found")

	// ErrSession возвращается, если текущий пользователь недоступен
	ErrSession = errors.New("customer_dashboard: session unavailable")

	// ErrClosed возвращается после закрытия дашборда
	ErrClosed = errors.New("customer_dashboard: dashboard closed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("customer_dashboard: internal error")
)
