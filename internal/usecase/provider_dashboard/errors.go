package provider_dashboard

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("provider_dashboard: invalid input data")

	// ErrInvalidAction возвращается при неизвестном действии над бронированием
	ErrInvalidAction = errors.New("provider_dashboard: invalid booking action")

	// ErrInvalidFormat возвращается при неизвестном формате отчета
	ErrInvalidFormat = errors.New("provider_dashboard: invalid report format")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("provider_dashboard: booking not found")

	// ErrReport возвращается, если отчет не удалось сформировать
	ErrReport = errors.New("provider_dashboard: report generation failed")

	// ErrSession возвращается при ошибке сессии
	ErrSession = errors.New("provider_dashboard: session unavailable")

	// ErrClosed возвращается после закрытия дашборда
	ErrClosed = errors.New("provider_dashboard: dashboard closed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("provider_dashboard: internal error")
)
