package bookings

import (
	"strings"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// Filter отбирает бронирования по точному статусу и подстроке в имени клиента или ID
// Поиск регистронезависимый, порядок сохраняется
// Пустой фильтр возвращает копию всего набора
func Filter(bookings []domain.Booking, filter domain.BookingFilter) []domain.Booking {
	term := strings.ToLower(filter.SearchTerm)

	result := make([]domain.Booking, 0, len(bookings))
	for _, b := range bookings {
		if filter.Status != nil && b.Status != *filter.Status {
			continue
		}
		if term != "" &&
			!strings.Contains(strings.ToLower(b.CustomerName), term) &&
			!strings.Contains(strings.ToLower(b.ID), term) {
			continue
		}
		result = append(result, b)
	}

	return result
}
