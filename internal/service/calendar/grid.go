package calendar

import (
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

// GenerateGrid строит сетку месяца из 42 дней (6 полных недель)
// Сетка начинается с ближайшего воскресенья не позже первого числа месяца reference
// День недоступен, если он раньше today или позже today+windowDays
// Окно всегда считается от today и не зависит от просматриваемого месяца
func GenerateGrid(reference, today time.Time, windowDays int, selectedDate string) []domain.CalendarDay {
	first := monthStart(reference)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	todayDate := dateOnly(today)
	lastBookable := todayDate.AddDate(0, 0, windowDays)

	days := make([]domain.CalendarDay, 0, domain.GridSize)
	for i := 0; i < domain.GridSize; i++ {
		d := start.AddDate(0, 0, i)
		fullDate := d.Format(domain.DateFormat)

		days = append(days, domain.CalendarDay{
			Date:         d.Day(),
			FullDate:     fullDate,
			CurrentMonth: d.Month() == first.Month() && d.Year() == first.Year(),
			Disabled:     d.Before(todayDate) || d.After(lastBookable),
			Selected:     selectedDate != "" && fullDate == selectedDate,
		})
	}

	return days
}

// IsBookable проверяет, что дата входит в окно [today, today+windowDays]
func IsBookable(date, today time.Time, windowDays int) bool {
	d := dateOnly(date)
	todayDate := dateOnly(today)
	return !d.Before(todayDate) && !d.After(todayDate.AddDate(0, 0, windowDays))
}

// ParseDate парсит дату YYYY-MM-DD в полночь UTC
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// dateOnly отбрасывает время, сохраняя календарную дату в исходной зоне
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func monthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}
