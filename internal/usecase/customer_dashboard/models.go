package customer_dashboard

import (
	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	"github.com/m04kA/SMC-WashDashboard/internal/service/calendar"
)

// Config параметры дашборда клиента
type Config struct {
	WindowDays int
}

// CalendarDay ячейка сетки календаря
type CalendarDay struct {
	Date         int    `json:"date"`
	FullDate     string `json:"fullDate"`
	CurrentMonth bool   `json:"currentMonth"`
	Disabled     bool   `json:"disabled"`
	Selected     bool   `json:"selected"`
}

// CalendarResponse состояние выбора даты и времени
type CalendarResponse struct {
	Month        string        `json:"month"` // "January"
	Year         int           `json:"year"`
	Days         []CalendarDay `json:"days"`
	TimeSlots    []string      `json:"timeSlots"`
	SelectedDate string        `json:"selectedDate"`
	SelectedTime string        `json:"selectedTime"`
	MinDate      string        `json:"minDate"`
	MaxDate      string        `json:"maxDate"`
	Applied      bool          `json:"applied"` // false, если выбор был проигнорирован
}

// SubmitRequest запрос на создание бронирования
// Пустые Date и Time берутся из текущего выбора в календаре
type SubmitRequest struct {
	ServiceType string `json:"serviceType"`
	Date        string `json:"date,omitempty"`
	Time        string `json:"time,omitempty"`
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// SubmitResponse созданное бронирование
type SubmitResponse struct {
	Booking       models.BookingResponse `json:"booking"`
	LastBookingID string                 `json:"lastBookingId"`
}

// ServiceResponse позиция каталога
type ServiceResponse struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
	Icon        string `json:"icon"`
}

// FromCalendarState конвертирует состояние выбора в DTO
func FromCalendarState(st calendar.State, minDate, maxDate string, applied bool) *CalendarResponse {
	days := make([]CalendarDay, len(st.Days))
	for i, d := range st.Days {
		days[i] = CalendarDay{
			Date:         d.Date,
			FullDate:     d.FullDate,
			CurrentMonth: d.CurrentMonth,
			Disabled:     d.Disabled,
			Selected:     d.Selected,
		}
	}

	return &CalendarResponse{
		Month:        st.Month.Month().String(),
		Year:         st.Month.Year(),
		Days:         days,
		TimeSlots:    calendar.TimeSlots(),
		SelectedDate: st.SelectedDate,
		SelectedTime: st.SelectedTime.String(),
		MinDate:      minDate,
		MaxDate:      maxDate,
		Applied:      applied,
	}
}

// FromDomainServices конвертирует каталог в DTO
func FromDomainServices(services []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, len(services))
	for i, s := range services {
		result[i] = ServiceResponse{
			Name:        s.Name,
			Description: s.Description,
			Price:       s.Price,
			Icon:        s.Icon,
		}
	}
	return result
}
