package models

import (
	"errors"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// FilterRequest параметры фильтрации списка бронирований
type FilterRequest struct {
	Status *string `json:"status,omitempty"`
	Search string  `json:"search,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
// Статус принимается в любом регистре
func (r *FilterRequest) ToDomainFilter() (domain.BookingFilter, error) {
	filter := domain.BookingFilter{SearchTerm: r.Search}

	if r.Status != nil && *r.Status != "" {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID           string    `json:"id"`
	CustomerName string    `json:"customerName"`
	Phone        string    `json:"phone"`
	Email        string    `json:"email"`
	ServiceType  string    `json:"serviceType"`
	Date         string    `json:"date"` // "2024-01-15"
	Time         string    `json:"time"` // "10:00"
	Location     string    `json:"location"`
	Price        int       `json:"price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"createdAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
	Total    int               `json:"total"`
}

// StatsResponse агрегированная статистика
type StatsResponse struct {
	PendingBookings   int `json:"pendingBookings"`
	CurrentBookings   int `json:"currentBookings"`
	CompletedBookings int `json:"completedBookings"`
	CancelledBookings int `json:"cancelledBookings"`
	TotalEarnings     int `json:"totalEarnings"`
}

// TransitionResponse результат перехода статуса
type TransitionResponse struct {
	Booking BookingResponse `json:"booking"`
	Applied bool            `json:"applied"`
	Stats   StatsResponse   `json:"stats"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b domain.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		CustomerName: b.CustomerName,
		Phone:        b.Phone,
		Email:        b.Email,
		ServiceType:  b.ServiceType,
		Date:         b.Date,
		Time:         b.Time.String(),
		Location:     b.Location,
		Price:        b.Price,
		Status:       string(b.Status),
		CreatedAt:    b.CreatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, len(bookings)),
		Total:    len(bookings),
	}

	for i, b := range bookings {
		resp.Bookings[i] = FromDomainBooking(b)
	}

	return resp
}

// FromDomainStats конвертирует статистику в DTO
func FromDomainStats(s domain.AggregateStats) StatsResponse {
	return StatsResponse{
		PendingBookings:   s.PendingBookings,
		CurrentBookings:   s.CurrentBookings,
		CompletedBookings: s.CompletedBookings,
		CancelledBookings: s.CancelledBookings,
		TotalEarnings:     s.TotalEarnings,
	}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s := domain.BookingStatus(strings.ToUpper(strings.TrimSpace(status)))
	if !s.IsValid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}
