package seed

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/pkg/types"
)

// Fixtures демо-данные обоих дашбордов
type Fixtures struct {
	Customer DashboardFixtures `yaml:"customer"`
	Provider DashboardFixtures `yaml:"provider"`
}

// DashboardFixtures демо-данные одного дашборда
type DashboardFixtures struct {
	Bookings      []BookingFixture      `yaml:"bookings"`
	Notifications []NotificationFixture `yaml:"notifications"`
}

// BookingFixture бронирование в YAML
type BookingFixture struct {
	ID           string `yaml:"id"`
	CustomerName string `yaml:"customerName"`
	Phone        string `yaml:"phone"`
	Email        string `yaml:"email"`
	ServiceType  string `yaml:"serviceType"`
	Status       string `yaml:"status"`
	Date         string `yaml:"date"`
	Time         string `yaml:"time"`
	Location     string `yaml:"location"`
	Price        int    `yaml:"price"`
}

// NotificationFixture запись ленты уведомлений провайдера
type NotificationFixture struct {
	Icon       string `yaml:"icon"`
	Message    string `yaml:"message"`
	MinutesAgo int    `yaml:"minutesAgo"`
}

// ToDomain валидирует запись и конвертирует ее в domain модель
// createdAt одинаков для всех записей набора
func (f BookingFixture) ToDomain(createdAt time.Time) (domain.Booking, error) {
	status := domain.BookingStatus(f.Status)
	if !status.IsValid() {
		return domain.Booking{}, fmt.Errorf("%w: %s - unknown status %q", ErrInvalidBooking, f.ID, f.Status)
	}

	service, ok := domain.LookupService(f.ServiceType)
	if !ok {
		return domain.Booking{}, fmt.Errorf("%w: %s - unknown service %q", ErrInvalidBooking, f.ID, f.ServiceType)
	}

	if _, err := time.Parse(domain.DateFormat, f.Date); err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %s - date %q: %v", ErrInvalidBooking, f.ID, f.Date, err)
	}

	slot, err := types.NewTimeStringFromString(f.Time)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("%w: %s - %v", ErrInvalidBooking, f.ID, err)
	}

	price := f.Price
	if price == 0 {
		price = service.Price
	}
	if price < 0 {
		return domain.Booking{}, fmt.Errorf("%w: %s - negative price %d", ErrInvalidBooking, f.ID, price)
	}

	return domain.Booking{
		ID:           f.ID,
		CustomerName: f.CustomerName,
		Phone:        f.Phone,
		Email:        f.Email,
		ServiceType:  service.Name,
		Date:         f.Date,
		Time:         slot,
		Location:     f.Location,
		Price:        price,
		Status:       status,
		CreatedAt:    createdAt,
	}, nil
}

// BookingsToDomain конвертирует набор записей
func BookingsToDomain(fixtures []BookingFixture, createdAt time.Time) ([]domain.Booking, error) {
	result := make([]domain.Booking, 0, len(fixtures))
	for _, f := range fixtures {
		b, err := f.ToDomain(createdAt)
		if err != nil {
			return nil, err
		}
		result = append(result, b)
	}
	return result, nil
}
