package customer_dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/calendar"
	"github.com/m04kA/SMC-WashDashboard/pkg/types"
)

// validatedSubmit проверенные данные для движка
type validatedSubmit struct {
	service domain.Service
	date    string
	time    types.TimeString
}

// validateSubmit проверяет заявку на границе: движок данные не перепроверяет
// date и slot уже подставлены из выбора в календаре, если в запросе их нет
func validateSubmit(req *SubmitRequest, date, slot string, now time.Time, windowDays int) (*validatedSubmit, error) {
	service, ok := domain.LookupService(strings.TrimSpace(req.ServiceType))
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownService, req.ServiceType)
	}

	// Проверяем, что дата указана и в формате YYYY-MM-DD
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}
	parsed, err := calendar.ParseDate(date)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidDate, date, err)
	}

	// Дата должна попадать в окно бронирования
	if !calendar.IsBookable(parsed, now, windowDays) {
		return nil, fmt.Errorf("%w: %s", ErrDateOutOfWindow, date)
	}

	// Слот должен быть из каталога
	if slot == "" {
		return nil, fmt.Errorf("%w: time is required", ErrInvalidTimeSlot)
	}
	if !domain.IsTimeSlot(slot) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimeSlot, slot)
	}

	return &validatedSubmit{
		service: service,
		date:    date,
		time:    types.TimeString(slot),
	}, nil
}
