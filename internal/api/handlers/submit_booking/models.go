package submit_booking

import (
	"strings"

	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

// SubmitBookingRequest HTTP request model
// Пустые date и time берутся из выбора в календаре
type SubmitBookingRequest struct {
	ServiceType string `json:"serviceType"`
	Date        string `json:"date,omitempty"` // "2024-01-15"
	Time        string `json:"time,omitempty"` // "10:00"
	Address     string `json:"address"`
	Phone       string `json:"phone"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubmitBookingRequest) ToUseCaseRequest() *customerDashboard.SubmitRequest {
	return &customerDashboard.SubmitRequest{
		ServiceType: strings.TrimSpace(r.ServiceType),
		Date:        strings.TrimSpace(r.Date),
		Time:        strings.TrimSpace(r.Time),
		Address:     strings.TrimSpace(r.Address),
		Phone:       strings.TrimSpace(r.Phone),
	}
}
