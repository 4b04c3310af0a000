package get_bookings

import (
	"net/url"

	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	"github.com/m04kA/SMC-WashDashboard/pkg/ptr"
)

// ToFilterRequest формирует фильтр из query параметров status и search
func ToFilterRequest(query url.Values) *models.FilterRequest {
	req := &models.FilterRequest{
		Search: query.Get("search"),
	}

	if status := query.Get("status"); status != "" {
		req.Status = ptr.Ptr(status)
	}

	return req
}
