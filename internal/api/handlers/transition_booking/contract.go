package transition_booking

import (
	"context"

	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
)

type ProviderDashboard interface {
	Transition(ctx context.Context, bookingID string, action providerDashboard.Action) (*models.TransitionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
