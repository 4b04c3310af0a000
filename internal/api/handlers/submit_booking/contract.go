package submit_booking

import (
	"context"

	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
)

type CustomerDashboard interface {
	Submit(ctx context.Context, req *customerDashboard.SubmitRequest) (*customerDashboard.SubmitResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
