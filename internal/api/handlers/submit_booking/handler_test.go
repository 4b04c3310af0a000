package submit_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/api/handlers"
	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	got *customerDashboard.SubmitRequest
	err error
}

func (d *fakeDashboard) Submit(ctx context.Context, req *customerDashboard.SubmitRequest) (*customerDashboard.SubmitResponse, error) {
	d.got = req
	if d.err != nil {
		return nil, d.err
	}
	return &customerDashboard.SubmitResponse{
		Booking:       models.BookingResponse{ID: "CW003", ServiceType: req.ServiceType, Status: "PENDING"},
		LastBookingID: "CW003",
	}, nil
}

func do(dashboard interface{}, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customer/bookings", strings.NewReader(body))
	if dashboard != nil {
		req = req.WithContext(middleware.WithDashboard(req.Context(), dashboard))
	}
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	d := &fakeDashboard{}
	rec := do(d, `{"serviceType":" Premium Wash ","address":"1 Main St","phone":"555"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "Premium Wash", d.got.ServiceType)
	assert.Empty(t, d.got.Date)

	var resp customerDashboard.SubmitResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CW003", resp.LastBookingID)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		err    error
		status int
	}{
		{"bad json", `{`, nil, http.StatusBadRequest},
		{"unknown field", `{"price":5}`, nil, http.StatusBadRequest},
		{"unknown service", `{}`, customerDashboard.ErrUnknownService, http.StatusBadRequest},
		{"invalid date", `{}`, customerDashboard.ErrInvalidDate, http.StatusBadRequest},
		{"out of window", `{}`, customerDashboard.ErrDateOutOfWindow, http.StatusBadRequest},
		{"invalid slot", `{}`, customerDashboard.ErrInvalidTimeSlot, http.StatusBadRequest},
		{"session", `{}`, fmt.Errorf("%w: no user", customerDashboard.ErrSession), http.StatusUnauthorized},
		{"closed", `{}`, customerDashboard.ErrClosed, http.StatusUnauthorized},
		{"internal", `{}`, customerDashboard.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(&fakeDashboard{err: tt.err}, tt.body)
			assert.Equal(t, tt.status, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Message)
		})
	}
}

func TestHandle_MissingDashboard(t *testing.T) {
	rec := do(nil, `{}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
