package simulate_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	calls int
	err   error
}

func (d *fakeDashboard) SimulateBooking(ctx context.Context) (*models.BookingResponse, error) {
	d.calls++
	if d.err != nil {
		return nil, d.err
	}
	return &models.BookingResponse{ID: "CW004", CustomerName: "Mike Wilson", Status: "PENDING"}, nil
}

func do(d interface{}) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/provider/bookings/simulate", nil)
	req = req.WithContext(middleware.WithDashboard(req.Context(), d))
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	d := &fakeDashboard{}
	rec := do(d)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, 1, d.calls)

	var resp models.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "CW004", resp.ID)
	assert.Equal(t, "PENDING", resp.Status)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, do(&fakeDashboard{err: providerDashboard.ErrClosed}).Code)
	assert.Equal(t, http.StatusInternalServerError, do(&fakeDashboard{err: errors.New("boom")}).Code)
	assert.Equal(t, http.StatusInternalServerError, do(nil).Code)
}
