package transition_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-WashDashboard/internal/service/bookings/models"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	applied bool
	err     error
	calls   int
	action  providerDashboard.Action
}

func (d *fakeDashboard) Transition(ctx context.Context, bookingID string, action providerDashboard.Action) (*models.TransitionResponse, error) {
	d.calls++
	d.action = action
	if d.err != nil {
		return nil, d.err
	}
	status := "PENDING"
	if d.applied {
		status = "ACCEPTED"
	}
	return &models.TransitionResponse{
		Booking: models.BookingResponse{ID: bookingID, Status: status},
		Applied: d.applied,
	}, nil
}

func do(d *fakeDashboard, bookingID, action string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/provider/bookings/"+bookingID+"/"+action, nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID, "action": action})
	req = req.WithContext(middleware.WithDashboard(req.Context(), d))
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Applied(t *testing.T) {
	d := &fakeDashboard{applied: true}
	rec := do(d, "CW001", "Accept")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, providerDashboard.ActionAccept, d.action)

	var resp models.TransitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	assert.Equal(t, "ACCEPTED", resp.Booking.Status)
}

func TestHandle_NotApplied(t *testing.T) {
	rec := do(&fakeDashboard{}, "CW003", "start")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp models.TransitionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
}

func TestHandle_InvalidAction(t *testing.T) {
	d := &fakeDashboard{}
	rec := do(d, "CW001", "archive")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Zero(t, d.calls)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{providerDashboard.ErrBookingNotFound, http.StatusNotFound},
		{providerDashboard.ErrInvalidAction, http.StatusBadRequest},
		{providerDashboard.ErrClosed, http.StatusUnauthorized},
		{providerDashboard.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			rec := do(&fakeDashboard{err: tt.err}, "CW404", "complete")
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
