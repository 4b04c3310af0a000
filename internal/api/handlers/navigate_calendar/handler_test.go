package navigate_calendar

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
	customerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/customer_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	called string
	err    error
}

func (d *fakeDashboard) result(name string) (*customerDashboard.CalendarResponse, error) {
	d.called = name
	if d.err != nil {
		return nil, d.err
	}
	return &customerDashboard.CalendarResponse{Month: "January", Year: 2024, Applied: true}, nil
}

func (d *fakeDashboard) PreviousMonth(ctx context.Context) (*customerDashboard.CalendarResponse, error) {
	return d.result("previous")
}

func (d *fakeDashboard) NextMonth(ctx context.Context) (*customerDashboard.CalendarResponse, error) {
	return d.result("next")
}

func (d *fakeDashboard) Refresh(ctx context.Context) (*customerDashboard.CalendarResponse, error) {
	return d.result("refresh")
}

func (d *fakeDashboard) ResetSelection(ctx context.Context) (*customerDashboard.CalendarResponse, error) {
	return d.result("reset")
}

func do(d *fakeDashboard, direction string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/customer/calendar/"+direction, nil)
	req = mux.SetURLVars(req, map[string]string{"direction": direction})
	req = req.WithContext(middleware.WithDashboard(req.Context(), d))
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Directions(t *testing.T) {
	tests := map[string]string{
		DirectionPrevious: "previous",
		DirectionNext:     "next",
		DirectionToday:    "refresh",
		DirectionReset:    "reset",
	}

	for direction, want := range tests {
		t.Run(direction, func(t *testing.T) {
			d := &fakeDashboard{}
			rec := do(d, direction)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, want, d.called)

			var resp customerDashboard.CalendarResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, "January", resp.Month)
		})
	}
}

func TestHandle_InvalidDirection(t *testing.T) {
	d := &fakeDashboard{}
	rec := do(d, "sideways")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, d.called)
}

func TestHandle_Closed(t *testing.T) {
	rec := do(&fakeDashboard{err: customerDashboard.ErrClosed}, DirectionNext)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
