package get_invoice

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	"github.com/m04kA/SMC-WashDashboard/internal/service/reports"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	gotID string
	err   error
}

func (d *fakeDashboard) Invoice(ctx context.Context, bookingID string) (*reports.Document, error) {
	d.gotID = bookingID
	if d.err != nil {
		return nil, d.err
	}
	return reports.TextDocument("Invoice-"+bookingID+".txt", "CARWASH PRO - INVOICE"), nil
}

func do(d interface{}, bookingID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider/bookings/"+bookingID+"/invoice", nil)
	req = mux.SetURLVars(req, map[string]string{"bookingId": bookingID})
	req = req.WithContext(middleware.WithDashboard(req.Context(), d))
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	d := &fakeDashboard{}
	rec := do(d, "CW002")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "CW002", d.gotID)
	assert.Equal(t, reports.ContentTypeText, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "Invoice-CW002.txt")
	assert.Equal(t, "CARWASH PRO - INVOICE", rec.Body.String())
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", providerDashboard.ErrBookingNotFound, http.StatusNotFound},
		{"closed", providerDashboard.ErrClosed, http.StatusUnauthorized},
		{"internal", errors.New("render"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(&fakeDashboard{err: tt.err}, "CW404")
			assert.Equal(t, tt.status, rec.Code)
			assert.Empty(t, rec.Header().Get("Content-Disposition"))
		})
	}
}
