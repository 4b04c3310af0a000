package get_notifications

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
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	err error
}

func (d *fakeDashboard) Notifications(ctx context.Context) (*providerDashboard.NotificationsResponse, error) {
	if d.err != nil {
		return nil, d.err
	}
	return &providerDashboard.NotificationsResponse{
		Toasts:      []providerDashboard.ToastResponse{{ID: "t1", Message: "New booking from Mike Wilson", Type: "info"}},
		UnreadCount: 3,
	}, nil
}

func do(d interface{}) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/provider/notifications", nil)
	req = req.WithContext(middleware.WithDashboard(req.Context(), d))
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_OK(t *testing.T) {
	rec := do(&fakeDashboard{})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp providerDashboard.NotificationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Toasts, 1)
	assert.Equal(t, "t1", resp.Toasts[0].ID)
	assert.Equal(t, 3, resp.UnreadCount)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusUnauthorized, do(&fakeDashboard{err: providerDashboard.ErrClosed}).Code)
	assert.Equal(t, http.StatusInternalServerError, do(&fakeDashboard{err: errors.New("boom")}).Code)
	assert.Equal(t, http.StatusInternalServerError, do(nil).Code)
}
