package dismiss_toast

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-WashDashboard/internal/api/middleware"
	providerDashboard "github.com/m04kA/SMC-WashDashboard/internal/usecase/provider_dashboard"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeDashboard struct {
	toasts map[string]bool
	err    error
}

func (d *fakeDashboard) DismissToast(ctx context.Context, toastID string) (bool, error) {
	if d.err != nil {
		return false, d.err
	}
	ok := d.toasts[toastID]
	delete(d.toasts, toastID)
	return ok, nil
}

func do(d *fakeDashboard, toastID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/provider/notifications/"+toastID, nil)
	req = mux.SetURLVars(req, map[string]string{"toastId": toastID})
	req = req.WithContext(middleware.WithDashboard(req.Context(), d))
	rec := httptest.NewRecorder()
	NewHandler(logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Idempotent(t *testing.T) {
	d := &fakeDashboard{toasts: map[string]bool{"t-1": true}}

	assert.Equal(t, http.StatusNoContent, do(d, "t-1").Code)
	assert.Equal(t, http.StatusNoContent, do(d, "t-1").Code)
	assert.Empty(t, d.toasts)
}

func TestHandle_Closed(t *testing.T) {
	rec := do(&fakeDashboard{err: providerDashboard.ErrClosed}, "t-1")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
