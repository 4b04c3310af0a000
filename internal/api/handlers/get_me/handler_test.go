package get_me

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeSession struct {
	user domain.User
	err  error
}

func (s *fakeSession) CurrentUser(ctx context.Context) (domain.User, error) {
	return s.user, s.err
}

func do(s *fakeSession) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
	rec := httptest.NewRecorder()
	NewHandler(s, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	rec := do(&fakeSession{user: domain.User{Name: "John Smith", Email: "john@email.com", Role: domain.RoleCustomer}})
	require.Equal(t, http.StatusOK, rec.Code)

	var resp UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, UserResponse{Name: "John Smith", Email: "john@email.com", Role: "CUSTOMER"}, resp)

	assert.Equal(t, http.StatusUnauthorized, do(&fakeSession{err: session.ErrUnauthenticated}).Code)
	assert.Equal(t, http.StatusInternalServerError, do(&fakeSession{err: errors.New("directory down")}).Code)
}
