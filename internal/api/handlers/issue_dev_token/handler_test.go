package issue_dev_token

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fakeIssuer struct {
	user domain.User
	ttl  time.Duration
	err  error
}

func (i *fakeIssuer) Issue(user domain.User, ttl time.Duration) (string, error) {
	i.user = user
	i.ttl = ttl
	if i.err != nil {
		return "", i.err
	}
	return "signed-token", nil
}

func do(issuer *fakeIssuer, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/dev-token", strings.NewReader(body))
	rec := httptest.NewRecorder()
	NewHandler(issuer, time.Hour, logger.Nop()).Handle(rec, req)
	return rec
}

func TestHandle_Issued(t *testing.T) {
	issuer := &fakeIssuer{}
	rec := do(issuer, `{"name":"Mike Davis","email":" Mike@Email.com ","role":"service_provider"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, domain.User{Name: "Mike Davis", Email: "mike@email.com", Role: domain.RoleServiceProvider}, issuer.user)
	assert.Equal(t, time.Hour, issuer.ttl)

	var resp TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, do(&fakeIssuer{}, `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, do(&fakeIssuer{}, `{"name":"A","email":"a@b.c","role":"ADMIN"}`).Code)
	assert.Equal(t, http.StatusInternalServerError,
		do(&fakeIssuer{err: errors.New("sign")}, `{"name":"A","email":"a@b.c","role":"CUSTOMER"}`).Code)
}

func TestToDomainUser_Normalizes(t *testing.T) {
	req := IssueTokenRequest{Name: "  John  ", Email: " John@Email.COM ", Role: "service_provider"}

	user, err := req.ToDomainUser()
	require.NoError(t, err)
	assert.Equal(t, domain.User{Name: "John", Email: "john@email.com", Role: domain.RoleServiceProvider}, user)
}

func TestToDomainUser(t *testing.T) {
	tests := []struct {
		name string
		req  IssueTokenRequest
		err  error
	}{
		{"ok", IssueTokenRequest{Name: "John", Email: "john@email.com", Role: "customer"}, nil},
		{"no name", IssueTokenRequest{Name: " ", Email: "john@email.com", Role: "CUSTOMER"}, errMissingName},
		{"bad email", IssueTokenRequest{Name: "John", Email: "john", Role: "CUSTOMER"}, errInvalidEmail},
		{"bad role", IssueTokenRequest{Name: "John", Email: "john@email.com", Role: "OWNER"}, errInvalidRole},
		{"empty email", IssueTokenRequest{Name: "John", Email: "  ", Role: "CUSTOMER"}, errInvalidEmail},
		{"empty role", IssueTokenRequest{Name: "John", Email: "john@email.com"}, errInvalidRole},
		{"name reported first", IssueTokenRequest{Email: "john", Role: "OWNER"}, errMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.req.ToDomainUser()
			if tt.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}
