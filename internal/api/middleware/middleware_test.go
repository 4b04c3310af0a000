package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/service/session"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

var customer = domain.User{Name: "John Smith", Email: "john@email.com", Role: domain.RoleCustomer}

type fakeAuthenticator struct {
	tokens map[string]session.Principal
	err    error
}

func (a *fakeAuthenticator) Authenticate(ctx context.Context, rawToken string) (session.Principal, error) {
	if a.err != nil {
		return session.Principal{}, a.err
	}
	p, ok := a.tokens[rawToken]
	if !ok {
		return session.Principal{}, session.ErrUnauthenticated
	}
	return p, nil
}

func newAuthenticator() *fakeAuthenticator {
	return &fakeAuthenticator{tokens: map[string]session.Principal{
		"good": {TokenID: "jti-1", User: customer, ExpiresAt: time.Now().Add(time.Hour)},
	}}
}

func serve(h http.Handler, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func okHandler(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := GetPrincipal(r.Context())
		require.True(t, ok)
		_, _ = fmt.Fprint(w, p.User.Email)
	})
}

func TestAuth(t *testing.T) {
	auth := newAuthenticator()
	h := Auth(auth, logger.Nop())(okHandler(t))

	rec := serve(h, "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, customer.Email, rec.Body.String())

	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(h, "forged").Code)

	auth.err = session.ErrTokenRevoked
	rec = serve(h, "good")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgTokenRevoked)

	auth.err = fmt.Errorf("%w: redis down", session.ErrInternal)
	assert.Equal(t, http.StatusInternalServerError, serve(h, "good").Code)
}

func TestRequireRole(t *testing.T) {
	auth := newAuthenticator()

	h := Auth(auth, logger.Nop())(RequireRole(domain.RoleCustomer, logger.Nop())(okHandler(t)))
	assert.Equal(t, http.StatusOK, serve(h, "good").Code)

	h = Auth(auth, logger.Nop())(RequireRole(domain.RoleServiceProvider, logger.Nop())(okHandler(t)))
	assert.Equal(t, http.StatusForbidden, serve(h, "good").Code)

	h = RequireRole(domain.RoleCustomer, logger.Nop())(okHandler(t))
	assert.Equal(t, http.StatusUnauthorized, serve(h, "").Code)
}

type greeter interface {
	Greeting() string
}

type fakeDashboard struct {
	owner string
}

func (d *fakeDashboard) Greeting() string {
	return "hello " + d.owner
}

func TestDashboard(t *testing.T) {
	opened := 0
	open := func(ctx context.Context, owner domain.User) (interface{}, error) {
		opened++
		if owner.Email == "" {
			return nil, errors.New("no owner")
		}
		return &fakeDashboard{owner: owner.Name}, nil
	}

	final := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		d, ok := GetDashboard[greeter](r.Context())
		require.True(t, ok)
		_, _ = fmt.Fprint(w, d.Greeting())
	})

	h := Auth(newAuthenticator(), logger.Nop())(Dashboard(open, logger.Nop())(final))
	rec := serve(h, "good")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello John Smith", rec.Body.String())
	assert.Equal(t, 1, opened)

	// без Auth пользователя в контексте нет
	rec = serve(Dashboard(open, logger.Nop())(final), "good")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	auth := &fakeAuthenticator{tokens: map[string]session.Principal{"anon": {TokenID: "jti-2"}}}
	rec = serve(Auth(auth, logger.Nop())(Dashboard(open, logger.Nop())(final)), "anon")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestGetDashboard_WrongType(t *testing.T) {
	ctx := WithDashboard(context.Background(), "not a dashboard")

	_, ok := GetDashboard[greeter](ctx)
	assert.False(t, ok)

	_, ok = GetDashboard[greeter](context.Background())
	assert.False(t, ok)
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.NotEmpty(t, seen)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

type observed struct {
	method, route, status string
}

type fakeHTTPMetrics struct {
	calls []observed
}

func (m *fakeHTTPMetrics) ObserveHTTPRequest(method, route, status string, seconds float64) {
	m.calls = append(m.calls, observed{method: method, route: route, status: status})
}

func TestMetricsMiddleware(t *testing.T) {
	m := &fakeHTTPMetrics{}

	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bookings/CW001", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, observed{method: http.MethodGet, route: "/bookings/{bookingId}", status: "404"}, m.calls[0])
}
