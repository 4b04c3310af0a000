package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/internal/infra/storage/revocation"
	"github.com/m04kA/SMC-WashDashboard/internal/integrations/authservice"
	"github.com/m04kA/SMC-WashDashboard/pkg/logger"
)

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time {
	return f.now
}

type fakeDirectory struct {
	user *domain.User
	err  error
}

func (f *fakeDirectory) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return f.user, f.err
}

var customer = domain.User{Name: "Alex", Email: "alex@mail.com", Role: domain.RoleCustomer}

func setup(t *testing.T, dir UserDirectory) (*Service, *authservice.TokenManager) {
	t.Helper()
	clock := &fixedTime{now: time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)}
	tokens := authservice.NewTokenManager("secret", "carwash-auth", clock)
	return NewService(tokens, revocation.NewMemoryStore(clock), dir, logger.Nop()), tokens
}

func TestService_AuthenticateAndCurrentUser(t *testing.T) {
	svc, tokens := setup(t, nil)

	raw, err := tokens.Issue(customer, time.Hour)
	require.NoError(t, err)

	p, err := svc.Authenticate(context.Background(), raw)
	require.NoError(t, err)

	user, err := svc.CurrentUser(WithPrincipal(context.Background(), p))
	require.NoError(t, err)
	assert.Equal(t, customer, user)
}

func TestService_CurrentUserWithoutSession(t *testing.T) {
	svc, _ := setup(t, nil)

	_, err := svc.CurrentUser(context.Background())
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.ErrorIs(t, svc.Logout(context.Background()), ErrUnauthenticated)
}

func TestService_LogoutRevokesToken(t *testing.T) {
	svc, tokens := setup(t, nil)

	raw, err := tokens.Issue(customer, time.Hour)
	require.NoError(t, err)
	p, err := svc.Authenticate(context.Background(), raw)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(WithPrincipal(context.Background(), p)))

	_, err = svc.Authenticate(context.Background(), raw)
	assert.ErrorIs(t, err, ErrTokenRevoked)
	assert.True(t, IsUnauthenticated(err))
}

func TestService_AuthenticateInvalidToken(t *testing.T) {
	svc, _ := setup(t, nil)

	_, err := svc.Authenticate(context.Background(), "bogus")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestService_DirectoryEnrichesName(t *testing.T) {
	svc, _ := setup(t, &fakeDirectory{user: &domain.User{Name: "Alex Brown", Email: customer.Email, Role: domain.RoleServiceProvider}})

	user, err := svc.CurrentUser(WithPrincipal(context.Background(), Principal{TokenID: "j", User: customer}))
	require.NoError(t, err)
	assert.Equal(t, "Alex Brown", user.Name)
	// роль всегда берется из токена
	assert.Equal(t, domain.RoleCustomer, user.Role)
}

func TestService_DirectoryFailureFallsBackToToken(t *testing.T) {
	svc, _ := setup(t, &fakeDirectory{err: errors.New("db down")})

	user, err := svc.CurrentUser(WithPrincipal(context.Background(), Principal{TokenID: "j", User: customer}))
	require.NoError(t, err)
	assert.Equal(t, customer, user)
}
