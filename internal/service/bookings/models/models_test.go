package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WashDashboard/internal/domain"
	"github.com/m04kA/SMC-WashDashboard/pkg/ptr"
)

func TestToDomainBookingStatus(t *testing.T) {
	s, err := ToDomainBookingStatus("pending")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusPending, s)

	_, err = ToDomainBookingStatus("confirmed")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestFilterRequest_ToDomainFilter(t *testing.T) {
	f, err := (&FilterRequest{Status: ptr.Ptr("ACTIVE"), Search: "john"}).ToDomainFilter()
	require.NoError(t, err)
	require.NotNil(t, f.Status)
	assert.Equal(t, domain.StatusActive, *f.Status)
	assert.Equal(t, "john", f.SearchTerm)

	f, err = (&FilterRequest{Status: ptr.Ptr("")}).ToDomainFilter()
	require.NoError(t, err)
	assert.True(t, f.IsEmpty())

	_, err = (&FilterRequest{Status: ptr.Ptr("unknown")}).ToDomainFilter()
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
