package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketfoot/internal/apperrors"
	"ticketfoot/internal/models"
)

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	// nil repos: the status check must fire before any database access.
	svc := NewReservationService(nil, nil, nil, nil)

	err := svc.UpdateStatus(context.Background(), "some-id", "expédié")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestUpdateStatusAcceptsAllowedValues(t *testing.T) {
	for _, status := range []string{models.StatusConfirmed, models.StatusPending, models.StatusCancelled} {
		assert.True(t, models.ValidStatus(status), status)
	}
	assert.False(t, models.ValidStatus("confirmed"))
	assert.False(t, models.ValidStatus(""))
}

func TestCreateRejectsNonPositiveQuantity(t *testing.T) {
	svc := NewReservationService(nil, nil, nil, nil)
	user := &models.User{ID: "u1", Name: "Test", Email: "t@example.com"}

	for _, qty := range []int{0, -1, -10} {
		result, err := svc.Create(context.Background(), user, "m1", qty, "", "")
		require.Error(t, err)
		assert.Nil(t, result)
		assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
	}
}

func TestCreateRejectsUnknownSection(t *testing.T) {
	// Section lookup happens before any database access.
	svc := NewReservationService(nil, nil, nil, nil)
	user := &models.User{ID: "u1", Name: "Test", Email: "t@example.com"}

	result, err := svc.Create(context.Background(), user, "m1", 2, "pelouse", "")
	require.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}

func TestResolveSeats(t *testing.T) {
	// No section: the client's pre-formatted string passes through.
	seats, err := resolveSeats("", 2, "[A1 - A2]")
	require.NoError(t, err)
	assert.Equal(t, "[A1 - A2]", seats)

	// Named section: seats are generated and compressed server-side.
	seats, err = resolveSeats("tribune-nord", 1, "ignored")
	require.NoError(t, err)
	assert.Regexp(t, `^T\d+$`, seats)

	seats, err = resolveSeats("vip-central", 2, "")
	require.NoError(t, err)
	assert.Regexp(t, `^\[V\d+ - V\d+\]$`, seats)

	seats, err = resolveSeats("vip-central", 4, "")
	require.NoError(t, err)
	assert.Regexp(t, `^\[V\d+ \.\.\. V\d+\]$`, seats)

	_, err = resolveSeats("pelouse", 2, "")
	require.Error(t, err)
	assert.Equal(t, apperrors.KindValidation, apperrors.KindOf(err))
}
