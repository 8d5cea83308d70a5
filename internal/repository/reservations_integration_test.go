package repository

import (
	"context"
	"errors"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketfoot/internal/config"
	"ticketfoot/internal/database"
	"ticketfoot/internal/models"
)

// These tests need a running PostgreSQL (configured via the usual DB_* env
// vars) and are skipped unless RUN_DB_TESTS is set.
func testRepos(t *testing.T) *Repositories {
	t.Helper()
	if os.Getenv("RUN_DB_TESTS") == "" {
		t.Skip("set RUN_DB_TESTS=1 to run database integration tests")
	}

	db, err := database.Connect(config.Load().Database)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	return NewRepositories(db)
}

func seedUser(t *testing.T, repos *Repositories) *models.User {
	t.Helper()
	user := &models.User{
		ID:          uuid.New().String(),
		Email:       uuid.New().String() + "@test.local",
		Name:        "Test Fan",
		Phone:       "+212 6 00 00 00 00",
		MemberSince: time.Now().UTC(),
	}
	require.NoError(t, repos.Users.Create(context.Background(), user))
	return user
}

func seedMatch(t *testing.T, repos *Repositories, available, total int, price float64) *models.Match {
	t.Helper()
	match := &models.Match{
		ID:               uuid.New().String(),
		HomeTeam:         "Raja Casablanca",
		AwayTeam:         "FAR Rabat",
		HomeTeamLogo:     "/logos/raja.png",
		AwayTeamLogo:     "/logos/far.png",
		Stadium:          "Stade Mohammed V",
		City:             "Casablanca",
		Date:             time.Now().UTC().AddDate(0, 0, 3),
		Time:             "19:00",
		Price:            price,
		AvailableTickets: available,
		TotalTickets:     total,
		Category:         "Botola Pro",
	}
	require.NoError(t, repos.Matches.Create(context.Background(), match))
	return match
}

// Concurrent bookings must never oversell: with 10 tickets and 20 concurrent
// single-ticket requests, exactly 10 commit, the rest fail on capacity, and
// the counter lands on zero.
func TestCreateConfirmedConcurrentBookings(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	user := seedUser(t, repos)
	match := seedMatch(t, repos, 10, 50, 150)

	const attempts = 20
	results := make([]error, attempts)

	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			res := &models.Reservation{
				ID:             uuid.New().String(),
				UserID:         user.ID,
				MatchID:        match.ID,
				TicketQuantity: 1,
			}
			results[i] = repos.Reservations.CreateConfirmed(ctx, res)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range results {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrInsufficientTickets)
		}
	}
	assert.Equal(t, 10, succeeded)

	after, err := repos.Matches.GetByID(ctx, match.ID)
	require.NoError(t, err)
	require.NotNil(t, after)
	assert.Equal(t, 0, after.AvailableTickets)

	items, err := repos.Reservations.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Len(t, items, succeeded)
	for _, item := range items {
		assert.Equal(t, models.StatusConfirmed, item.Status)
		assert.Equal(t, match.Price, item.TotalPrice)
	}
}

// A capacity rejection must be all-or-nothing: no reservation row and no
// counter movement.
func TestCreateConfirmedCapacityRejectionWritesNothing(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	user := seedUser(t, repos)
	match := seedMatch(t, repos, 2, 10, 100)

	res := &models.Reservation{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		MatchID:        match.ID,
		TicketQuantity: 5,
	}
	err := repos.Reservations.CreateConfirmed(ctx, res)
	require.True(t, errors.Is(err, ErrInsufficientTickets))

	after, err := repos.Matches.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, after.AvailableTickets)

	items, err := repos.Reservations.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestCreateConfirmedUnknownMatch(t *testing.T) {
	repos := testRepos(t)

	user := seedUser(t, repos)
	res := &models.Reservation{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		MatchID:        uuid.New().String(),
		TicketQuantity: 1,
	}

	err := repos.Reservations.CreateConfirmed(context.Background(), res)
	assert.ErrorIs(t, err, ErrMatchNotFound)
}

// The price snapshot multiplies out at booking time and survives later match
// price changes.
func TestCreateConfirmedSnapshotsPrice(t *testing.T) {
	repos := testRepos(t)
	ctx := context.Background()

	user := seedUser(t, repos)
	match := seedMatch(t, repos, 30, 30, 250)

	res := &models.Reservation{
		ID:             uuid.New().String(),
		UserID:         user.ID,
		MatchID:        match.ID,
		TicketQuantity: 3,
	}
	require.NoError(t, repos.Reservations.CreateConfirmed(ctx, res))
	assert.Equal(t, 750.0, res.TotalPrice)
	assert.Equal(t, models.StatusConfirmed, res.Status)

	after, err := repos.Matches.GetByID(ctx, match.ID)
	require.NoError(t, err)
	assert.Equal(t, 27, after.AvailableTickets)
}
