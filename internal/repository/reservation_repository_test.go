package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/testutil"
)

func newReservation(bookID, userID string, createdAt time.Time) *domain.Reservation {
	return &domain.Reservation{
		ID:        uuid.New().String(),
		BookID:    bookID,
		UserID:    userID,
		Status:    domain.ReservationActive,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func TestPostgresReservationRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.Cleanup(t)

	repo := repository.NewPostgresReservationRepository(testDB.Pool)
	users := repository.NewPostgresUserRepository(testDB.Pool)
	books := repository.NewPostgresBookRepository(testDB.Pool)
	tx := repository.NewPostgresTransactor(testDB.Pool)
	ctx := context.Background()

	seed := func(t *testing.T) (*domain.Book, *domain.User, *domain.User) {
		t.Helper()
		testDB.TruncateTables(t)
		book := testutil.NewBook("Queued", 1)
		require.NoError(t, books.Create(ctx, book))
		alice := testutil.NewUser("alice@example.com", domain.RoleMember)
		bob := testutil.NewUser("bob@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, alice))
		require.NoError(t, users.Create(ctx, bob))
		return book, alice, bob
	}

	t.Run("only one active reservation per book and user", func(t *testing.T) {
		book, alice, _ := seed(t)

		first := newReservation(book.ID, alice.ID, time.Now())
		require.NoError(t, repo.Create(ctx, first))

		err := repo.Create(ctx, newReservation(book.ID, alice.ID, time.Now()))
		assert.True(t, errors.Is(err, repository.ErrDuplicate), "got %v", err)

		ok, err := repo.UpdateStatus(ctx, first.ID, domain.ReservationActive, domain.ReservationCanceled, time.Now())
		require.NoError(t, err)
		require.True(t, ok)

		require.NoError(t, repo.Create(ctx, newReservation(book.ID, alice.ID, time.Now())))
	})

	t.Run("find active", func(t *testing.T) {
		book, alice, bob := seed(t)

		res := newReservation(book.ID, alice.ID, time.Now())
		require.NoError(t, repo.Create(ctx, res))

		got, err := repo.FindActive(ctx, book.ID, alice.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, res.ID, got.ID)

		got, err = repo.FindActive(ctx, book.ID, bob.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("next active is first in first out", func(t *testing.T) {
		book, alice, bob := seed(t)

		now := time.Now().UTC()
		require.NoError(t, repo.Create(ctx, newReservation(book.ID, bob.ID, now.Add(time.Minute))))
		require.NoError(t, repo.Create(ctx, newReservation(book.ID, alice.ID, now)))

		var next *domain.Reservation
		err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			var err error
			next, err = repo.NextActive(ctx, book.ID)
			return err
		})
		require.NoError(t, err)
		require.NotNil(t, next)
		assert.Equal(t, alice.ID, next.UserID)
	})

	t.Run("status only changes from the expected state", func(t *testing.T) {
		book, alice, _ := seed(t)

		res := newReservation(book.ID, alice.ID, time.Now())
		require.NoError(t, repo.Create(ctx, res))

		ok, err := repo.UpdateStatus(ctx, res.ID, domain.ReservationActive, domain.ReservationFulfilled, time.Now())
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = repo.UpdateStatus(ctx, res.ID, domain.ReservationActive, domain.ReservationCanceled, time.Now())
		require.NoError(t, err)
		assert.False(t, ok)

		got, err := repo.GetByID(ctx, res.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationFulfilled, got.Status)
	})

	t.Run("expire before", func(t *testing.T) {
		book, alice, bob := seed(t)

		now := time.Now().UTC()
		past := now.Add(-time.Hour)
		future := now.Add(time.Hour)

		expired := newReservation(book.ID, alice.ID, now.Add(-2*time.Hour))
		expired.ExpiresAt = &past
		fresh := newReservation(book.ID, bob.ID, now)
		fresh.ExpiresAt = &future
		require.NoError(t, repo.Create(ctx, expired))
		require.NoError(t, repo.Create(ctx, fresh))

		n, err := repo.ExpireBefore(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(1), n)

		got, err := repo.GetByID(ctx, expired.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationCanceled, got.Status)

		got, err = repo.GetByID(ctx, fresh.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationActive, got.Status)
	})

	t.Run("delete for book removes every status", func(t *testing.T) {
		book, alice, bob := seed(t)

		active := newReservation(book.ID, alice.ID, time.Now())
		canceled := newReservation(book.ID, bob.ID, time.Now())
		require.NoError(t, repo.Create(ctx, active))
		require.NoError(t, repo.Create(ctx, canceled))
		_, err := repo.UpdateStatus(ctx, canceled.ID, domain.ReservationActive, domain.ReservationCanceled, time.Now())
		require.NoError(t, err)

		n, err := repo.DeleteForBook(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		got, err := repo.GetByID(ctx, active.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("list with filters", func(t *testing.T) {
		book, alice, bob := seed(t)

		now := time.Now().UTC()
		a := newReservation(book.ID, alice.ID, now)
		b := newReservation(book.ID, bob.ID, now.Add(time.Second))
		require.NoError(t, repo.Create(ctx, a))
		require.NoError(t, repo.Create(ctx, b))
		_, err := repo.UpdateStatus(ctx, b.ID, domain.ReservationActive, domain.ReservationCanceled, now)
		require.NoError(t, err)

		all, total, err := repo.List(ctx, domain.ReservationFilter{BookID: book.ID}, domain.NewPagination(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 2, total)
		require.Len(t, all, 2)
		assert.Equal(t, a.ID, all[0].ID)

		active, total, err := repo.List(ctx, domain.ReservationFilter{Status: domain.ReservationActive}, domain.NewPagination(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, active, 1)
		assert.Equal(t, alice.ID, active[0].UserID)

		mine, total, err := repo.List(ctx, domain.ReservationFilter{UserID: bob.ID}, domain.NewPagination(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		assert.Equal(t, b.ID, mine[0].ID)

		none, total, err := repo.List(ctx, domain.ReservationFilter{BookID: "bogus"}, domain.NewPagination(1, 10))
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.Empty(t, none)
	})
}

func TestPostgresTransactor(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.Cleanup(t)

	books := repository.NewPostgresBookRepository(testDB.Pool)
	tx := repository.NewPostgresTransactor(testDB.Pool)
	ctx := context.Background()

	t.Run("rolls back on error", func(t *testing.T) {
		testDB.TruncateTables(t)

		book := testutil.NewBook("Rolled Back", 1)
		boom := errors.New("boom")
		err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			if err := books.Create(ctx, book); err != nil {
				return err
			}
			return boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("commits on success and nests", func(t *testing.T) {
		testDB.TruncateTables(t)

		book := testutil.NewBook("Committed", 1)
		err := tx.WithinTransaction(ctx, func(ctx context.Context) error {
			return tx.WithinTransaction(ctx, func(ctx context.Context) error {
				return books.Create(ctx, book)
			})
		})
		require.NoError(t, err)

		got, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})
}
