package service_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/notification"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/service"
	"github.com/kelvinmfon2025/book-api/internal/testutil"
)

type recordingNotifier struct {
	mu       sync.Mutex
	messages []notification.Message
}

func (n *recordingNotifier) Notify(ctx context.Context, msg notification.Message) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, msg)
}

func (n *recordingNotifier) kinds() []notification.Kind {
	n.mu.Lock()
	defer n.mu.Unlock()
	kinds := make([]notification.Kind, 0, len(n.messages))
	for _, m := range n.messages {
		kinds = append(kinds, m.Kind)
	}
	return kinds
}

func TestLendingService_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.Cleanup(t)

	books := repository.NewPostgresBookRepository(testDB.Pool)
	users := repository.NewPostgresUserRepository(testDB.Pool)
	reservations := repository.NewPostgresReservationRepository(testDB.Pool)
	tx := repository.NewPostgresTransactor(testDB.Pool)
	ctx := context.Background()

	newService := func(notifier service.Notifier) *service.LendingService {
		return service.NewLendingService(books, users, reservations, tx, notifier, service.DefaultLendingRules())
	}

	createUsers := func(t *testing.T, n int) []*domain.User {
		created := make([]*domain.User, 0, n)
		for i := 0; i < n; i++ {
			u := testutil.NewUser(fmt.Sprintf("reader%d@example.com", i), domain.RoleMember)
			require.NoError(t, users.Create(ctx, u))
			created = append(created, u)
		}
		return created
	}

	t.Run("concurrent borrows of the last copy", func(t *testing.T) {
		testDB.TruncateTables(t)
		svc := newService(&recordingNotifier{})

		book := testutil.NewBook("Only Copy", 1)
		require.NoError(t, books.Create(ctx, book))
		readers := createUsers(t, 10)

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)
		for _, u := range readers {
			wg.Add(1)
			go func(u *domain.User) {
				defer wg.Done()
				_, err := svc.Borrow(ctx, domain.Identity{UserID: u.ID, Role: u.Role}, book.ID)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case assert.ErrorIs(t, err, domain.ErrNoAvailableCopies):
					conflicts++
				}
			}(u)
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, len(readers)-1, conflicts)

		got, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, got.AvailableCopies)

		loans, err := users.CountLoansForBook(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, loans)
	})

	t.Run("concurrent borrows of one book by one user", func(t *testing.T) {
		testDB.TruncateTables(t)
		svc := newService(&recordingNotifier{})

		book := testutil.NewBook("Many Copies", 5)
		require.NoError(t, books.Create(ctx, book))
		reader := createUsers(t, 1)[0]
		identity := domain.Identity{UserID: reader.ID, Role: reader.Role}

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
		)
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := svc.Borrow(ctx, identity, book.ID)
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					successes++
					return
				}
				assert.ErrorIs(t, err, domain.ErrAlreadyBorrowed)
			}()
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		got, err := books.GetByID(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 4, got.AvailableCopies)
	})

	t.Run("concurrent borrows of different books at the limit", func(t *testing.T) {
		testDB.TruncateTables(t)
		svc := newService(&recordingNotifier{})

		reader := createUsers(t, 1)[0]
		identity := domain.Identity{UserID: reader.ID, Role: reader.Role}

		limit := service.DefaultLendingRules().MaxBorrowLimit
		for i := 0; i < limit-1; i++ {
			book := testutil.NewBook(fmt.Sprintf("Held %d", i), 1)
			require.NoError(t, books.Create(ctx, book))
			_, err := svc.Borrow(ctx, identity, book.ID)
			require.NoError(t, err)
		}

		contended := []*domain.Book{testutil.NewBook("Wanted A", 1), testutil.NewBook("Wanted B", 1)}
		for _, b := range contended {
			require.NoError(t, books.Create(ctx, b))
		}

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			refused   int
		)
		for _, b := range contended {
			wg.Add(1)
			go func(bookID string) {
				defer wg.Done()
				_, err := svc.Borrow(ctx, identity, bookID)
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case assert.ErrorIs(t, err, domain.ErrBorrowLimitReached):
					refused++
				}
			}(b.ID)
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, refused)

		u, err := users.GetByID(ctx, reader.ID)
		require.NoError(t, err)
		assert.Len(t, u.BorrowedBooks, limit)

		available := 0
		for _, b := range contended {
			got, err := books.GetByID(ctx, b.ID)
			require.NoError(t, err)
			available += got.AvailableCopies
		}
		assert.Equal(t, 1, available, "the refused borrow must not consume a copy")
	})

	t.Run("borrow, reserve, return and fulfil", func(t *testing.T) {
		testDB.TruncateTables(t)
		notifier := &recordingNotifier{}
		svc := newService(notifier)

		book := testutil.NewBook("Queued", 1)
		require.NoError(t, books.Create(ctx, book))
		readers := createUsers(t, 2)
		holder := domain.Identity{UserID: readers[0].ID, Role: domain.RoleMember}
		waiter := domain.Identity{UserID: readers[1].ID, Role: domain.RoleMember}
		desk := domain.Identity{UserID: readers[0].ID, Role: domain.RoleLibrarian}

		_, err := svc.Borrow(ctx, holder, book.ID)
		require.NoError(t, err)

		_, err = svc.Reserve(ctx, holder, book.ID)
		require.NoError(t, err, "holder may queue for another copy")

		res, err := svc.Reserve(ctx, waiter, book.ID)
		require.NoError(t, err)

		_, err = svc.Reserve(ctx, waiter, book.ID)
		assert.ErrorIs(t, err, domain.ErrAlreadyReserved)

		_, err = svc.Borrow(ctx, waiter, book.ID)
		assert.ErrorIs(t, err, domain.ErrNoAvailableCopies)

		_, err = svc.Return(ctx, holder, book.ID)
		require.NoError(t, err)

		_, err = svc.Return(ctx, holder, book.ID)
		assert.ErrorIs(t, err, domain.ErrLoanNotFound)

		_, err = svc.Reserve(ctx, waiter, book.ID)
		assert.ErrorIs(t, err, domain.ErrBookAvailable)

		_, err = svc.CancelReservation(ctx, holder, res.ID)
		assert.ErrorIs(t, err, domain.ErrAccessDenied)

		// The holder queued first, so the holder gets the copy back.
		fulfilled, err := svc.FulfillNextReservation(ctx, desk, book.ID)
		require.NoError(t, err)
		assert.Equal(t, readers[0].ID, fulfilled.Loan.UserID)

		borrowed, err := svc.ListBorrowed(ctx, holder, readers[0].ID)
		require.NoError(t, err)
		assert.Equal(t, 1, borrowed.TotalBorrowedBooks)
		assert.Equal(t, "Queued", borrowed.BorrowedBooks[0].Title)

		assert.Contains(t, notifier.kinds(), notification.KindReservationAvailable)
		assert.Contains(t, notifier.kinds(), notification.KindReservationFulfilled)
	})
}
