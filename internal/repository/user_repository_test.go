package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/testutil"
)

func TestPostgresUserRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	testDB := testutil.SetupTestDB(t)
	defer testDB.Cleanup(t)

	users := repository.NewPostgresUserRepository(testDB.Pool)
	books := repository.NewPostgresBookRepository(testDB.Pool)
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		testDB.TruncateTables(t)

		expires := time.Now().Add(24 * time.Hour).UTC().Truncate(time.Microsecond)
		u := testutil.NewUser("reader@example.com", domain.RoleMember)
		u.EmailVerified = false
		u.VerificationCode = "123456"
		u.VerificationExpiresAt = &expires
		require.NoError(t, users.Create(ctx, u))

		got, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "reader@example.com", got.Email)
		assert.Equal(t, domain.RoleMember, got.Role)
		assert.Equal(t, "123456", got.VerificationCode)
		require.NotNil(t, got.VerificationExpiresAt)
		assert.True(t, expires.Equal(*got.VerificationExpiresAt))
		assert.NotNil(t, got.BorrowedBooks)
		assert.Empty(t, got.BorrowedBooks)

		byEmail, err := users.GetByEmail(ctx, "reader@example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		assert.Equal(t, u.ID, byEmail.ID)
	})

	t.Run("duplicate email", func(t *testing.T) {
		testDB.TruncateTables(t)

		require.NoError(t, users.Create(ctx, testutil.NewUser("dup@example.com", domain.RoleMember)))
		err := users.Create(ctx, testutil.NewUser("dup@example.com", domain.RoleMember))
		assert.True(t, errors.Is(err, repository.ErrDuplicate), "got %v", err)
	})

	t.Run("update clears verification", func(t *testing.T) {
		testDB.TruncateTables(t)

		expires := time.Now().Add(time.Hour)
		u := testutil.NewUser("verify@example.com", domain.RoleMember)
		u.VerificationCode = "999999"
		u.VerificationExpiresAt = &expires
		require.NoError(t, users.Create(ctx, u))

		u.EmailVerified = true
		u.VerificationCode = ""
		u.VerificationExpiresAt = nil
		u.Role = domain.RoleLibrarian
		u.Phone = "+15550100"
		require.NoError(t, users.Update(ctx, u))

		got, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.True(t, got.EmailVerified)
		assert.Empty(t, got.VerificationCode)
		assert.Nil(t, got.VerificationExpiresAt)
		assert.Equal(t, domain.RoleLibrarian, got.Role)
		assert.Equal(t, "+15550100", got.Phone)
	})

	t.Run("loans are loaded in borrow order", func(t *testing.T) {
		testDB.TruncateTables(t)

		u := testutil.NewUser("loans@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, u))
		first := testutil.NewBook("First", 1)
		second := testutil.NewBook("Second", 1)
		require.NoError(t, books.Create(ctx, first))
		require.NoError(t, books.Create(ctx, second))

		start := time.Now().UTC().Truncate(time.Second)
		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, second.ID, start.Add(time.Minute), domain.LoanPeriod)))
		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, first.ID, start, domain.LoanPeriod)))

		got, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		require.Len(t, got.BorrowedBooks, 2)
		assert.Equal(t, first.ID, got.BorrowedBooks[0].BookID)
		assert.Equal(t, second.ID, got.BorrowedBooks[1].BookID)
		assert.True(t, got.BorrowedBooks[0].DueDate.Equal(start.Add(domain.LoanPeriod)))

		count, err := users.CountLoansForBook(ctx, first.ID)
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})

	t.Run("same book cannot be loaned twice to one user", func(t *testing.T) {
		testDB.TruncateTables(t)

		u := testutil.NewUser("twice@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, u))
		book := testutil.NewBook("Popular", 3)
		require.NoError(t, books.Create(ctx, book))

		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, book.ID, time.Now(), domain.LoanPeriod)))
		err := users.AddLoan(ctx, domain.NewLoan(u.ID, book.ID, time.Now(), domain.LoanPeriod))
		assert.True(t, errors.Is(err, repository.ErrDuplicate), "got %v", err)
	})

	t.Run("delete loan", func(t *testing.T) {
		testDB.TruncateTables(t)

		u := testutil.NewUser("return@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, u))
		book := testutil.NewBook("Returned", 1)
		require.NoError(t, books.Create(ctx, book))
		loan := domain.NewLoan(u.ID, book.ID, time.Now(), domain.LoanPeriod)
		require.NoError(t, users.AddLoan(ctx, loan))

		deleted, err := users.DeleteLoan(ctx, loan.ID)
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = users.DeleteLoan(ctx, loan.ID)
		require.NoError(t, err)
		assert.False(t, deleted)
	})

	t.Run("overdue loans and stats", func(t *testing.T) {
		testDB.TruncateTables(t)

		u := testutil.NewUser("late@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, u))
		late := testutil.NewBook("Late", 1)
		onTime := testutil.NewBook("On Time", 1)
		require.NoError(t, books.Create(ctx, late))
		require.NoError(t, books.Create(ctx, onTime))

		now := time.Now().UTC().Truncate(time.Microsecond)
		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, late.ID, now.Add(-17*24*time.Hour), domain.LoanPeriod)))
		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, onTime.ID, now, domain.LoanPeriod)))

		overdue, err := users.ListOverdueLoans(ctx, now)
		require.NoError(t, err)
		require.Len(t, overdue, 1)
		assert.Equal(t, "Late", overdue[0].Title)
		assert.Equal(t, "late@example.com", overdue[0].Email)
		assert.Equal(t, 3, overdue[0].DaysOverdue)

		active, overdueCount, err := users.LoanStats(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, 2, active)
		assert.Equal(t, 1, overdueCount)
	})

	t.Run("book with loans cannot be deleted", func(t *testing.T) {
		testDB.TruncateTables(t)

		u := testutil.NewUser("holder@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, u))
		book := testutil.NewBook("Held", 1)
		require.NoError(t, books.Create(ctx, book))
		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, book.ID, time.Now(), domain.LoanPeriod)))

		err := books.Delete(ctx, book.ID)
		assert.True(t, errors.Is(err, repository.ErrReferenced), "got %v", err)
	})

	t.Run("deleting a user removes their loans", func(t *testing.T) {
		testDB.TruncateTables(t)

		u := testutil.NewUser("leaving@example.com", domain.RoleMember)
		require.NoError(t, users.Create(ctx, u))
		book := testutil.NewBook("Kept", 1)
		require.NoError(t, books.Create(ctx, book))
		require.NoError(t, users.AddLoan(ctx, domain.NewLoan(u.ID, book.ID, time.Now(), domain.LoanPeriod)))

		require.NoError(t, users.Delete(ctx, u.ID))

		got, err := users.GetByID(ctx, u.ID)
		require.NoError(t, err)
		assert.Nil(t, got)
		count, err := users.CountLoansForBook(ctx, book.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})
}
