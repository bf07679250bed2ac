package repository

import (
	"context"
	"time"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

// Lookups return (nil, nil) when the record does not exist. Lock variants
// take a row lock and must be called inside WithinTransaction.

// BookRepository defines methods for catalog data access.
type BookRepository interface {
	Create(ctx context.Context, book *domain.Book) error
	GetByID(ctx context.Context, id string) (*domain.Book, error)
	GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Book, error)
	LockByID(ctx context.Context, id string) (*domain.Book, error)
	Update(ctx context.Context, book *domain.Book) error
	Delete(ctx context.Context, id string) error
	DecrementAvailable(ctx context.Context, id string) (bool, error)
	IncrementAvailable(ctx context.Context, id string) error
	Search(ctx context.Context, query string, page domain.Pagination) ([]domain.Book, int, error)
	List(ctx context.Context, page domain.Pagination) ([]domain.Book, int, error)
}

// UserRepository defines methods for membership data access, including the
// loans each user owns.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	LockByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error

	AddLoan(ctx context.Context, loan domain.Loan) error
	DeleteLoan(ctx context.Context, loanID string) (bool, error)
	CountLoansForBook(ctx context.Context, bookID string) (int, error)
	ListOverdueLoans(ctx context.Context, now time.Time) ([]domain.OverdueLoan, error)
	LoanStats(ctx context.Context, now time.Time) (active int, overdue int, err error)
}

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) error
	GetByID(ctx context.Context, id string) (*domain.Reservation, error)
	LockByID(ctx context.Context, id string) (*domain.Reservation, error)
	FindActive(ctx context.Context, bookID, userID string) (*domain.Reservation, error)
	NextActive(ctx context.Context, bookID string) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus, now time.Time) (bool, error)
	DeleteForBook(ctx context.Context, bookID string) (int64, error)
	ExpireBefore(ctx context.Context, now time.Time) (int64, error)
	List(ctx context.Context, filter domain.ReservationFilter, page domain.Pagination) ([]domain.Reservation, int, error)
}

// Transactor runs a function inside a single database transaction.
// Repositories called with the context passed to fn join that transaction.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
