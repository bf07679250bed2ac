package service

import (
	"context"
	"io"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/notification"
)

// Notifier queues a notification for asynchronous delivery.
type Notifier interface {
	Notify(ctx context.Context, msg notification.Message)
}

// LendingServiceInterface defines the interface for lending operations.
// Used for dependency injection and mocking in tests.
type LendingServiceInterface interface {
	// Borrow allocates one copy of a book to the caller.
	Borrow(ctx context.Context, identity domain.Identity, bookID string) (*domain.Loan, error)
	// Return gives back the caller's copy of a book.
	Return(ctx context.Context, identity domain.Identity, bookID string) (*domain.ReturnReceipt, error)
	// Reserve queues the caller for a book with no available copies.
	Reserve(ctx context.Context, identity domain.Identity, bookID string) (*domain.Reservation, error)
	// ListBorrowed lists a user's current loans.
	ListBorrowed(ctx context.Context, identity domain.Identity, userID string) (*domain.BorrowedBooks, error)
	// CancelReservation cancels an active reservation.
	CancelReservation(ctx context.Context, identity domain.Identity, reservationID string) (*domain.Reservation, error)
	// FulfillNextReservation lends a copy to the oldest active reservation.
	FulfillNextReservation(ctx context.Context, identity domain.Identity, bookID string) (*domain.Fulfillment, error)
	// ListReservations lists reservations matching a filter.
	ListReservations(ctx context.Context, identity domain.Identity, filter domain.ReservationFilter, page domain.Pagination) (*domain.Page[domain.Reservation], error)
	// ExpireReservations cancels active reservations past their expiry.
	ExpireReservations(ctx context.Context) (int64, error)
}

// CatalogServiceInterface defines the interface for catalog operations.
// Used for dependency injection and mocking in tests.
type CatalogServiceInterface interface {
	// Search finds books matching a free-text query.
	Search(ctx context.Context, query string, page domain.Pagination) (*domain.Page[domain.Book], error)
	// List pages through the catalog.
	List(ctx context.Context, page domain.Pagination) (*domain.Page[domain.Book], error)
	// Get retrieves a book by ID.
	Get(ctx context.Context, id string) (*domain.Book, error)
	// Create adds a book.
	Create(ctx context.Context, identity domain.Identity, in domain.BookInput) (*domain.Book, error)
	// Update replaces a book's fields.
	Update(ctx context.Context, identity domain.Identity, id string, in domain.BookInput) (*domain.Book, error)
	// Delete removes a book with no copies on loan.
	Delete(ctx context.Context, identity domain.Identity, id string) error
}

// MembershipServiceInterface defines the interface for account operations.
// Used for dependency injection and mocking in tests.
type MembershipServiceInterface interface {
	// Register creates an unverified member account.
	Register(ctx context.Context, in domain.Registration) (*domain.User, error)
	// VerifyEmail confirms an account with its one-time code.
	VerifyEmail(ctx context.Context, email, code string) (*domain.User, error)
	// ResendVerification issues a fresh verification code.
	ResendVerification(ctx context.Context, email string) error
	// GetProfile returns the caller's account.
	GetProfile(ctx context.Context, identity domain.Identity) (*domain.User, error)
	// UpdateProfile edits the caller's account.
	UpdateProfile(ctx context.Context, identity domain.Identity, update domain.ProfileUpdate) (*domain.User, error)
	// ChangeRole sets another user's role.
	ChangeRole(ctx context.Context, identity domain.Identity, userID string, role domain.Role) (*domain.User, error)
	// DeleteUser removes an account with no books on loan.
	DeleteUser(ctx context.Context, identity domain.Identity, userID string) error
}

// ExportServiceInterface defines the interface for catalog exports.
// Used for dependency injection and mocking in tests.
type ExportServiceInterface interface {
	// ExportCatalog streams every book to w and returns the number written.
	ExportCatalog(ctx context.Context, identity domain.Identity, format ExportFormat, w io.Writer) (int, error)
}
