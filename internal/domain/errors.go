package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the services unwraps to exactly one of
// these, which the HTTP layer maps to a status code.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrUnauthorized   = errors.New("unauthorized")
	ErrForbidden      = errors.New("forbidden")
	ErrNotFound       = errors.New("not found")
	ErrConflict       = errors.New("conflict")
	ErrInternal       = errors.New("internal error")
)

// Error is a domain error carrying a human-readable message and its kind.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Kind
}

// NewError creates a domain error of the given kind.
func NewError(kind error, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Errorf creates a domain error of the given kind with a formatted message.
func Errorf(kind error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Lending errors.
var (
	ErrBookIDRequired       = NewError(ErrInvalidRequest, "bookId is required")
	ErrBookNotFound         = NewError(ErrNotFound, "book not found")
	ErrUserNotFound         = NewError(ErrNotFound, "user not found")
	ErrNoAvailableCopies    = NewError(ErrConflict, "no available copies")
	ErrBorrowLimitReached   = NewError(ErrConflict, "borrow limit reached")
	ErrAlreadyBorrowed      = NewError(ErrConflict, "book already borrowed by this user")
	ErrLoanNotFound         = NewError(ErrNotFound, "borrow record not found")
	ErrBookAvailable        = NewError(ErrConflict, "book is currently available, no need to reserve")
	ErrAlreadyReserved      = NewError(ErrConflict, "already reserved")
	ErrReservationNotFound  = NewError(ErrNotFound, "reservation not found")
	ErrReservationNotActive = NewError(ErrConflict, "reservation is not active")
	ErrNoQueuedReservations = NewError(ErrNotFound, "no active reservations for this book")
)

// Access errors.
var (
	ErrNotAuthenticated = NewError(ErrUnauthorized, "user not authenticated")
	ErrAccessDenied     = NewError(ErrForbidden, "access denied")
)

// Catalog and membership errors.
var (
	ErrEmptySearchQuery        = NewError(ErrInvalidRequest, "search query is required")
	ErrNoBooksFound            = NewError(ErrNotFound, "no books found")
	ErrDuplicateISBN           = NewError(ErrConflict, "a book with this ISBN already exists")
	ErrDuplicateEmail          = NewError(ErrConflict, "email already exists")
	ErrBookHasLoans            = NewError(ErrConflict, "book has copies on loan")
	ErrUserHasLoans            = NewError(ErrConflict, "user has books on loan")
	ErrCopiesOnLoan            = NewError(ErrConflict, "total copies cannot be less than copies on loan")
	ErrInvalidVerificationCode = NewError(ErrInvalidRequest, "invalid or expired verification code")
	ErrAlreadyVerified         = NewError(ErrInvalidRequest, "email already verified")
	ErrInvalidExportFormat     = NewError(ErrInvalidRequest, "format must be csv or ndjson")
)

var kinds = []error{
	ErrInvalidRequest,
	ErrUnauthorized,
	ErrForbidden,
	ErrNotFound,
	ErrConflict,
	ErrInternal,
}

// KindOf returns the kind an error belongs to. Errors that do not carry a
// kind are reported as ErrInternal.
func KindOf(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return ErrInternal
}
