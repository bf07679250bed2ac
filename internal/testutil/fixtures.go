package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

var isbnSeq atomic.Int64

// NewBook returns a valid book with a unique ISBN and all copies available.
func NewBook(title string, copies int) *domain.Book {
	now := time.Now().UTC()
	return &domain.Book{
		ID:              uuid.New().String(),
		Title:           title,
		Authors:         []string{"Test Author"},
		ISBN:            fmt.Sprintf("978%010d", isbnSeq.Add(1)),
		Genres:          []string{"fiction"},
		TotalCopies:     copies,
		AvailableCopies: copies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// NewUser returns a verified user with the given email and role.
func NewUser(email string, role domain.Role) *domain.User {
	now := time.Now().UTC()
	return &domain.User{
		ID:            uuid.New().String(),
		FirstName:     "Test",
		LastName:      "User",
		Email:         email,
		Role:          role,
		EmailVerified: true,
		BorrowedBooks: []domain.Loan{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
