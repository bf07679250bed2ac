package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	// MaxBorrowLimit is the number of books a user may hold at once.
	MaxBorrowLimit = 5
	// LoanPeriod is the time between borrowing and the due date.
	LoanPeriod = 14 * 24 * time.Hour
)

// Loan is an active borrow of a book by a user.
type Loan struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	BookID     string    `json:"bookId"`
	BorrowDate time.Time `json:"borrowDate"`
	DueDate    time.Time `json:"dueDate"`
}

// NewLoan creates a loan starting at borrowDate and due after period.
func NewLoan(userID, bookID string, borrowDate time.Time, period time.Duration) Loan {
	return Loan{
		ID:         uuid.New().String(),
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: borrowDate,
		DueDate:    borrowDate.Add(period),
	}
}

// IsOverdue reports whether now is past the due date.
func (l Loan) IsOverdue(now time.Time) bool {
	return now.After(l.DueDate)
}

// DaysOverdue returns the number of whole days past the due date, or 0.
func (l Loan) DaysOverdue(now time.Time) int {
	if !l.IsOverdue(now) {
		return 0
	}
	return int(now.Sub(l.DueDate) / (24 * time.Hour))
}

// BorrowedBook is a loan joined with the catalog fields shown to borrowers.
type BorrowedBook struct {
	LoanID      string    `json:"loanId"`
	BookID      string    `json:"bookId"`
	Title       string    `json:"title"`
	Authors     []string  `json:"authors"`
	ISBN        string    `json:"isbn"`
	Publisher   string    `json:"publisher,omitempty"`
	Genres      []string  `json:"genres"`
	CoverImage  string    `json:"coverImage,omitempty"`
	BorrowDate  time.Time `json:"borrowDate"`
	DueDate     time.Time `json:"dueDate"`
	IsOverdue   bool      `json:"isOverdue"`
	DaysOverdue int       `json:"daysOverdue"`
}

// NewBorrowedBook builds the borrower's view of a loan. book may be nil when
// the referenced title has been removed from the catalog.
func NewBorrowedBook(loan Loan, book *Book, now time.Time) BorrowedBook {
	view := BorrowedBook{
		LoanID:      loan.ID,
		BookID:      loan.BookID,
		BorrowDate:  loan.BorrowDate,
		DueDate:     loan.DueDate,
		IsOverdue:   loan.IsOverdue(now),
		DaysOverdue: loan.DaysOverdue(now),
	}
	if book != nil {
		view.Title = book.Title
		view.Authors = book.Authors
		view.ISBN = book.ISBN
		view.Publisher = book.Publisher
		view.Genres = book.Genres
		view.CoverImage = book.CoverImage
	}
	return view
}

// BorrowedBooks is the summary returned when listing a user's loans.
type BorrowedBooks struct {
	UserID             string         `json:"userId"`
	TotalBorrowedBooks int            `json:"totalBorrowedBooks"`
	BorrowedBooks      []BorrowedBook `json:"borrowedBooks"`
}

// ReturnReceipt confirms a completed return.
type ReturnReceipt struct {
	BookID     string    `json:"bookId"`
	ReturnDate time.Time `json:"returnDate"`
}

// OverdueLoan is a loan past its due date with the borrower's contact.
type OverdueLoan struct {
	Loan
	Title       string `json:"title"`
	Email       string `json:"email"`
	DaysOverdue int    `json:"daysOverdue"`
}
