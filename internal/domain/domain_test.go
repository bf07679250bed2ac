package domain

import (
	"errors"
	"math"
	"testing"
	"time"
)

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role  string
		valid bool
	}{
		{"member", true},
		{"librarian", true},
		{"admin", true},
		{"moderator", false},
		{"", false},
		{"ADMIN", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			if got := IsValidRole(tt.role); got != tt.valid {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.valid)
			}
		})
	}
}

func TestIsValidReservationStatus(t *testing.T) {
	tests := []struct {
		status string
		valid  bool
	}{
		{"active", true},
		{"canceled", true},
		{"fulfilled", true},
		{"cancelled", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			if got := IsValidReservationStatus(tt.status); got != tt.valid {
				t.Errorf("IsValidReservationStatus(%q) = %v, want %v", tt.status, got, tt.valid)
			}
		})
	}
}

func TestNewLoan_DueDateIsFourteenDaysLater(t *testing.T) {
	borrowDate := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

	loan := NewLoan("user-1", "book-1", borrowDate, LoanPeriod)

	want := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)
	if !loan.DueDate.Equal(want) {
		t.Errorf("DueDate = %v, want %v", loan.DueDate, want)
	}
	if loan.ID == "" {
		t.Error("loan ID should be generated")
	}
}

func TestLoan_Overdue(t *testing.T) {
	due := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	loan := Loan{DueDate: due}

	tests := []struct {
		name        string
		now         time.Time
		overdue     bool
		daysOverdue int
	}{
		{"before due date", due.Add(-time.Hour), false, 0},
		{"exactly at due date", due, false, 0},
		{"one second late", due.Add(time.Second), true, 0},
		{"one day late", due.Add(24 * time.Hour), true, 1},
		{"almost three days late", due.Add(71 * time.Hour), true, 2},
		{"ten days late", due.Add(240 * time.Hour), true, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := loan.IsOverdue(tt.now); got != tt.overdue {
				t.Errorf("IsOverdue() = %v, want %v", got, tt.overdue)
			}
			if got := loan.DaysOverdue(tt.now); got != tt.daysOverdue {
				t.Errorf("DaysOverdue() = %v, want %v", got, tt.daysOverdue)
			}
		})
	}
}

func TestNewBorrowedBook_WithoutCatalogEntry(t *testing.T) {
	now := time.Now()
	loan := NewLoan("user-1", "book-1", now, LoanPeriod)

	view := NewBorrowedBook(loan, nil, now)

	if view.BookID != "book-1" {
		t.Errorf("BookID = %q, want book-1", view.BookID)
	}
	if view.Title != "" {
		t.Errorf("Title = %q, want empty", view.Title)
	}
	if view.IsOverdue {
		t.Error("fresh loan should not be overdue")
	}
}

func TestBook_ResizeCopies(t *testing.T) {
	tests := []struct {
		name          string
		total         int
		available     int
		newTotal      int
		wantAvailable int
		wantErr       bool
	}{
		{"grow", 3, 1, 5, 3, false},
		{"shrink within available", 5, 4, 2, 1, false},
		{"shrink to copies on loan", 5, 2, 3, 0, false},
		{"shrink below copies on loan", 5, 2, 2, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Book{TotalCopies: tt.total, AvailableCopies: tt.available}
			err := b.ResizeCopies(tt.newTotal)
			if tt.wantErr {
				if !errors.Is(err, ErrConflict) {
					t.Fatalf("ResizeCopies() error = %v, want conflict", err)
				}
				if b.TotalCopies != tt.total {
					t.Errorf("TotalCopies changed on failure: %d", b.TotalCopies)
				}
				return
			}
			if err != nil {
				t.Fatalf("ResizeCopies() error = %v", err)
			}
			if b.AvailableCopies != tt.wantAvailable {
				t.Errorf("AvailableCopies = %d, want %d", b.AvailableCopies, tt.wantAvailable)
			}
		})
	}
}

func TestUser_LoanFor(t *testing.T) {
	u := &User{BorrowedBooks: []Loan{{ID: "l1", BookID: "b1"}, {ID: "l2", BookID: "b2"}}}

	if loan := u.LoanFor("b2"); loan == nil || loan.ID != "l2" {
		t.Errorf("LoanFor(b2) = %v, want l2", loan)
	}
	if loan := u.LoanFor("b3"); loan != nil {
		t.Errorf("LoanFor(b3) = %v, want nil", loan)
	}
	if !u.CanBorrow(MaxBorrowLimit) {
		t.Error("user with 2 loans should be able to borrow")
	}
	if u.CanBorrow(2) {
		t.Error("user at limit should not be able to borrow")
	}
}

func TestUser_VerificationValid(t *testing.T) {
	now := time.Now()
	expires := now.Add(time.Hour)
	u := &User{VerificationCode: "ABC123", VerificationExpiresAt: &expires}

	if !u.VerificationValid("ABC123", now) {
		t.Error("matching unexpired code should be valid")
	}
	if u.VerificationValid("XYZ999", now) {
		t.Error("wrong code should be invalid")
	}
	if u.VerificationValid("ABC123", now.Add(2*time.Hour)) {
		t.Error("expired code should be invalid")
	}
	if (&User{}).VerificationValid("", now) {
		t.Error("empty code should never be valid")
	}
}

func TestNewPagination(t *testing.T) {
	tests := []struct {
		page, limit         int
		wantPage, wantLimit int
		wantOffset          int
	}{
		{1, 10, 1, 10, 0},
		{3, 20, 3, 20, 40},
		{0, 0, 1, 1, 0},
		{-5, -1, 1, 1, 0},
		{2, 1, 2, 1, 1},
		{1, 500, 1, MaxPageLimit, 0},
		{2, math.MaxInt, 2, MaxPageLimit, MaxPageLimit},
	}

	for _, tt := range tests {
		p := NewPagination(tt.page, tt.limit)
		if p.Page != tt.wantPage || p.Limit != tt.wantLimit {
			t.Errorf("NewPagination(%d, %d) = %+v", tt.page, tt.limit, p)
		}
		if p.Offset() != tt.wantOffset {
			t.Errorf("Offset() = %d, want %d", p.Offset(), tt.wantOffset)
		}
	}
}

func TestNewPagination_OffsetNeverOverflows(t *testing.T) {
	tests := []struct {
		name        string
		page, limit int
	}{
		{"page that wraps with limit 2", 4611686018427387905, 2},
		{"max page, max limit", math.MaxInt, math.MaxInt},
		{"max page, limit 1", math.MaxInt, 1},
		{"max page, limit 7", math.MaxInt, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPagination(tt.page, tt.limit)
			if p.Limit < 1 || p.Limit > MaxPageLimit {
				t.Errorf("Limit = %d, want within [1, %d]", p.Limit, MaxPageLimit)
			}
			if off := p.Offset(); off < 0 {
				t.Errorf("Offset() = %d, want non-negative", off)
			}
		})
	}
}

func TestNewPage_NilResultsBecomeEmpty(t *testing.T) {
	page := NewPage[Book](NewPagination(1, 10), 0, nil)
	if page.Results == nil {
		t.Error("Results should be an empty slice, not nil")
	}
}

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want error
	}{
		{"conflict", ErrNoAvailableCopies, ErrConflict},
		{"not found", ErrLoanNotFound, ErrNotFound},
		{"invalid request", ErrBookIDRequired, ErrInvalidRequest},
		{"unauthorized", ErrNotAuthenticated, ErrUnauthorized},
		{"forbidden", ErrAccessDenied, ErrForbidden},
		{"wrapped", errors.Join(errors.New("context"), ErrAlreadyReserved), ErrConflict},
		{"plain error", errors.New("connection reset"), ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := KindOf(tt.err); got != tt.want {
				t.Errorf("KindOf() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestError_MessageAndUnwrap(t *testing.T) {
	err := Errorf(ErrNotFound, "book %s not found", "abc")

	if err.Error() != "book abc not found" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrNotFound) {
		t.Error("errors.Is should match the kind")
	}
}

func TestBookInput_ApplyTo(t *testing.T) {
	in := BookInput{
		Title:   "  Dune ",
		Authors: []string{" Frank Herbert "},
		ISBN:    " 9780441172719",
		Genres:  []string{"sci-fi "},
	}

	var b Book
	in.ApplyTo(&b)

	if b.Title != "Dune" || b.ISBN != "9780441172719" {
		t.Errorf("fields not trimmed: %+v", b)
	}
	if len(b.Authors) != 1 || b.Authors[0] != "Frank Herbert" {
		t.Errorf("Authors = %v", b.Authors)
	}
	if b.Genres[0] != "sci-fi" {
		t.Errorf("Genres = %v", b.Genres)
	}
}

func TestProfileUpdate_ApplyTo(t *testing.T) {
	first := " Grace "
	phone := ""
	u := &User{FirstName: "Ada", LastName: "Lovelace", Phone: "123"}

	ProfileUpdate{FirstName: &first, Phone: &phone}.ApplyTo(u)

	if u.FirstName != "Grace" {
		t.Errorf("FirstName = %q", u.FirstName)
	}
	if u.LastName != "Lovelace" {
		t.Errorf("LastName should be unchanged, got %q", u.LastName)
	}
	if u.Phone != "" {
		t.Errorf("Phone should be cleared, got %q", u.Phone)
	}
}
