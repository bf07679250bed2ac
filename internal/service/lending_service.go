package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kelvinmfon2025/book-api/internal/authz"
	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/metrics"
	"github.com/kelvinmfon2025/book-api/internal/notification"
	"github.com/kelvinmfon2025/book-api/internal/repository"
)

// LendingRules are the tunable limits of the lending engine.
type LendingRules struct {
	LoanPeriod     time.Duration
	MaxBorrowLimit int
	// ReservationTTL is how long a reservation stays active. Zero disables
	// expiry.
	ReservationTTL time.Duration
}

// DefaultLendingRules returns the standard 14 day loan, five book limit and
// one week reservation expiry.
func DefaultLendingRules() LendingRules {
	return LendingRules{
		LoanPeriod:     domain.LoanPeriod,
		MaxBorrowLimit: domain.MaxBorrowLimit,
		ReservationTTL: 7 * 24 * time.Hour,
	}
}

// LendingService enforces the borrowing and reservation rules. Every
// mutating operation runs in one transaction that locks the book row and
// then the user row.
type LendingService struct {
	books        repository.BookRepository
	users        repository.UserRepository
	reservations repository.ReservationRepository
	tx           repository.Transactor
	notifier     Notifier
	rules        LendingRules
	now          func() time.Time
}

// NewLendingService creates a new LendingService.
func NewLendingService(
	books repository.BookRepository,
	users repository.UserRepository,
	reservations repository.ReservationRepository,
	tx repository.Transactor,
	notifier Notifier,
	rules LendingRules,
) *LendingService {
	return &LendingService{
		books:        books,
		users:        users,
		reservations: reservations,
		tx:           tx,
		notifier:     notifier,
		rules:        rules,
		now:          time.Now,
	}
}

// SetClock replaces the time source.
func (s *LendingService) SetClock(now func() time.Time) {
	s.now = now
}

func authorizeCaller(identity domain.Identity, action authz.Action) error {
	if !identity.Authenticated() {
		return domain.ErrNotAuthenticated
	}
	return authz.Authorize(identity.Role, action)
}

func observe(operation string, timer *metrics.Timer, err error) {
	metrics.ObserveLendingOperation(operation, err, timer.Seconds())
}

// Borrow allocates one copy of a book to the caller with a due date one loan
// period from now. An active reservation the caller holds for the book is
// marked fulfilled.
func (s *LendingService) Borrow(ctx context.Context, identity domain.Identity, bookID string) (loan *domain.Loan, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("borrow", timer, err) }()

	if err := authorizeCaller(identity, authz.ActionBorrow); err != nil {
		return nil, err
	}
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, domain.ErrBookIDRequired
	}

	var created domain.Loan
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		book, err := s.books.LockByID(ctx, bookID)
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}
		if book == nil {
			return domain.ErrBookNotFound
		}

		user, err := s.users.LockByID(ctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		if book.AvailableCopies <= 0 {
			return domain.ErrNoAvailableCopies
		}
		if !user.CanBorrow(s.rules.MaxBorrowLimit) {
			return domain.ErrBorrowLimitReached
		}
		if user.LoanFor(book.ID) != nil {
			return domain.ErrAlreadyBorrowed
		}

		now := s.now()
		created = domain.NewLoan(user.ID, book.ID, now, s.rules.LoanPeriod)

		ok, err := s.books.DecrementAvailable(ctx, book.ID)
		if err != nil {
			return fmt.Errorf("decrement copies: %w", err)
		}
		if !ok {
			return domain.ErrNoAvailableCopies
		}

		if err := s.users.AddLoan(ctx, created); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domain.ErrAlreadyBorrowed
			}
			return fmt.Errorf("add loan: %w", err)
		}

		res, err := s.reservations.FindActive(ctx, book.ID, user.ID)
		if err != nil {
			return fmt.Errorf("find reservation: %w", err)
		}
		if res != nil {
			if _, err := s.reservations.UpdateStatus(ctx, res.ID, domain.ReservationActive, domain.ReservationFulfilled, now); err != nil {
				return fmt.Errorf("fulfil reservation: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithUserID(created.UserID).InfoContext(ctx, "Book borrowed",
		slog.String("book_id", created.BookID),
		slog.Time("due_date", created.DueDate),
	)

	return &created, nil
}

// Return gives back the caller's copy of a book and puts it on the shelf.
// The oldest reserver, if any, is told a copy is available.
func (s *LendingService) Return(ctx context.Context, identity domain.Identity, bookID string) (receipt *domain.ReturnReceipt, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("return", timer, err) }()

	if err := authorizeCaller(identity, authz.ActionReturn); err != nil {
		return nil, err
	}
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, domain.ErrBookIDRequired
	}

	var (
		returnDate time.Time
		book       *domain.Book
		next       *domain.Reservation
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.books.LockByID(ctx, bookID)
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}

		user, err := s.users.LockByID(ctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		loan := user.LoanFor(bookID)
		if loan == nil {
			return domain.ErrLoanNotFound
		}
		if book == nil {
			return domain.ErrBookNotFound
		}

		deleted, err := s.users.DeleteLoan(ctx, loan.ID)
		if err != nil {
			return fmt.Errorf("delete loan: %w", err)
		}
		if !deleted {
			return domain.ErrLoanNotFound
		}

		if err := s.books.IncrementAvailable(ctx, book.ID); err != nil {
			return fmt.Errorf("increment copies: %w", err)
		}

		next, err = s.reservations.NextActive(ctx, book.ID)
		if err != nil {
			return fmt.Errorf("next reservation: %w", err)
		}

		returnDate = s.now()
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithUserID(identity.UserID).InfoContext(ctx, "Book returned",
		slog.String("book_id", bookID),
	)

	if next != nil {
		s.notifyReservation(ctx, notification.KindReservationAvailable, next, book)
	}

	return &domain.ReturnReceipt{BookID: bookID, ReturnDate: returnDate}, nil
}

// Reserve queues the caller for a book that has no available copies.
func (s *LendingService) Reserve(ctx context.Context, identity domain.Identity, bookID string) (reservation *domain.Reservation, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("reserve", timer, err) }()

	if err := authorizeCaller(identity, authz.ActionReserve); err != nil {
		return nil, err
	}
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, domain.ErrBookIDRequired
	}

	var (
		res  *domain.Reservation
		book *domain.Book
		user *domain.User
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.books.LockByID(ctx, bookID)
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}
		if book == nil {
			return domain.ErrBookNotFound
		}
		if book.AvailableCopies > 0 {
			return domain.ErrBookAvailable
		}

		existing, err := s.reservations.FindActive(ctx, book.ID, identity.UserID)
		if err != nil {
			return fmt.Errorf("find reservation: %w", err)
		}
		if existing != nil {
			return domain.ErrAlreadyReserved
		}

		user, err = s.users.GetByID(ctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("get user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		now := s.now()
		res = &domain.Reservation{
			ID:        uuid.New().String(),
			BookID:    book.ID,
			UserID:    user.ID,
			Status:    domain.ReservationActive,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if s.rules.ReservationTTL > 0 {
			expires := now.Add(s.rules.ReservationTTL)
			res.ExpiresAt = &expires
		}

		if err := s.reservations.Create(ctx, res); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domain.ErrAlreadyReserved
			}
			return fmt.Errorf("create reservation: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithUserID(res.UserID).InfoContext(ctx, "Book reserved",
		slog.String("book_id", res.BookID),
		slog.String("reservation_id", res.ID),
	)
	s.notifier.Notify(ctx, notification.ReservationMessage(notification.KindReservationCreated, user, book, res))

	return res, nil
}

// ListBorrowed lists a user's loans with catalog details and overdue status.
// Members may only list their own loans.
func (s *LendingService) ListBorrowed(ctx context.Context, identity domain.Identity, userID string) (*domain.BorrowedBooks, error) {
	userID = strings.TrimSpace(userID)
	if err := authz.AuthorizeSelfOr(identity, userID, authz.ActionViewAnyLoans); err != nil {
		return nil, err
	}
	if identity.UserID == userID {
		if err := authz.Authorize(identity.Role, authz.ActionViewOwnLoans); err != nil {
			return nil, err
		}
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}

	ids := make([]string, 0, len(user.BorrowedBooks))
	for _, l := range user.BorrowedBooks {
		ids = append(ids, l.BookID)
	}
	books, err := s.books.GetByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("get books: %w", err)
	}

	now := s.now()
	views := make([]domain.BorrowedBook, 0, len(user.BorrowedBooks))
	for _, l := range user.BorrowedBooks {
		views = append(views, domain.NewBorrowedBook(l, books[l.BookID], now))
	}

	return &domain.BorrowedBooks{
		UserID:             user.ID,
		TotalBorrowedBooks: len(views),
		BorrowedBooks:      views,
	}, nil
}

// CancelReservation cancels an active reservation held by the caller, or any
// reservation when the caller may cancel others'.
func (s *LendingService) CancelReservation(ctx context.Context, identity domain.Identity, reservationID string) (reservation *domain.Reservation, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("cancel_reservation", timer, err) }()

	if err := authorizeCaller(identity, authz.ActionCancelReservation); err != nil {
		return nil, err
	}

	var res *domain.Reservation
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		res, err = s.reservations.LockByID(ctx, strings.TrimSpace(reservationID))
		if err != nil {
			return fmt.Errorf("lock reservation: %w", err)
		}
		if res == nil {
			return domain.ErrReservationNotFound
		}
		if err := authz.AuthorizeSelfOr(identity, res.UserID, authz.ActionCancelAnyReservation); err != nil {
			return err
		}
		if !res.IsActive() {
			return domain.ErrReservationNotActive
		}

		now := s.now()
		ok, err := s.reservations.UpdateStatus(ctx, res.ID, domain.ReservationActive, domain.ReservationCanceled, now)
		if err != nil {
			return fmt.Errorf("cancel reservation: %w", err)
		}
		if !ok {
			return domain.ErrReservationNotActive
		}
		res.Status = domain.ReservationCanceled
		res.UpdatedAt = now
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Reservation canceled",
		slog.String("reservation_id", res.ID),
		slog.String("canceled_by", identity.UserID),
	)
	if res.UserID != identity.UserID {
		s.notifyReservation(ctx, notification.KindReservationCanceled, res, nil)
	}

	return res, nil
}

// FulfillNextReservation lends an available copy to the oldest active
// reservation for a book.
func (s *LendingService) FulfillNextReservation(ctx context.Context, identity domain.Identity, bookID string) (fulfillment *domain.Fulfillment, err error) {
	timer := metrics.NewTimer()
	defer func() { observe("fulfill_reservation", timer, err) }()

	if err := authorizeCaller(identity, authz.ActionFulfillReservation); err != nil {
		return nil, err
	}
	bookID = strings.TrimSpace(bookID)
	if bookID == "" {
		return nil, domain.ErrBookIDRequired
	}

	var (
		result domain.Fulfillment
		book   *domain.Book
		user   *domain.User
	)
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.books.LockByID(ctx, bookID)
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}
		if book == nil {
			return domain.ErrBookNotFound
		}
		if book.AvailableCopies <= 0 {
			return domain.ErrNoAvailableCopies
		}

		res, err := s.reservations.NextActive(ctx, book.ID)
		if err != nil {
			return fmt.Errorf("next reservation: %w", err)
		}
		if res == nil {
			return domain.ErrNoQueuedReservations
		}

		user, err = s.users.LockByID(ctx, res.UserID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if !user.CanBorrow(s.rules.MaxBorrowLimit) {
			return domain.ErrBorrowLimitReached
		}
		if user.LoanFor(book.ID) != nil {
			return domain.ErrAlreadyBorrowed
		}

		now := s.now()
		loan := domain.NewLoan(user.ID, book.ID, now, s.rules.LoanPeriod)

		ok, err := s.books.DecrementAvailable(ctx, book.ID)
		if err != nil {
			return fmt.Errorf("decrement copies: %w", err)
		}
		if !ok {
			return domain.ErrNoAvailableCopies
		}
		if err := s.users.AddLoan(ctx, loan); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domain.ErrAlreadyBorrowed
			}
			return fmt.Errorf("add loan: %w", err)
		}
		if _, err := s.reservations.UpdateStatus(ctx, res.ID, domain.ReservationActive, domain.ReservationFulfilled, now); err != nil {
			return fmt.Errorf("fulfil reservation: %w", err)
		}

		res.Status = domain.ReservationFulfilled
		res.UpdatedAt = now
		result = domain.Fulfillment{Reservation: res, Loan: loan}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.WithUserID(result.Loan.UserID).InfoContext(ctx, "Reservation fulfilled",
		slog.String("reservation_id", result.Reservation.ID),
		slog.String("book_id", result.Loan.BookID),
	)
	s.notifier.Notify(ctx, notification.ReservationMessage(notification.KindReservationFulfilled, user, book, result.Reservation))

	return &result, nil
}

// ListReservations lists reservations. Callers without the
// view_reservations permission only see their own.
func (s *LendingService) ListReservations(ctx context.Context, identity domain.Identity, filter domain.ReservationFilter, page domain.Pagination) (*domain.Page[domain.Reservation], error) {
	if !identity.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}
	if !authz.Allowed(identity.Role, authz.ActionViewReservations) {
		if filter.UserID != "" && filter.UserID != identity.UserID {
			return nil, domain.ErrAccessDenied
		}
		filter.UserID = identity.UserID
	}
	if filter.Status != "" && !domain.IsValidReservationStatus(string(filter.Status)) {
		return nil, domain.Errorf(domain.ErrInvalidRequest, "invalid reservation status %q", filter.Status)
	}

	reservations, total, err := s.reservations.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("list reservations: %w", err)
	}

	result := domain.NewPage(page, total, reservations)
	return &result, nil
}

// ExpireReservations cancels every active reservation whose expiry has
// passed and returns how many were canceled.
func (s *LendingService) ExpireReservations(ctx context.Context) (int64, error) {
	n, err := s.reservations.ExpireBefore(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("expire reservations: %w", err)
	}

	metrics.ObserveReservationsExpired(n)
	if n > 0 {
		logger.InfoContext(ctx, "Expired reservations canceled", slog.Int64("count", n))
	}
	return n, nil
}

// notifyReservation looks up the reserver and queues a message. Lookup
// failures are logged and the notification is skipped.
func (s *LendingService) notifyReservation(ctx context.Context, kind notification.Kind, res *domain.Reservation, book *domain.Book) {
	user, err := s.users.GetByID(ctx, res.UserID)
	if err != nil || user == nil {
		logger.WarnContext(ctx, "Skipping reservation notification",
			slog.String("reservation_id", res.ID),
			slog.Any("error", err),
		)
		return
	}
	if book == nil {
		book, _ = s.books.GetByID(ctx, res.BookID)
	}
	s.notifier.Notify(ctx, notification.ReservationMessage(kind, user, book, res))
}
