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
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/validator"
)

// CatalogService handles book search and catalog maintenance.
type CatalogService struct {
	books        repository.BookRepository
	users        repository.UserRepository
	reservations repository.ReservationRepository
	tx           repository.Transactor
	validator    *validator.Validator
	now          func() time.Time
}

// NewCatalogService creates a new CatalogService.
func NewCatalogService(
	books repository.BookRepository,
	users repository.UserRepository,
	reservations repository.ReservationRepository,
	tx repository.Transactor,
	v *validator.Validator,
) *CatalogService {
	return &CatalogService{
		books:        books,
		users:        users,
		reservations: reservations,
		tx:           tx,
		validator:    v,
		now:          time.Now,
	}
}

// Search matches the query case-insensitively against title, authors,
// genres and ISBN. An empty result is reported as domain.ErrNoBooksFound.
func (s *CatalogService) Search(ctx context.Context, query string, page domain.Pagination) (*domain.Page[domain.Book], error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, domain.ErrEmptySearchQuery
	}

	books, total, err := s.books.Search(ctx, query, page)
	if err != nil {
		return nil, fmt.Errorf("search books: %w", err)
	}
	if total == 0 {
		return nil, domain.ErrNoBooksFound
	}

	result := domain.NewPage(page, total, books)
	return &result, nil
}

// List pages through the whole catalog ordered by title.
func (s *CatalogService) List(ctx context.Context, page domain.Pagination) (*domain.Page[domain.Book], error) {
	books, total, err := s.books.List(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}

	result := domain.NewPage(page, total, books)
	return &result, nil
}

// Get retrieves a book by ID.
func (s *CatalogService) Get(ctx context.Context, id string) (*domain.Book, error) {
	book, err := s.books.GetByID(ctx, strings.TrimSpace(id))
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	if book == nil {
		return nil, domain.ErrBookNotFound
	}
	return book, nil
}

// Create adds a title to the catalog. Available copies default to the
// total.
func (s *CatalogService) Create(ctx context.Context, identity domain.Identity, in domain.BookInput) (*domain.Book, error) {
	if err := authorizeCaller(identity, authz.ActionManageCatalog); err != nil {
		return nil, err
	}

	now := s.now()
	book := &domain.Book{
		ID:              uuid.New().String(),
		TotalCopies:     in.TotalCopies,
		AvailableCopies: in.TotalCopies,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	in.ApplyTo(book)
	if in.AvailableCopies != nil {
		book.AvailableCopies = *in.AvailableCopies
	}

	if err := s.validator.ValidateBook(book); err != nil {
		return nil, validator.AsDomainError(err)
	}

	if err := s.books.Create(ctx, book); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrDuplicateISBN
		}
		return nil, fmt.Errorf("create book: %w", err)
	}

	logger.InfoContext(ctx, "Book created",
		slog.String("book_id", book.ID),
		slog.String("isbn", book.ISBN),
		slog.String("created_by", identity.UserID),
	)
	return book, nil
}

// Update replaces a book's descriptive fields and total copy count. Copies
// on loan are preserved, so the total cannot drop below them.
func (s *CatalogService) Update(ctx context.Context, identity domain.Identity, id string, in domain.BookInput) (*domain.Book, error) {
	if err := authorizeCaller(identity, authz.ActionManageCatalog); err != nil {
		return nil, err
	}

	var book *domain.Book
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		book, err = s.books.LockByID(ctx, strings.TrimSpace(id))
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}
		if book == nil {
			return domain.ErrBookNotFound
		}

		in.ApplyTo(book)
		if in.TotalCopies != book.TotalCopies {
			if err := book.ResizeCopies(in.TotalCopies); err != nil {
				return err
			}
		}
		book.UpdatedAt = s.now()

		if err := s.validator.ValidateBook(book); err != nil {
			return validator.AsDomainError(err)
		}

		if err := s.books.Update(ctx, book); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return domain.ErrDuplicateISBN
			}
			return fmt.Errorf("update book: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "Book updated",
		slog.String("book_id", book.ID),
		slog.String("updated_by", identity.UserID),
	)
	return book, nil
}

// Delete removes a book that has no copies on loan together with its
// reservations.
func (s *CatalogService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if err := authorizeCaller(identity, authz.ActionManageCatalog); err != nil {
		return err
	}
	id = strings.TrimSpace(id)

	var removed int64
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		book, err := s.books.LockByID(ctx, id)
		if err != nil {
			return fmt.Errorf("lock book: %w", err)
		}
		if book == nil {
			return domain.ErrBookNotFound
		}

		loans, err := s.users.CountLoansForBook(ctx, book.ID)
		if err != nil {
			return fmt.Errorf("count loans: %w", err)
		}
		if loans > 0 {
			return domain.ErrBookHasLoans
		}

		removed, err = s.reservations.DeleteForBook(ctx, book.ID)
		if err != nil {
			return fmt.Errorf("delete reservations: %w", err)
		}

		if err := s.books.Delete(ctx, book.ID); err != nil {
			if errors.Is(err, repository.ErrReferenced) {
				return domain.ErrBookHasLoans
			}
			return fmt.Errorf("delete book: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "Book deleted",
		slog.String("book_id", id),
		slog.Int64("reservations_removed", removed),
		slog.String("deleted_by", identity.UserID),
	)
	return nil
}
