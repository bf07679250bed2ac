package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

const bookColumns = `id, title, authors, isbn, COALESCE(publisher, ''), publication_year, genres,
	COALESCE(language, ''), COALESCE(location, ''), COALESCE(description, ''), COALESCE(cover_image, ''),
	total_copies, available_copies, created_at, updated_at`

// PostgresBookRepository implements BookRepository using PostgreSQL.
type PostgresBookRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresBookRepository creates a new PostgresBookRepository.
func NewPostgresBookRepository(pool *pgxpool.Pool) *PostgresBookRepository {
	return &PostgresBookRepository{pool: pool}
}

func scanBook(row rowScanner) (*domain.Book, error) {
	var b domain.Book
	err := row.Scan(&b.ID, &b.Title, &b.Authors, &b.ISBN, &b.Publisher, &b.PublicationYear, &b.Genres,
		&b.Language, &b.Location, &b.Description, &b.CoverImage,
		&b.TotalCopies, &b.AvailableCopies, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create inserts a new book.
func (r *PostgresBookRepository) Create(ctx context.Context, b *domain.Book) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO books (id, title, authors, isbn, publisher, publication_year, genres,
			language, location, description, cover_image, total_copies, available_copies,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`, b.ID, b.Title, b.Authors, b.ISBN, nullString(b.Publisher), b.PublicationYear, b.Genres,
		nullString(b.Language), nullString(b.Location), nullString(b.Description), nullString(b.CoverImage),
		b.TotalCopies, b.AvailableCopies, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert book: %w", classify(err))
	}
	return nil
}

// GetByID retrieves a book by ID.
func (r *PostgresBookRepository) GetByID(ctx context.Context, id string) (*domain.Book, error) {
	return r.get(ctx, id, "")
}

// LockByID retrieves a book by ID and locks its row until the transaction ends.
func (r *PostgresBookRepository) LockByID(ctx context.Context, id string) (*domain.Book, error) {
	return r.get(ctx, id, " FOR UPDATE")
}

func (r *PostgresBookRepository) get(ctx context.Context, id, suffix string) (*domain.Book, error) {
	if !validID(id) {
		return nil, nil
	}

	b, err := scanBook(conn(ctx, r.pool).QueryRow(ctx,
		`SELECT `+bookColumns+` FROM books WHERE id = $1`+suffix, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get book: %w", err)
	}
	return b, nil
}

// GetByIDs retrieves the books with the given IDs keyed by ID. Unknown IDs
// are absent from the result.
func (r *PostgresBookRepository) GetByIDs(ctx context.Context, ids []string) (map[string]*domain.Book, error) {
	result := make(map[string]*domain.Book, len(ids))

	valid := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		if validID(id) {
			valid = append(valid, id)
		}
	}
	if len(valid) == 0 {
		return result, nil
	}

	query, args, err := dialect.From("books").
		Select(goqu.L(bookColumns)).
		Where(goqu.C("id").In(valid...)).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build books query: %w", err)
	}

	books, err := r.queryBooks(ctx, query, args)
	if err != nil {
		return nil, err
	}
	for i := range books {
		result[books[i].ID] = &books[i]
	}
	return result, nil
}

// Update overwrites the mutable fields of a book.
func (r *PostgresBookRepository) Update(ctx context.Context, b *domain.Book) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE books
		SET title = $2, authors = $3, isbn = $4, publisher = $5, publication_year = $6,
			genres = $7, language = $8, location = $9, description = $10, cover_image = $11,
			total_copies = $12, available_copies = $13, updated_at = $14
		WHERE id = $1
	`, b.ID, b.Title, b.Authors, b.ISBN, nullString(b.Publisher), b.PublicationYear,
		b.Genres, nullString(b.Language), nullString(b.Location), nullString(b.Description), nullString(b.CoverImage),
		b.TotalCopies, b.AvailableCopies, b.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update book: %w", classify(err))
	}
	return nil
}

// Delete removes a book.
func (r *PostgresBookRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete book: %w", classify(err))
	}
	return nil
}

// DecrementAvailable takes one copy off the shelf. It reports false when no
// copy was available.
func (r *PostgresBookRepository) DecrementAvailable(ctx context.Context, id string) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE books
		SET available_copies = available_copies - 1, updated_at = NOW()
		WHERE id = $1 AND available_copies > 0
	`, id)
	if err != nil {
		return false, fmt.Errorf("decrement available copies: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// IncrementAvailable puts one copy back, never exceeding the total.
func (r *PostgresBookRepository) IncrementAvailable(ctx context.Context, id string) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE books
		SET available_copies = LEAST(available_copies + 1, total_copies), updated_at = NOW()
		WHERE id = $1
	`, id)
	if err != nil {
		return fmt.Errorf("increment available copies: %w", err)
	}
	return nil
}

// Search finds books whose title, authors, genres or ISBN contain query,
// ignoring case.
func (r *PostgresBookRepository) Search(ctx context.Context, query string, page domain.Pagination) ([]domain.Book, int, error) {
	pattern := containsPattern(query)
	ds := dialect.From("books").Where(goqu.Or(
		goqu.L("title ILIKE ?", pattern),
		goqu.L("EXISTS (SELECT 1 FROM unnest(authors) AS a WHERE a ILIKE ?)", pattern),
		goqu.L("EXISTS (SELECT 1 FROM unnest(genres) AS g WHERE g ILIKE ?)", pattern),
		goqu.L("isbn ILIKE ?", pattern),
	))
	return r.page(ctx, ds, page)
}

// List returns a page of the catalog ordered by title.
func (r *PostgresBookRepository) List(ctx context.Context, page domain.Pagination) ([]domain.Book, int, error) {
	return r.page(ctx, dialect.From("books"), page)
}

func (r *PostgresBookRepository) page(ctx context.Context, ds *goqu.SelectDataset, page domain.Pagination) ([]domain.Book, int, error) {
	countSQL, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count books: %w", err)
	}
	if total == 0 {
		return []domain.Book{}, 0, nil
	}

	query, args, err := ds.Select(goqu.L(bookColumns)).
		Order(goqu.I("title").Asc(), goqu.I("id").Asc()).
		Limit(uint(page.Limit)).
		Offset(uint(page.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build books query: %w", err)
	}

	books, err := r.queryBooks(ctx, query, args)
	if err != nil {
		return nil, 0, err
	}
	return books, total, nil
}

func (r *PostgresBookRepository) queryBooks(ctx context.Context, query string, args []interface{}) ([]domain.Book, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query books: %w", err)
	}
	defer rows.Close()

	books := make([]domain.Book, 0)
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		books = append(books, *b)
	}
	return books, rows.Err()
}
