package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

const reservationColumns = `id, book_id, user_id, status, created_at, updated_at, expires_at`

// PostgresReservationRepository implements ReservationRepository using
// PostgreSQL.
type PostgresReservationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReservationRepository creates a new PostgresReservationRepository.
func NewPostgresReservationRepository(pool *pgxpool.Pool) *PostgresReservationRepository {
	return &PostgresReservationRepository{pool: pool}
}

func scanReservation(row rowScanner) (*domain.Reservation, error) {
	var res domain.Reservation
	var status string
	if err := row.Scan(&res.ID, &res.BookID, &res.UserID, &status, &res.CreatedAt, &res.UpdatedAt, &res.ExpiresAt); err != nil {
		return nil, err
	}
	res.Status = domain.ReservationStatus(status)
	return &res, nil
}

func (r *PostgresReservationRepository) queryOne(ctx context.Context, query string, args ...any) (*domain.Reservation, error) {
	res, err := scanReservation(conn(ctx, r.pool).QueryRow(ctx, query, args...))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return res, nil
}

// Create inserts a new reservation. A second active reservation for the same
// book and user fails with ErrDuplicate.
func (r *PostgresReservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO reservations (id, book_id, user_id, status, created_at, updated_at, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, res.ID, res.BookID, res.UserID, string(res.Status), res.CreatedAt, res.UpdatedAt, res.ExpiresAt)
	if err != nil {
		return fmt.Errorf("insert reservation: %w", classify(err))
	}
	return nil
}

// GetByID retrieves a reservation by ID.
func (r *PostgresReservationRepository) GetByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1`, id)
}

// LockByID retrieves a reservation by ID and locks its row.
func (r *PostgresReservationRepository) LockByID(ctx context.Context, id string) (*domain.Reservation, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.queryOne(ctx, `SELECT `+reservationColumns+` FROM reservations WHERE id = $1 FOR UPDATE`, id)
}

// FindActive returns the active reservation of a user for a book, if any.
func (r *PostgresReservationRepository) FindActive(ctx context.Context, bookID, userID string) (*domain.Reservation, error) {
	if !validID(bookID) || !validID(userID) {
		return nil, nil
	}
	return r.queryOne(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE book_id = $1 AND user_id = $2 AND status = 'active'
	`, bookID, userID)
}

// NextActive locks and returns the oldest active reservation for a book.
func (r *PostgresReservationRepository) NextActive(ctx context.Context, bookID string) (*domain.Reservation, error) {
	if !validID(bookID) {
		return nil, nil
	}
	return r.queryOne(ctx, `
		SELECT `+reservationColumns+`
		FROM reservations
		WHERE book_id = $1 AND status = 'active'
		ORDER BY created_at, id
		LIMIT 1
		FOR UPDATE
	`, bookID)
}

// UpdateStatus moves a reservation from one status to another. It reports
// false when the reservation was not in the from status.
func (r *PostgresReservationRepository) UpdateStatus(ctx context.Context, id string, from, to domain.ReservationStatus, now time.Time) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE reservations
		SET status = $3, updated_at = $4
		WHERE id = $1 AND status = $2
	`, id, string(from), string(to), now)
	if err != nil {
		return false, fmt.Errorf("update reservation status: %w", classify(err))
	}
	return tag.RowsAffected() == 1, nil
}

// DeleteForBook removes every reservation for a book, whatever its status,
// and returns how many were removed.
func (r *PostgresReservationRepository) DeleteForBook(ctx context.Context, bookID string) (int64, error) {
	if !validID(bookID) {
		return 0, nil
	}
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM reservations WHERE book_id = $1`, bookID)
	if err != nil {
		return 0, fmt.Errorf("delete reservations: %w", err)
	}
	return tag.RowsAffected(), nil
}

// ExpireBefore cancels active reservations whose expiry is before now.
func (r *PostgresReservationRepository) ExpireBefore(ctx context.Context, now time.Time) (int64, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE reservations
		SET status = 'canceled', updated_at = $1
		WHERE status = 'active' AND expires_at IS NOT NULL AND expires_at < $1
	`, now)
	if err != nil {
		return 0, fmt.Errorf("expire reservations: %w", err)
	}
	return tag.RowsAffected(), nil
}

// List returns a page of reservations matching filter, oldest first.
func (r *PostgresReservationRepository) List(ctx context.Context, filter domain.ReservationFilter, page domain.Pagination) ([]domain.Reservation, int, error) {
	ds := dialect.From("reservations")
	if filter.BookID != "" {
		if !validID(filter.BookID) {
			return []domain.Reservation{}, 0, nil
		}
		ds = ds.Where(goqu.C("book_id").Eq(filter.BookID))
	}
	if filter.UserID != "" {
		if !validID(filter.UserID) {
			return []domain.Reservation{}, 0, nil
		}
		ds = ds.Where(goqu.C("user_id").Eq(filter.UserID))
	}
	if filter.Status != "" {
		ds = ds.Where(goqu.C("status").Eq(string(filter.Status)))
	}

	countSQL, countArgs, err := ds.Select(goqu.COUNT(goqu.Star())).Prepared(true).ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build count query: %w", err)
	}

	var total int
	if err := conn(ctx, r.pool).QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count reservations: %w", err)
	}
	if total == 0 {
		return []domain.Reservation{}, 0, nil
	}

	query, args, err := ds.Select(goqu.L(reservationColumns)).
		Order(goqu.I("created_at").Asc(), goqu.I("id").Asc()).
		Limit(uint(page.Limit)).
		Offset(uint(page.Offset())).
		Prepared(true).
		ToSQL()
	if err != nil {
		return nil, 0, fmt.Errorf("build reservations query: %w", err)
	}

	rows, err := conn(ctx, r.pool).Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("query reservations: %w", err)
	}
	defer rows.Close()

	reservations := make([]domain.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan reservation: %w", err)
		}
		reservations = append(reservations, *res)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate reservations: %w", err)
	}

	return reservations, total, nil
}
