package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

const userColumns = `id, first_name, last_name, email, COALESCE(phone, ''), COALESCE(address, ''), role,
	email_verified, COALESCE(verification_code, ''), verification_expires_at, created_at, updated_at`

// PostgresUserRepository implements UserRepository using PostgreSQL.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresUserRepository creates a new PostgresUserRepository.
func NewPostgresUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

// Create inserts a new user.
func (r *PostgresUserRepository) Create(ctx context.Context, u *domain.User) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO users (id, first_name, last_name, email, phone, address, role,
			email_verified, verification_code, verification_expires_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`, u.ID, u.FirstName, u.LastName, u.Email, nullString(u.Phone), nullString(u.Address), string(u.Role),
		u.EmailVerified, nullString(u.VerificationCode), u.VerificationExpiresAt, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert user: %w", classify(err))
	}
	return nil
}

// GetByID retrieves a user and their loans by ID.
func (r *PostgresUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

// GetByEmail retrieves a user and their loans by email.
func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

// LockByID retrieves a user by ID and locks the row until the transaction
// ends.
func (r *PostgresUserRepository) LockByID(ctx context.Context, id string) (*domain.User, error) {
	if !validID(id) {
		return nil, nil
	}
	return r.get(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1 FOR UPDATE`, id)
}

func (r *PostgresUserRepository) get(ctx context.Context, query string, arg string) (*domain.User, error) {
	var u domain.User
	var role string
	err := conn(ctx, r.pool).QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.FirstName, &u.LastName, &u.Email, &u.Phone, &u.Address, &role,
		&u.EmailVerified, &u.VerificationCode, &u.VerificationExpiresAt, &u.CreatedAt, &u.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	u.Role = domain.Role(role)

	loans, err := r.listLoans(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	u.BorrowedBooks = loans

	return &u, nil
}

func (r *PostgresUserRepository) listLoans(ctx context.Context, userID string) ([]domain.Loan, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT id, user_id, book_id, borrow_date, due_date
		FROM loans
		WHERE user_id = $1
		ORDER BY borrow_date, id
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.Loan, 0)
	for rows.Next() {
		var l domain.Loan
		if err := rows.Scan(&l.ID, &l.UserID, &l.BookID, &l.BorrowDate, &l.DueDate); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	return loans, rows.Err()
}

// Update overwrites the mutable fields of a user. Loans are managed through
// AddLoan and DeleteLoan.
func (r *PostgresUserRepository) Update(ctx context.Context, u *domain.User) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		UPDATE users
		SET first_name = $2, last_name = $3, phone = $4, address = $5, role = $6,
			email_verified = $7, verification_code = $8, verification_expires_at = $9, updated_at = $10
		WHERE id = $1
	`, u.ID, u.FirstName, u.LastName, nullString(u.Phone), nullString(u.Address), string(u.Role),
		u.EmailVerified, nullString(u.VerificationCode), u.VerificationExpiresAt, u.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update user: %w", classify(err))
	}
	return nil
}

// Delete removes a user. Their loans and reservations are removed with them.
func (r *PostgresUserRepository) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return nil
	}
	if _, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

// AddLoan records a new loan. A second loan of the same book by the same
// user fails with ErrDuplicate.
func (r *PostgresUserRepository) AddLoan(ctx context.Context, l domain.Loan) error {
	_, err := conn(ctx, r.pool).Exec(ctx, `
		INSERT INTO loans (id, user_id, book_id, borrow_date, due_date)
		VALUES ($1, $2, $3, $4, $5)
	`, l.ID, l.UserID, l.BookID, l.BorrowDate, l.DueDate)
	if err != nil {
		return fmt.Errorf("insert loan: %w", classify(err))
	}
	return nil
}

// DeleteLoan removes a loan by ID and reports whether it existed.
func (r *PostgresUserRepository) DeleteLoan(ctx context.Context, loanID string) (bool, error) {
	tag, err := conn(ctx, r.pool).Exec(ctx, `DELETE FROM loans WHERE id = $1`, loanID)
	if err != nil {
		return false, fmt.Errorf("delete loan: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

// CountLoansForBook returns how many copies of a book are on loan.
func (r *PostgresUserRepository) CountLoansForBook(ctx context.Context, bookID string) (int, error) {
	var count int
	err := conn(ctx, r.pool).QueryRow(ctx, `SELECT COUNT(*) FROM loans WHERE book_id = $1`, bookID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count loans: %w", err)
	}
	return count, nil
}

// ListOverdueLoans returns loans whose due date is before now, oldest first.
func (r *PostgresUserRepository) ListOverdueLoans(ctx context.Context, now time.Time) ([]domain.OverdueLoan, error) {
	rows, err := conn(ctx, r.pool).Query(ctx, `
		SELECT l.id, l.user_id, l.book_id, l.borrow_date, l.due_date, b.title, u.email
		FROM loans l
		JOIN books b ON b.id = l.book_id
		JOIN users u ON u.id = l.user_id
		WHERE l.due_date < $1
		ORDER BY l.due_date, l.id
	`, now)
	if err != nil {
		return nil, fmt.Errorf("query overdue loans: %w", err)
	}
	defer rows.Close()

	loans := make([]domain.OverdueLoan, 0)
	for rows.Next() {
		var o domain.OverdueLoan
		if err := rows.Scan(&o.ID, &o.UserID, &o.BookID, &o.BorrowDate, &o.DueDate, &o.Title, &o.Email); err != nil {
			return nil, fmt.Errorf("scan overdue loan: %w", err)
		}
		o.DaysOverdue = o.Loan.DaysOverdue(now)
		loans = append(loans, o)
	}
	return loans, rows.Err()
}

// LoanStats returns the number of active loans and how many of them are
// overdue at now.
func (r *PostgresUserRepository) LoanStats(ctx context.Context, now time.Time) (int, int, error) {
	var active, overdue int
	err := conn(ctx, r.pool).QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE due_date < $1)
		FROM loans
	`, now).Scan(&active, &overdue)
	if err != nil {
		return 0, 0, fmt.Errorf("loan stats: %w", err)
	}
	return active, overdue, nil
}
