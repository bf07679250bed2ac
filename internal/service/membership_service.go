package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/kelvinmfon2025/book-api/internal/authz"
	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/logger"
	"github.com/kelvinmfon2025/book-api/internal/notification"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/validator"
)

// DefaultVerificationCodeTTL is how long an email verification code is valid.
const DefaultVerificationCodeTTL = 24 * time.Hour

// MembershipService handles registration and account management.
type MembershipService struct {
	users     repository.UserRepository
	tx        repository.Transactor
	validator *validator.Validator
	notifier  Notifier
	codeTTL   time.Duration
	newCode   func() (string, error)
	now       func() time.Time
}

// NewMembershipService creates a new MembershipService.
func NewMembershipService(
	users repository.UserRepository,
	tx repository.Transactor,
	v *validator.Validator,
	notifier Notifier,
	codeTTL time.Duration,
) *MembershipService {
	if codeTTL <= 0 {
		codeTTL = DefaultVerificationCodeTTL
	}
	return &MembershipService{
		users:     users,
		tx:        tx,
		validator: v,
		notifier:  notifier,
		codeTTL:   codeTTL,
		newCode:   verificationCode,
		now:       time.Now,
	}
}

// SetClock replaces the time source.
func (s *MembershipService) SetClock(now func() time.Time) {
	s.now = now
}

// verificationCode returns a random six digit code.
func verificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1_000_000))
	if err != nil {
		return "", fmt.Errorf("generate verification code: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// issueCode sets a fresh verification code on u.
func (s *MembershipService) issueCode(u *domain.User) error {
	code, err := s.newCode()
	if err != nil {
		return err
	}
	expires := s.now().Add(s.codeTTL)
	u.VerificationCode = code
	u.VerificationExpiresAt = &expires
	return nil
}

// Register creates an unverified member account and sends its verification
// code. Self-registration always yields the member role.
func (s *MembershipService) Register(ctx context.Context, in domain.Registration) (*domain.User, error) {
	now := s.now()
	user := &domain.User{
		ID:            uuid.New().String(),
		FirstName:     strings.TrimSpace(in.FirstName),
		LastName:      strings.TrimSpace(in.LastName),
		Email:         validator.NormalizeEmail(in.Email),
		Phone:         strings.TrimSpace(in.Phone),
		Address:       strings.TrimSpace(in.Address),
		Role:          domain.RoleMember,
		BorrowedBooks: []domain.Loan{},
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.validator.ValidateRegistration(user); err != nil {
		return nil, validator.AsDomainError(err)
	}
	if err := s.issueCode(user); err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, domain.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	logger.InfoContext(ctx, "User registered", slog.String("user_id", user.ID))
	s.notifier.Notify(ctx, notification.VerificationMessage(user, *user.VerificationExpiresAt))

	return user, nil
}

// VerifyEmail confirms the account registered under email when code matches
// the pending, unexpired verification code.
func (s *MembershipService) VerifyEmail(ctx context.Context, email, code string) (*domain.User, error) {
	email = validator.NormalizeEmail(email)
	code = strings.TrimSpace(code)
	if email == "" || code == "" {
		return nil, domain.NewError(domain.ErrInvalidRequest, "email and code are required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrInvalidVerificationCode
	}
	if user.EmailVerified {
		return nil, domain.ErrAlreadyVerified
	}
	if !user.VerificationValid(code, s.now()) {
		return nil, domain.ErrInvalidVerificationCode
	}

	user.EmailVerified = true
	user.VerificationCode = ""
	user.VerificationExpiresAt = nil
	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	logger.InfoContext(ctx, "Email verified", slog.String("user_id", user.ID))
	s.notifier.Notify(ctx, notification.WelcomeMessage(user))

	return user, nil
}

// ResendVerification replaces the pending verification code of an
// unverified account and sends it again.
func (s *MembershipService) ResendVerification(ctx context.Context, email string) error {
	email = validator.NormalizeEmail(email)
	if email == "" {
		return domain.NewError(domain.ErrInvalidRequest, "email is required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	if user.EmailVerified {
		return domain.ErrAlreadyVerified
	}

	if err := s.issueCode(user); err != nil {
		return err
	}
	user.UpdatedAt = s.now()
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	s.notifier.Notify(ctx, notification.VerificationMessage(user, *user.VerificationExpiresAt))
	return nil
}

// GetProfile returns the caller's account with its loans.
func (s *MembershipService) GetProfile(ctx context.Context, identity domain.Identity) (*domain.User, error) {
	if !identity.Authenticated() {
		return nil, domain.ErrNotAuthenticated
	}

	user, err := s.users.GetByID(ctx, identity.UserID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// UpdateProfile edits the caller's name and contact fields.
func (s *MembershipService) UpdateProfile(ctx context.Context, identity domain.Identity, update domain.ProfileUpdate) (*domain.User, error) {
	if err := authorizeCaller(identity, authz.ActionEditOwnProfile); err != nil {
		return nil, err
	}

	var user *domain.User
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.LockByID(ctx, identity.UserID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		update.ApplyTo(user)
		if err := s.validator.ValidateProfile(user); err != nil {
			return validator.AsDomainError(err)
		}

		user.UpdatedAt = s.now()
		if err := s.users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ChangeRole sets the role of any user.
func (s *MembershipService) ChangeRole(ctx context.Context, identity domain.Identity, userID string, role domain.Role) (*domain.User, error) {
	if err := authorizeCaller(identity, authz.ActionManageUsers); err != nil {
		return nil, err
	}
	if err := s.validator.ValidateRole(role); err != nil {
		return nil, validator.AsDomainError(err)
	}

	var user *domain.User
	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		user, err = s.users.LockByID(ctx, strings.TrimSpace(userID))
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}

		user.Role = role
		user.UpdatedAt = s.now()
		if err := s.users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "User role changed",
		slog.String("user_id", user.ID),
		slog.String("role", string(role)),
		slog.String("changed_by", identity.UserID),
	)
	return user, nil
}

// DeleteUser removes an account that has no books on loan. Its reservations
// are removed with it.
func (s *MembershipService) DeleteUser(ctx context.Context, identity domain.Identity, userID string) error {
	if err := authorizeCaller(identity, authz.ActionManageUsers); err != nil {
		return err
	}
	userID = strings.TrimSpace(userID)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.users.LockByID(ctx, userID)
		if err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if user == nil {
			return domain.ErrUserNotFound
		}
		if len(user.BorrowedBooks) > 0 {
			return domain.ErrUserHasLoans
		}

		if err := s.users.Delete(ctx, user.ID); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "User deleted",
		slog.String("user_id", userID),
		slog.String("deleted_by", identity.UserID),
	)
	return nil
}
