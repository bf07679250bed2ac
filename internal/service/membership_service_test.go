package service_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/kelvinmfon2025/book-api/internal/domain"
	"github.com/kelvinmfon2025/book-api/internal/mocks"
	"github.com/kelvinmfon2025/book-api/internal/notification"
	"github.com/kelvinmfon2025/book-api/internal/repository"
	"github.com/kelvinmfon2025/book-api/internal/service"
	"github.com/kelvinmfon2025/book-api/internal/validator"
)

var admin = domain.Identity{UserID: "admin-1", Role: domain.RoleAdmin}

type membershipFixture struct {
	users    *mocks.MockUserRepository
	notifier *mocks.MockNotifier
	svc      *service.MembershipService
}

func newMembershipFixture(t *testing.T) *membershipFixture {
	f := &membershipFixture{
		users:    mocks.NewMockUserRepository(t),
		notifier: mocks.NewMockNotifier(t),
	}
	f.svc = service.NewMembershipService(f.users, passthroughTx(t), validator.NewValidator(), f.notifier, time.Hour)
	f.svc.SetClock(func() time.Time { return fixedNow })
	return f
}

func unverifiedUser(code string, expires time.Time) *domain.User {
	u := testUser("user-1")
	u.VerificationCode = code
	u.VerificationExpiresAt = &expires
	return u
}

func TestMembershipService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("creates unverified member and sends code", func(t *testing.T) {
		f := newMembershipFixture(t)
		var stored *domain.User
		f.users.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(_ context.Context, u *domain.User) { stored = u }).
			Return(nil)
		f.notifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
				return m.Kind == notification.KindEmailVerification && m.To == "ada@example.com"
			})).
			Return()

		user, err := f.svc.Register(ctx, domain.Registration{
			FirstName: " Ada ",
			LastName:  "Lovelace",
			Email:     " Ada@Example.COM ",
		})

		require.NoError(t, err)
		assert.Same(t, stored, user)
		assert.Equal(t, "Ada", user.FirstName)
		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, domain.RoleMember, user.Role)
		assert.False(t, user.EmailVerified)
		assert.Regexp(t, regexp.MustCompile(`^\d{6}$`), user.VerificationCode)
		require.NotNil(t, user.VerificationExpiresAt)
		assert.Equal(t, fixedNow.Add(time.Hour), *user.VerificationExpiresAt)
	})

	t.Run("invalid email", func(t *testing.T) {
		f := newMembershipFixture(t)

		_, err := f.svc.Register(ctx, domain.Registration{FirstName: "Ada", Email: "not-an-email"})

		assert.Equal(t, domain.ErrInvalidRequest, domain.KindOf(err))
	})

	t.Run("duplicate email", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicate)

		_, err := f.svc.Register(ctx, domain.Registration{FirstName: "Ada", Email: "ada@example.com"})

		assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
	})
}

func TestMembershipService_VerifyEmail(t *testing.T) {
	ctx := context.Background()

	t.Run("valid code verifies account", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().GetByEmail(mock.Anything, "user-1@example.com").
			Return(unverifiedUser("123456", fixedNow.Add(time.Minute)), nil)
		f.users.EXPECT().
			Update(mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
				return u.EmailVerified && u.VerificationCode == "" && u.VerificationExpiresAt == nil
			})).
			Return(nil)
		f.notifier.EXPECT().
			Notify(mock.Anything, mock.MatchedBy(func(m notification.Message) bool {
				return m.Kind == notification.KindWelcome
			})).
			Return()

		user, err := f.svc.VerifyEmail(ctx, "USER-1@example.com", "123456")

		require.NoError(t, err)
		assert.True(t, user.EmailVerified)
	})

	t.Run("expired code", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().GetByEmail(mock.Anything, "user-1@example.com").
			Return(unverifiedUser("123456", fixedNow.Add(-time.Minute)), nil)

		_, err := f.svc.VerifyEmail(ctx, "user-1@example.com", "123456")

		assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
	})

	t.Run("unknown email looks like a bad code", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, nil)

		_, err := f.svc.VerifyEmail(ctx, "nobody@example.com", "123456")

		assert.ErrorIs(t, err, domain.ErrInvalidVerificationCode)
	})

	t.Run("already verified", func(t *testing.T) {
		f := newMembershipFixture(t)
		u := testUser("user-1")
		u.EmailVerified = true
		f.users.EXPECT().GetByEmail(mock.Anything, "user-1@example.com").Return(u, nil)

		_, err := f.svc.VerifyEmail(ctx, "user-1@example.com", "123456")

		assert.ErrorIs(t, err, domain.ErrAlreadyVerified)
	})
}

func TestMembershipService_ResendVerification(t *testing.T) {
	ctx := context.Background()

	t.Run("issues a new code", func(t *testing.T) {
		f := newMembershipFixture(t)
		u := unverifiedUser("111111", fixedNow.Add(-time.Hour))
		f.users.EXPECT().GetByEmail(mock.Anything, "user-1@example.com").Return(u, nil)
		f.users.EXPECT().Update(mock.Anything, u).Return(nil)
		f.notifier.EXPECT().Notify(mock.Anything, mock.Anything).Return()

		err := f.svc.ResendVerification(ctx, "user-1@example.com")

		require.NoError(t, err)
		assert.Equal(t, fixedNow.Add(time.Hour), *u.VerificationExpiresAt)
		assert.Len(t, u.VerificationCode, 6)
	})

	t.Run("unknown email", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().GetByEmail(mock.Anything, "nobody@example.com").Return(nil, nil)

		err := f.svc.ResendVerification(ctx, "nobody@example.com")

		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestMembershipService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("applies partial update", func(t *testing.T) {
		f := newMembershipFixture(t)
		u := testUser("user-1")
		u.LastName = "Lovelace"
		f.users.EXPECT().LockByID(mock.Anything, "user-1").Return(u, nil)
		f.users.EXPECT().Update(mock.Anything, u).Return(nil)

		phone := "+44 20 7946 0000"
		user, err := f.svc.UpdateProfile(ctx, member, domain.ProfileUpdate{Phone: &phone})

		require.NoError(t, err)
		assert.Equal(t, phone, user.Phone)
		assert.Equal(t, "Lovelace", user.LastName)
	})

	t.Run("first name cannot be cleared", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().LockByID(mock.Anything, "user-1").Return(testUser("user-1"), nil)

		empty := ""
		_, err := f.svc.UpdateProfile(ctx, member, domain.ProfileUpdate{FirstName: &empty})

		assert.Equal(t, domain.ErrInvalidRequest, domain.KindOf(err))
	})
}

func TestMembershipService_ChangeRole(t *testing.T) {
	ctx := context.Background()

	t.Run("admin promotes member", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().LockByID(mock.Anything, "user-1").Return(testUser("user-1"), nil)
		f.users.EXPECT().Update(mock.Anything, mock.Anything).Return(nil)

		user, err := f.svc.ChangeRole(ctx, admin, "user-1", domain.RoleLibrarian)

		require.NoError(t, err)
		assert.Equal(t, domain.RoleLibrarian, user.Role)
	})

	t.Run("librarian may not change roles", func(t *testing.T) {
		f := newMembershipFixture(t)

		_, err := f.svc.ChangeRole(ctx, librarian, "user-1", domain.RoleAdmin)

		assert.ErrorIs(t, err, domain.ErrAccessDenied)
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newMembershipFixture(t)

		_, err := f.svc.ChangeRole(ctx, admin, "user-1", "superuser")

		assert.Equal(t, domain.ErrInvalidRequest, domain.KindOf(err))
	})
}

func TestMembershipService_DeleteUser(t *testing.T) {
	ctx := context.Background()

	t.Run("user with loans", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().LockByID(mock.Anything, "user-1").
			Return(testUser("user-1", domain.Loan{ID: "loan-1", BookID: "book-1"}), nil)

		err := f.svc.DeleteUser(ctx, admin, "user-1")

		assert.ErrorIs(t, err, domain.ErrUserHasLoans)
	})

	t.Run("deletes user", func(t *testing.T) {
		f := newMembershipFixture(t)
		f.users.EXPECT().LockByID(mock.Anything, "user-1").Return(testUser("user-1"), nil)
		f.users.EXPECT().Delete(mock.Anything, "user-1").Return(nil)

		require.NoError(t, f.svc.DeleteUser(ctx, admin, "user-1"))
	})
}

func TestMembershipService_GetProfile(t *testing.T) {
	f := newMembershipFixture(t)

	_, err := f.svc.GetProfile(context.Background(), domain.Identity{})

	assert.ErrorIs(t, err, domain.ErrNotAuthenticated)
}
