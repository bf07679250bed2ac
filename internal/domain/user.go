package domain

import "time"

// Role is the authorization tier of a user.
type Role string

const (
	RoleMember    Role = "member"
	RoleLibrarian Role = "librarian"
	RoleAdmin     Role = "admin"
)

// ValidRoles contains all valid user roles.
var ValidRoles = []Role{RoleMember, RoleLibrarian, RoleAdmin}

// IsValidRole checks if a role is valid.
func IsValidRole(role string) bool {
	for _, r := range ValidRoles {
		if string(r) == role {
			return true
		}
	}
	return false
}

// User represents a library account.
type User struct {
	ID                    string     `json:"id"`
	FirstName             string     `json:"firstName"`
	LastName              string     `json:"lastName"`
	Email                 string     `json:"email"`
	Phone                 string     `json:"phone,omitempty"`
	Address               string     `json:"address,omitempty"`
	Role                  Role       `json:"role"`
	EmailVerified         bool       `json:"isEmailVerified"`
	VerificationCode      string     `json:"-"`
	VerificationExpiresAt *time.Time `json:"-"`
	BorrowedBooks         []Loan     `json:"borrowedBooks"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

// LoanFor returns the user's active loan for a book, or nil.
func (u *User) LoanFor(bookID string) *Loan {
	for i := range u.BorrowedBooks {
		if u.BorrowedBooks[i].BookID == bookID {
			return &u.BorrowedBooks[i]
		}
	}
	return nil
}

// CanBorrow reports whether the user is below the given borrow limit.
func (u *User) CanBorrow(limit int) bool {
	return len(u.BorrowedBooks) < limit
}

// VerificationValid reports whether code matches the pending verification
// code and has not expired at now.
func (u *User) VerificationValid(code string, now time.Time) bool {
	if u.VerificationCode == "" || code != u.VerificationCode {
		return false
	}
	return u.VerificationExpiresAt != nil && now.Before(*u.VerificationExpiresAt)
}

// Identity is the verified caller of an operation, supplied by the upstream
// authentication layer.
type Identity struct {
	UserID string
	Role   Role
}

// Authenticated reports whether the identity names a user.
func (i Identity) Authenticated() bool {
	return i.UserID != ""
}
