package validator

import (
	"regexp"
	"sort"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

const (
	// MinPublicationYear is the earliest accepted publication year.
	MinPublicationYear = 1450
	maxDescriptionLen  = 1000
	maxNameLen         = 100
)

var (
	isbnRegex  = regexp.MustCompile(`^(?:\d{10}|\d{13})$`)
	validRoles = []interface{}{domain.RoleMember, domain.RoleLibrarian, domain.RoleAdmin}
)

// Validator provides validation methods for domain entities.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a new Validator instance.
func NewValidator() *Validator {
	return &Validator{now: time.Now}
}

// ValidateBook validates a Book entity.
func (v *Validator) ValidateBook(b *domain.Book) error {
	return validation.ValidateStruct(b,
		validation.Field(&b.Title,
			validation.Required.Error("title is required"),
			validation.RuneLength(0, 255),
		),
		validation.Field(&b.Authors,
			validation.Required.Error("at least one author is required"),
			validation.Each(validation.Required),
		),
		validation.Field(&b.ISBN,
			validation.Required.Error("isbn is required"),
			validation.Match(isbnRegex).Error("isbn must be 10 or 13 digits"),
		),
		validation.Field(&b.Genres,
			validation.Required.Error("at least one genre is required"),
			validation.Each(validation.Required),
		),
		validation.Field(&b.PublicationYear,
			validation.Min(MinPublicationYear),
			validation.Max(v.now().Year()).Error("publication year cannot be in the future"),
		),
		validation.Field(&b.Description,
			validation.RuneLength(0, maxDescriptionLen),
		),
		validation.Field(&b.TotalCopies,
			validation.Required.Error("total copies must be at least 1"),
			validation.Min(1).Error("total copies must be at least 1"),
		),
		validation.Field(&b.AvailableCopies,
			validation.Min(0),
			validation.Max(b.TotalCopies).Error("available copies cannot exceed total copies"),
		),
	)
}

// ValidateRegistration validates a new User before it is stored.
func (v *Validator) ValidateRegistration(u *domain.User) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.FirstName,
			validation.Required.Error("first name is required"),
			validation.RuneLength(0, maxNameLen),
		),
		validation.Field(&u.LastName,
			validation.RuneLength(0, maxNameLen),
		),
		validation.Field(&u.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&u.Role,
			validation.In(validRoles...).Error("invalid role"),
		),
	)
}

// ValidateProfile validates the user-editable fields of a User.
func (v *Validator) ValidateProfile(u *domain.User) error {
	return validation.ValidateStruct(u,
		validation.Field(&u.FirstName,
			validation.Required.Error("first name is required"),
			validation.RuneLength(0, maxNameLen),
		),
		validation.Field(&u.LastName,
			validation.RuneLength(0, maxNameLen),
		),
		validation.Field(&u.Phone,
			validation.RuneLength(0, 32),
		),
		validation.Field(&u.Address,
			validation.RuneLength(0, 255),
		),
	)
}

// ValidateRole validates a role name.
func (v *Validator) ValidateRole(role domain.Role) error {
	return validation.Validate(role,
		validation.Required.Error("role is required"),
		validation.In(validRoles...).Error("invalid role"),
	)
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// AsDomainError converts ozzo validation errors to an InvalidRequest domain
// error. Field messages are sorted so the result is stable.
func AsDomainError(err error) error {
	if err == nil {
		return nil
	}

	ve, ok := err.(validation.Errors)
	if !ok {
		return domain.NewError(domain.ErrInvalidRequest, err.Error())
	}

	fields := make([]string, 0, len(ve))
	for field := range ve {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, field+": "+ve[field].Error())
	}
	return domain.NewError(domain.ErrInvalidRequest, strings.Join(parts, "; "))
}
