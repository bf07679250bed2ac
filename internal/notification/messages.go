package notification

import (
	"time"

	"github.com/kelvinmfon2025/book-api/internal/domain"
)

// VerificationMessage asks a newly registered user to confirm their email.
func VerificationMessage(u *domain.User, expiresAt time.Time) Message {
	return Message{
		Kind:    KindEmailVerification,
		UserID:  u.ID,
		To:      u.Email,
		Subject: "Verify your email",
		Data: map[string]string{
			"firstName": u.FirstName,
			"code":      u.VerificationCode,
			"expiresAt": expiresAt.UTC().Format(time.RFC3339),
		},
	}
}

// WelcomeMessage confirms a verified account.
func WelcomeMessage(u *domain.User) Message {
	return Message{
		Kind:    KindWelcome,
		UserID:  u.ID,
		To:      u.Email,
		Subject: "Welcome to the library",
		Data:    map[string]string{"firstName": u.FirstName},
	}
}

// ReservationMessage reports a change to a reservation.
func ReservationMessage(kind Kind, u *domain.User, book *domain.Book, res *domain.Reservation) Message {
	subjects := map[Kind]string{
		KindReservationCreated:   "Reservation confirmed",
		KindReservationAvailable: "A copy you reserved is available",
		KindReservationFulfilled: "Your reserved book has been checked out to you",
		KindReservationCanceled:  "Reservation canceled",
	}

	data := map[string]string{
		"reservationId": res.ID,
		"bookId":        res.BookID,
		"status":        string(res.Status),
	}
	if book != nil {
		data["title"] = book.Title
	}
	if res.ExpiresAt != nil {
		data["expiresAt"] = res.ExpiresAt.UTC().Format(time.RFC3339)
	}

	return Message{
		Kind:    kind,
		UserID:  u.ID,
		To:      u.Email,
		Subject: subjects[kind],
		Data:    data,
	}
}
