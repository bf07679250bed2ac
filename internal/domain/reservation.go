package domain

import "time"

// ReservationStatus is the lifecycle state of a reservation.
type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCanceled  ReservationStatus = "canceled"
	ReservationFulfilled ReservationStatus = "fulfilled"
)

// ValidReservationStatuses contains all valid reservation statuses.
var ValidReservationStatuses = []ReservationStatus{
	ReservationActive,
	ReservationCanceled,
	ReservationFulfilled,
}

// IsValidReservationStatus checks if a status is valid.
func IsValidReservationStatus(status string) bool {
	for _, s := range ValidReservationStatuses {
		if string(s) == status {
			return true
		}
	}
	return false
}

// Reservation is a queued request for a title with no available copies.
type Reservation struct {
	ID        string            `json:"id"`
	BookID    string            `json:"bookId"`
	UserID    string            `json:"userId"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"createdAt"`
	UpdatedAt time.Time         `json:"updatedAt"`
	ExpiresAt *time.Time        `json:"expiresAt,omitempty"`
}

// IsActive reports whether the reservation still holds a place in the queue.
func (r *Reservation) IsActive() bool {
	return r.Status == ReservationActive
}

// ReservationFilter narrows a reservation listing. Empty fields match all.
type ReservationFilter struct {
	BookID string
	UserID string
	Status ReservationStatus
}

// Fulfillment is the result of allocating a copy to a queued reservation.
type Fulfillment struct {
	Reservation *Reservation `json:"reservation"`
	Loan        Loan         `json:"loan"`
}
