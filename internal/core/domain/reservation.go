package domain

import (
	"fmt"
	"time"
)

type ReservationStatus string

const (
	StatusPending  ReservationStatus = "pending"
	StatusAccepted ReservationStatus = "accepted"
	StatusDeclined ReservationStatus = "declined"
)

// ParseReservationStatus maps a caller-supplied status value to the closed
// status type. Unknown values are a validation failure, never stored.
func ParseReservationStatus(s string) (ReservationStatus, error) {
	switch ReservationStatus(s) {
	case StatusPending, StatusAccepted, StatusDeclined:
		return ReservationStatus(s), nil
	}
	return "", fmt.Errorf("%w: unknown reservation status %q", ErrValidation, s)
}

// Label returns the human-readable projection of the status. It is
// recomputed on every read and never persisted.
func (s ReservationStatus) Label() string {
	switch s {
	case StatusAccepted:
		return "Accepted"
	case StatusDeclined:
		return "Declined"
	default:
		return "Pending"
	}
}

// CanTransition decides whether a status change is legal. pending may move
// to accepted or declined; accepted and declined are terminal unless
// allowRetransition is set (product intent on re-transition is still
// unconfirmed, so both modes are supported).
func CanTransition(from, to ReservationStatus, allowRetransition bool) error {
	if from == to {
		return fmt.Errorf("%w: reservation already %s", ErrInvalidTransition, from)
	}
	if from != StatusPending && !allowRetransition {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}
	return nil
}

// Reservation is a boarding request. PetName is free text, not a Pet
// reference. OwnerID follows the same create-once ownership rule as Pet.
type Reservation struct {
	ID        string            `json:"id"`
	PetName   string            `json:"pet_name"`
	Duration  string            `json:"duration"`
	Date      string            `json:"date"`
	Time      string            `json:"time"`
	Note      string            `json:"note,omitempty"`
	OwnerID   string            `json:"owner_id"`
	Status    ReservationStatus `json:"status"`
	CreatedAt time.Time         `json:"created_at"`
}

// StatusLabel is included in API responses alongside the raw status.
func (r Reservation) StatusLabel() string {
	return r.Status.Label()
}
