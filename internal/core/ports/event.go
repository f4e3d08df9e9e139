package ports

import (
	"context"
)

const (
	EventReservationCreated       = "reservation.created"
	EventReservationStatusChanged = "reservation.status_changed"
)

// ReservationEvent is the outbox payload for reservation lifecycle changes.
type ReservationEvent struct {
	ReservationID string `json:"reservation_id"`
	OwnerID       string `json:"owner_id"`
	PetName       string `json:"pet_name"`
	Status        string `json:"status"`
}

type ReservationEventPublisher interface {
	PublishReservationEvent(ctx context.Context, eventType string, evt ReservationEvent) error
}
