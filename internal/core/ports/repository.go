package ports

import (
	"context"

	"github.com/pawfectstay/booking-service/internal/core/domain"
)

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	CreateUser(ctx context.Context, user domain.User) error
}

type PetRepository interface {
	CreatePet(ctx context.Context, pet domain.Pet) error
	FindPetByID(ctx context.Context, id string) (*domain.Pet, error)
	// ListPetsByOwner is the query-narrowed read used for non-admin callers.
	ListPetsByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error)
	// ListAllPets joins each pet with its owner's display identity.
	ListAllPets(ctx context.Context) ([]domain.PetWithOwner, error)
	UpdatePet(ctx context.Context, pet domain.Pet) error
	DeletePet(ctx context.Context, id string) error
}

type ReservationRepository interface {
	// CreateReservation inserts the reservation and its outbox event in one
	// transaction.
	CreateReservation(ctx context.Context, res domain.Reservation, outboxPayload []byte) error
	FindReservationByID(ctx context.Context, id string) (*domain.Reservation, error)
	ListReservationsByOwner(ctx context.Context, ownerID string) ([]domain.Reservation, error)
	ListAllReservations(ctx context.Context) ([]domain.Reservation, error)
	// UpdateReservationStatus persists the new status and the outbox event
	// in one transaction.
	UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus, outboxPayload []byte) error
	DeleteReservation(ctx context.Context, id string) error
}
