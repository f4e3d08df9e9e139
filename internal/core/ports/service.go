package ports

import (
	"context"

	"github.com/pawfectstay/booking-service/internal/core/domain"
)

// TokenService issues and verifies the signed bearer credential.
type TokenService interface {
	Issue(identity domain.Identity) (string, error)
	Verify(token string) (domain.Identity, error)
}

type AuthService interface {
	// Login returns a signed user token for a valid email/password pair.
	Login(ctx context.Context, email, password string) (string, error)
	// AdminLogin checks the fixed administrator credential pair and returns
	// a role=admin token.
	AdminLogin(ctx context.Context, username, password string) (string, error)
}

type RegistrationService interface {
	Register(ctx context.Context, email, firstName, lastName, password string) (string, error)
}

type PetService interface {
	Create(ctx context.Context, identity domain.Identity, name, breed string, age int) (string, error)
	Get(ctx context.Context, identity domain.Identity, id string) (*domain.Pet, error)
	ListOwn(ctx context.Context, identity domain.Identity) ([]domain.Pet, error)
	ListAll(ctx context.Context, identity domain.Identity) ([]domain.PetWithOwner, error)
	Update(ctx context.Context, identity domain.Identity, id, name, breed string, age int) error
	Delete(ctx context.Context, identity domain.Identity, id string) error
}

type ReservationService interface {
	Create(ctx context.Context, identity domain.Identity, petName, duration, date, timeOfDay, note string) (string, error)
	ListOwn(ctx context.Context, identity domain.Identity) ([]domain.Reservation, error)
	ListAll(ctx context.Context, identity domain.Identity) ([]domain.Reservation, error)
	Transition(ctx context.Context, identity domain.Identity, id, status string) error
	Delete(ctx context.Context, identity domain.Identity, id string) error
}
