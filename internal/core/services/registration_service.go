package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

type RegistrationService struct {
	userRepo ports.UserRepository
}

var _ ports.RegistrationService = (*RegistrationService)(nil)

func NewRegistrationService(userRepo ports.UserRepository) *RegistrationService {
	return &RegistrationService{userRepo: userRepo}
}

// Register creates a user account and returns its id. A duplicate email is
// detected by the store's unique index, so concurrent registrations of the
// same address resolve to exactly one winner.
func (s *RegistrationService) Register(ctx context.Context, email, firstName, lastName, password string) (string, error) {
	if email == "" || firstName == "" || lastName == "" || password == "" {
		return "", domain.ErrValidation
	}

	hash, err := HashPassword(password)
	if err != nil {
		return "", err
	}

	user := domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return "", err
	}

	return user.ID, nil
}
