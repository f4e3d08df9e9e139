package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

// PetService applies the ownership guard in front of the pet repository.
// The owner of every pet is taken from the verified identity, never from
// the request payload.
type PetService struct {
	petRepo ports.PetRepository
}

var _ ports.PetService = (*PetService)(nil)

func NewPetService(petRepo ports.PetRepository) *PetService {
	return &PetService{petRepo: petRepo}
}

func (s *PetService) Create(ctx context.Context, identity domain.Identity, name, breed string, age int) (string, error) {
	if name == "" || breed == "" || age <= 0 {
		return "", domain.ErrValidation
	}

	pet := domain.Pet{
		ID:        uuid.NewString(),
		Name:      name,
		Breed:     breed,
		Age:       age,
		OwnerID:   identity.SubjectID,
		CreatedAt: time.Now(),
	}

	if err := s.petRepo.CreatePet(ctx, pet); err != nil {
		return "", err
	}
	return pet.ID, nil
}

func (s *PetService) Get(ctx context.Context, identity domain.Identity, id string) (*domain.Pet, error) {
	pet, err := s.petRepo.FindPetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !identity.CanAccess(pet.OwnerID) {
		return nil, domain.ErrForbidden
	}
	return pet, nil
}

// ListOwn is the query-narrowing mode of the ownership rule: instead of
// rejecting a collection read, the query is scoped to the caller.
func (s *PetService) ListOwn(ctx context.Context, identity domain.Identity) ([]domain.Pet, error) {
	return s.petRepo.ListPetsByOwner(ctx, identity.SubjectID)
}

func (s *PetService) ListAll(ctx context.Context, identity domain.Identity) ([]domain.PetWithOwner, error) {
	if identity.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.petRepo.ListAllPets(ctx)
}

func (s *PetService) Update(ctx context.Context, identity domain.Identity, id, name, breed string, age int) error {
	if name == "" || breed == "" || age <= 0 {
		return domain.ErrValidation
	}

	existing, err := s.petRepo.FindPetByID(ctx, id)
	if err != nil {
		return err
	}
	if !identity.CanAccess(existing.OwnerID) {
		return domain.ErrForbidden
	}

	// OwnerID and CreatedAt are immutable; only the mutable fields move.
	existing.Name = name
	existing.Breed = breed
	existing.Age = age
	return s.petRepo.UpdatePet(ctx, *existing)
}

func (s *PetService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	existing, err := s.petRepo.FindPetByID(ctx, id)
	if err != nil {
		return err
	}
	if !identity.CanAccess(existing.OwnerID) {
		return domain.ErrForbidden
	}
	return s.petRepo.DeletePet(ctx, id)
}
