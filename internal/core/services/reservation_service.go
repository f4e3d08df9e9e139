package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

// ReservationService owns the reservation lifecycle. Every reservation is
// created pending; only an administrator moves it to accepted or declined,
// and only an administrator deletes one. Lifecycle changes are written to
// the outbox in the same transaction as the mutation.
type ReservationService struct {
	resRepo           ports.ReservationRepository
	allowRetransition bool
}

var _ ports.ReservationService = (*ReservationService)(nil)

func NewReservationService(resRepo ports.ReservationRepository, allowRetransition bool) *ReservationService {
	return &ReservationService{
		resRepo:           resRepo,
		allowRetransition: allowRetransition,
	}
}

func (s *ReservationService) Create(ctx context.Context, identity domain.Identity, petName, duration, date, timeOfDay, note string) (string, error) {
	if petName == "" || duration == "" || date == "" || timeOfDay == "" {
		return "", domain.ErrValidation
	}

	res := domain.Reservation{
		ID:        uuid.NewString(),
		PetName:   petName,
		Duration:  duration,
		Date:      date,
		Time:      timeOfDay,
		Note:      note,
		OwnerID:   identity.SubjectID,
		Status:    domain.StatusPending,
		CreatedAt: time.Now(),
	}

	payload, err := json.Marshal(ports.ReservationEvent{
		ReservationID: res.ID,
		OwnerID:       res.OwnerID,
		PetName:       res.PetName,
		Status:        string(res.Status),
	})
	if err != nil {
		return "", err
	}

	if err := s.resRepo.CreateReservation(ctx, res, payload); err != nil {
		return "", err
	}
	return res.ID, nil
}

func (s *ReservationService) ListOwn(ctx context.Context, identity domain.Identity) ([]domain.Reservation, error) {
	return s.resRepo.ListReservationsByOwner(ctx, identity.SubjectID)
}

func (s *ReservationService) ListAll(ctx context.Context, identity domain.Identity) ([]domain.Reservation, error) {
	if identity.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.resRepo.ListAllReservations(ctx)
}

// Transition validates the requested status against the state machine and
// persists it. The caller must be an administrator; the status value comes
// from the request and is parsed before any state is touched.
func (s *ReservationService) Transition(ctx context.Context, identity domain.Identity, id, status string) error {
	if identity.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	target, err := domain.ParseReservationStatus(status)
	if err != nil {
		return err
	}

	existing, err := s.resRepo.FindReservationByID(ctx, id)
	if err != nil {
		return err
	}

	if err := domain.CanTransition(existing.Status, target, s.allowRetransition); err != nil {
		return err
	}

	payload, err := json.Marshal(ports.ReservationEvent{
		ReservationID: existing.ID,
		OwnerID:       existing.OwnerID,
		PetName:       existing.PetName,
		Status:        string(target),
	})
	if err != nil {
		return err
	}

	return s.resRepo.UpdateReservationStatus(ctx, id, target, payload)
}

func (s *ReservationService) Delete(ctx context.Context, identity domain.Identity, id string) error {
	if identity.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}
	if _, err := s.resRepo.FindReservationByID(ctx, id); err != nil {
		return err
	}
	return s.resRepo.DeleteReservation(ctx, id)
}
