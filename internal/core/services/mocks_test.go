package services

import (
	"context"
	"sort"
	"sync"

	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

// In-memory repository mocks in the usual shape: map storage, call
// tracking, and injectable errors.

type mockUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User

	FindByEmailCalls []string
	CreateUserCalls  []domain.User

	FindByEmailError error
	CreateUserError  error
}

var _ ports.UserRepository = (*mockUserRepo)(nil)

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[string]*domain.User)}
}

func (m *mockUserRepo) seed(user domain.User) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[user.Email] = &user
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.FindByEmailCalls = append(m.FindByEmailCalls, email)

	if m.FindByEmailError != nil {
		return nil, m.FindByEmailError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *mockUserRepo) CreateUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateUserCalls = append(m.CreateUserCalls, user)

	if m.CreateUserError != nil {
		return m.CreateUserError
	}
	if _, exists := m.users[user.Email]; exists {
		return domain.ErrDuplicateIdentity
	}
	m.users[user.Email] = &user
	return nil
}

type mockPetRepo struct {
	mu   sync.RWMutex
	pets map[string]*domain.Pet

	CreatePetError error
	FindPetError   error
}

var _ ports.PetRepository = (*mockPetRepo)(nil)

func newMockPetRepo() *mockPetRepo {
	return &mockPetRepo{pets: make(map[string]*domain.Pet)}
}

func (m *mockPetRepo) CreatePet(ctx context.Context, pet domain.Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreatePetError != nil {
		return m.CreatePetError
	}
	m.pets[pet.ID] = &pet
	return nil
}

func (m *mockPetRepo) FindPetByID(ctx context.Context, id string) (*domain.Pet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.FindPetError != nil {
		return nil, m.FindPetError
	}
	pet, ok := m.pets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *pet
	return &copied, nil
}

func (m *mockPetRepo) ListPetsByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pets := []domain.Pet{}
	for _, pet := range m.pets {
		if pet.OwnerID == ownerID {
			pets = append(pets, *pet)
		}
	}
	return pets, nil
}

func (m *mockPetRepo) ListAllPets(ctx context.Context) ([]domain.PetWithOwner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pets := []domain.PetWithOwner{}
	for _, pet := range m.pets {
		pets = append(pets, domain.PetWithOwner{Pet: *pet})
	}
	return pets, nil
}

func (m *mockPetRepo) UpdatePet(ctx context.Context, pet domain.Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pets[pet.ID]; !ok {
		return domain.ErrNotFound
	}
	m.pets[pet.ID] = &pet
	return nil
}

func (m *mockPetRepo) DeletePet(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.pets, id)
	return nil
}

type mockReservationRepo struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation

	// Outbox payloads recorded per call, in order.
	OutboxPayloads [][]byte
}

var _ ports.ReservationRepository = (*mockReservationRepo)(nil)

func newMockReservationRepo() *mockReservationRepo {
	return &mockReservationRepo{reservations: make(map[string]*domain.Reservation)}
}

func (m *mockReservationRepo) CreateReservation(ctx context.Context, res domain.Reservation, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[res.ID] = &res
	m.OutboxPayloads = append(m.OutboxPayloads, outboxPayload)
	return nil
}

func (m *mockReservationRepo) FindReservationByID(ctx context.Context, id string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (m *mockReservationRepo) ListReservationsByOwner(ctx context.Context, ownerID string) ([]domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Reservation{}
	for _, res := range m.reservations {
		if res.OwnerID == ownerID {
			out = append(out, *res)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *mockReservationRepo) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Reservation{}
	for _, res := range m.reservations {
		out = append(out, *res)
	}
	sortNewestFirst(out)
	return out, nil
}

func (m *mockReservationRepo) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return domain.ErrNotFound
	}
	res.Status = status
	m.OutboxPayloads = append(m.OutboxPayloads, outboxPayload)
	return nil
}

func (m *mockReservationRepo) DeleteReservation(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.reservations, id)
	return nil
}

func sortNewestFirst(reservations []domain.Reservation) {
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].CreatedAt.After(reservations[j].CreatedAt)
	})
}
