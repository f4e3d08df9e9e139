package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/pawfectstay/booking-service/internal/adapters/handler"
	"github.com/pawfectstay/booking-service/internal/adapters/middleware"
	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
	"github.com/pawfectstay/booking-service/internal/core/services"

	"golang.org/x/crypto/bcrypt"
)

// The handler tests run the real services and middleware against in-memory
// repositories, wired the same way cmd/api wires them, so the route
// contracts (status codes, ownership, lifecycle) are exercised end to end.

var testSecret = []byte("handler-test-secret")

type memUserRepo struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func (m *memUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.users[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return user, nil
}

func (m *memUserRepo) CreateUser(ctx context.Context, user domain.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.users[user.Email]; exists {
		return domain.ErrDuplicateIdentity
	}
	m.users[user.Email] = &user
	return nil
}

type memPetRepo struct {
	mu   sync.RWMutex
	pets map[string]*domain.Pet
}

func (m *memPetRepo) CreatePet(ctx context.Context, pet domain.Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pets[pet.ID] = &pet
	return nil
}

func (m *memPetRepo) FindPetByID(ctx context.Context, id string) (*domain.Pet, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pet, ok := m.pets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *pet
	return &copied, nil
}

func (m *memPetRepo) ListPetsByOwner(ctx context.Context, ownerID string) ([]domain.Pet, error) {
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

func (m *memPetRepo) ListAllPets(ctx context.Context) ([]domain.PetWithOwner, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	pets := []domain.PetWithOwner{}
	for _, pet := range m.pets {
		pets = append(pets, domain.PetWithOwner{Pet: *pet})
	}
	return pets, nil
}

func (m *memPetRepo) UpdatePet(ctx context.Context, pet domain.Pet) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pets[pet.ID]; !ok {
		return domain.ErrNotFound
	}
	m.pets[pet.ID] = &pet
	return nil
}

func (m *memPetRepo) DeletePet(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.pets[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.pets, id)
	return nil
}

type memReservationRepo struct {
	mu           sync.RWMutex
	reservations map[string]*domain.Reservation
}

func (m *memReservationRepo) CreateReservation(ctx context.Context, res domain.Reservation, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reservations[res.ID] = &res
	return nil
}

func (m *memReservationRepo) FindReservationByID(ctx context.Context, id string) (*domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	res, ok := m.reservations[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	copied := *res
	return &copied, nil
}

func (m *memReservationRepo) ListReservationsByOwner(ctx context.Context, ownerID string) ([]domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Reservation{}
	for _, res := range m.reservations {
		if res.OwnerID == ownerID {
			out = append(out, *res)
		}
	}
	return out, nil
}

func (m *memReservationRepo) ListAllReservations(ctx context.Context) ([]domain.Reservation, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := []domain.Reservation{}
	for _, res := range m.reservations {
		out = append(out, *res)
	}
	return out, nil
}

func (m *memReservationRepo) UpdateReservationStatus(ctx context.Context, id string, status domain.ReservationStatus, outboxPayload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	res, ok := m.reservations[id]
	if !ok {
		return domain.ErrNotFound
	}
	res.Status = status
	return nil
}

func (m *memReservationRepo) DeleteReservation(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.reservations[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.reservations, id)
	return nil
}

var (
	_ ports.UserRepository        = (*memUserRepo)(nil)
	_ ports.PetRepository         = (*memPetRepo)(nil)
	_ ports.ReservationRepository = (*memReservationRepo)(nil)
)

func newTestServer() *httptest.Server {
	userRepo := &memUserRepo{users: make(map[string]*domain.User)}
	petRepo := &memPetRepo{pets: make(map[string]*domain.Pet)}
	reservationRepo := &memReservationRepo{reservations: make(map[string]*domain.Reservation)}

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)

	tokenService := services.NewJWTTokenService(testSecret)
	authService := services.NewAuthService(userRepo, tokenService, "admin", adminHash, nil)
	registrationService := services.NewRegistrationService(userRepo)
	petService := services.NewPetService(petRepo)
	reservationService := services.NewReservationService(reservationRepo, false)

	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	authHandler := handler.NewAuthHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(registrationService)
	petHandler := handler.NewPetHandler(petService)
	reservationHandler := handler.NewReservationHandler(reservationService)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /register", registrationHandler.Register)
	mux.HandleFunc("POST /login", authHandler.Login)
	mux.HandleFunc("POST /admin/login", authHandler.AdminLogin)
	mux.HandleFunc("POST /dogs", authMiddleware.RequireUser(petHandler.Create))
	mux.HandleFunc("GET /dogs", authMiddleware.RequireUser(petHandler.List))
	mux.HandleFunc("GET /dogs/{id}", authMiddleware.RequireUser(petHandler.Get))
	mux.HandleFunc("PUT /dogs/{id}", authMiddleware.RequireUser(petHandler.Update))
	mux.HandleFunc("DELETE /dogs/{id}", authMiddleware.RequireUser(petHandler.Delete))
	mux.HandleFunc("POST /reservations", authMiddleware.RequireUser(reservationHandler.Create))
	mux.HandleFunc("GET /reservations/user", authMiddleware.RequireUser(reservationHandler.ListOwn))
	mux.HandleFunc("GET /admin/reservations", authMiddleware.RequireAdmin(reservationHandler.ListAll))
	mux.HandleFunc("PUT /admin/reservations/{id}", authMiddleware.RequireAdmin(reservationHandler.UpdateStatus))
	mux.HandleFunc("DELETE /admin/reservations/{id}", authMiddleware.RequireAdmin(reservationHandler.Delete))

	return httptest.NewServer(mux)
}
