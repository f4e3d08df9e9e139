package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pawfectstay/booking-service/internal/adapters/middleware"
	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

type PetHandler struct {
	petService ports.PetService
}

func NewPetHandler(pets ports.PetService) *PetHandler {
	return &PetHandler{petService: pets}
}

type PetRequest struct {
	Name  string `json:"name"`
	Breed string `json:"breed"`
	Age   int    `json:"age"`
}

func (h *PetHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	var req PetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.petService.Create(r.Context(), identity, req.Name, req.Breed, req.Age)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CreatedResponse{ID: id})
}

// List serves both audiences of GET /dogs: a user sees their own pets, an
// admin sees every pet joined with its owner's identity.
func (h *PetHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	if identity.Role == domain.RoleAdmin {
		pets, err := h.petService.ListAll(r.Context(), identity)
		if err != nil {
			respondError(w, err)
			return
		}
		respondJSON(w, http.StatusOK, pets)
		return
	}

	pets, err := h.petService.ListOwn(r.Context(), identity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pets)
}

func (h *PetHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	pet, err := h.petService.Get(r.Context(), identity, r.PathValue("id"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, pet)
}

func (h *PetHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	var req PetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.petService.Update(r.Context(), identity, r.PathValue("id"), req.Name, req.Breed, req.Age); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "pet updated"})
}

func (h *PetHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	if err := h.petService.Delete(r.Context(), identity, r.PathValue("id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "pet deleted"})
}
