package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/pawfectstay/booking-service/internal/adapters/middleware"
	"github.com/pawfectstay/booking-service/internal/core/domain"
	"github.com/pawfectstay/booking-service/internal/core/ports"
)

type ReservationHandler struct {
	reservationService ports.ReservationService
}

func NewReservationHandler(reservations ports.ReservationService) *ReservationHandler {
	return &ReservationHandler{reservationService: reservations}
}

type ReservationRequest struct {
	PetName  string `json:"pet_name"`
	Duration string `json:"duration"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Note     string `json:"note"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}

// ReservationResponse carries the raw status plus its display label. The
// label is derived on every read, never read back from storage.
type ReservationResponse struct {
	ID          string    `json:"id"`
	PetName     string    `json:"pet_name"`
	Duration    string    `json:"duration"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	Note        string    `json:"note,omitempty"`
	OwnerID     string    `json:"owner_id"`
	Status      string    `json:"status"`
	StatusLabel string    `json:"status_label"`
	CreatedAt   time.Time `json:"created_at"`
}

func toReservationResponse(res domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          res.ID,
		PetName:     res.PetName,
		Duration:    res.Duration,
		Date:        res.Date,
		Time:        res.Time,
		Note:        res.Note,
		OwnerID:     res.OwnerID,
		Status:      string(res.Status),
		StatusLabel: res.StatusLabel(),
		CreatedAt:   res.CreatedAt,
	}
}

func toReservationResponses(reservations []domain.Reservation) []ReservationResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, res := range reservations {
		out = append(out, toReservationResponse(res))
	}
	return out
}

func (h *ReservationHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	var req ReservationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	id, err := h.reservationService.Create(r.Context(), identity, req.PetName, req.Duration, req.Date, req.Time, req.Note)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, struct {
		CreatedResponse
		Status string `json:"status"`
	}{CreatedResponse{ID: id}, string(domain.StatusPending)})
}

func (h *ReservationHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	reservations, err := h.reservationService.ListOwn(r.Context(), identity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReservationResponses(reservations))
}

func (h *ReservationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	reservations, err := h.reservationService.ListAll(r.Context(), identity)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, toReservationResponses(reservations))
}

func (h *ReservationHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	var req StatusUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.reservationService.Transition(r.Context(), identity, r.PathValue("id"), req.Status); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "reservation updated"})
}

func (h *ReservationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		respondError(w, domain.ErrMissingCredential)
		return
	}

	if err := h.reservationService.Delete(r.Context(), identity, r.PathValue("id")); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"message": "reservation deleted"})
}
