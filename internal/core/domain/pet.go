package domain

import "time"

// Pet is an owned resource. OwnerID is set once at creation from the
// verified identity and is never reassignable.
type Pet struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Age       int       `json:"age"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PetWithOwner is the admin listing shape: the pet joined with its owner's
// display identity.
type PetWithOwner struct {
	Pet
	OwnerFirstName string `json:"owner_first_name"`
	OwnerLastName  string `json:"owner_last_name"`
	OwnerEmail     string `json:"owner_email"`
}
