package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the two known roles. Tokens carrying
// anything else are rejected at verification time.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the verified principal attached to a request context after
// token verification. Handlers read it from the context only; a caller can
// never supply it through the request body or query string.
type Identity struct {
	SubjectID string
	Email     string
	FirstName string
	LastName  string
	Role      Role
}

// CanAccess implements the ownership rule: an admin may act on any
// resource, a user only on resources they own.
func (id Identity) CanAccess(ownerID string) bool {
	if id.Role == RoleAdmin {
		return true
	}
	return id.SubjectID == ownerID
}
