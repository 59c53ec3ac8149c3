package entity

// Role is a closed authorization role set. Keeping it a named type
// (rather than a raw string compared ad hoc) means the authorization
// boundary can check it exhaustively and adding a role is a visible,
// compile-time change.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles. Records loaded
// from disk pass through this before they reach the auth boundary.
func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
