package entity

// User is the aggregate root for the user domain.
// Passwords are stored as bcrypt hashes in PasswordHash.
// AvatarURL is only ever set through the avatar upload flow.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	Role         Role   `json:"role"`
	AvatarURL    string `json:"avatarUrl,omitempty"`
}
