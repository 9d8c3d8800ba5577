// Package user holds the user account model consumed by the auth flow.
package user

// User is an office staff account, persisted as one JSON document per
// username. Passwords are stored only as bcrypt hashes.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	CreatedAt    string `json:"createdAt"`
}
