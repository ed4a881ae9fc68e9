package models

// User is an account row. PasswordHash is a bcrypt hash and never leaves
// the server.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
}
