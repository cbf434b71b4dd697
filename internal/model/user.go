package model

// User is a registered account. PasswordHash never leaves the service layer.
type User struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}
