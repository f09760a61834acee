package models

// User is an account record. Email is the identifying key.
type User struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Email        string `json:"email"`
	Number       string `json:"number"`
	PasswordHash string `json:"-"` // don’t expose hash
	DisplayImage string `json:"dp"`
}

// PublicView strips credential material for API responses.
func (u User) PublicView() User {
	u.PasswordHash = ""
	return u
}
