package domain

import "time"

// Actor is the resolved identity performing an operation, as asserted by a
// verified bearer token claim.
type Actor struct {
	ID      string
	IsAdmin bool
}

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	// Favorites holds product IDs in insertion order. May be empty.
	Favorites []string  `json:"favorites,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasFavorite reports whether productID is already in the favorites list.
func (u *User) HasFavorite(productID string) bool {
	for _, id := range u.Favorites {
		if id == productID {
			return true
		}
	}
	return false
}
