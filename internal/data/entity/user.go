package entity

import "github.com/google/uuid"

type UserType string

const (
	UserTypeGuest UserType = "guest"
	UserTypeHost  UserType = "host"
)

type User struct {
	Base
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	UserType     UserType `db:"user_type"`
	// Favourites is stored as an ordered array. Rows written before writes
	// were made idempotent may still hold duplicates.
	Favourites []uuid.UUID `db:"favourites"`
}

func (u *User) IsHost() bool {
	return u.UserType == UserTypeHost
}
