package repository

import (
	"errors"

	"staynest/pkg/database"

	"go.uber.org/zap"
)

var (
	// ErrNotFound is returned by writes that matched no row. Lookups
	// return nil, nil instead.
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

const uniqueViolation = "23505"

type Repository struct {
	User    UserRepository
	Session SessionRepository
	Home    HomeRepository
	Booking BookingRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Session: NewSessionRepository(db, log),
		Home:    NewHomeRepository(db, log),
		Booking: NewBookingRepository(db, log),
	}
}
