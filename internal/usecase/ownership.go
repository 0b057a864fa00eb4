package usecase

import (
	"github.com/google/uuid"
)

// Owned is any record with a single owning user.
type Owned interface {
	OwnerID() uuid.UUID
}

// IsOwner reports whether actor owns record. The zero UUID owns nothing.
func IsOwner(actor uuid.UUID, record Owned) bool {
	return actor != uuid.Nil && record.OwnerID() == actor
}

// parseActor turns the session-derived user id into a UUID. A missing or
// malformed actor is never allowed to reach the store.
func parseActor(actorID string) (uuid.UUID, error) {
	if actorID == "" {
		return uuid.Nil, ErrUnauthenticated
	}

	id, err := uuid.Parse(actorID)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrUnauthenticated
	}

	return id, nil
}

func parseID(what, value string) (uuid.UUID, error) {
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, invalidInput("invalid %s ID format %q", what, value)
	}
	return id, nil
}
