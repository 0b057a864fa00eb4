package usecase

import (
	"context"
	"errors"
	"slices"
	"sort"
	"sync"
	"time"

	"staynest/internal/data/entity"
	"staynest/internal/data/repository"

	"github.com/google/uuid"
)

var errStoreDown = errors.New("connection refused")

// memStore backs every repository port with maps so service behaviour can
// be checked without a database.
type memStore struct {
	mu       sync.Mutex
	users    map[uuid.UUID]*entity.User
	homes    map[uuid.UUID]*entity.Home
	bookings map[uuid.UUID]*entity.Booking
	sessions map[uuid.UUID]*entity.Session

	failWrites bool
	writes     int
}

func newMemStore() *memStore {
	return &memStore{
		users:    make(map[uuid.UUID]*entity.User),
		homes:    make(map[uuid.UUID]*entity.Home),
		bookings: make(map[uuid.UUID]*entity.Booking),
		sessions: make(map[uuid.UUID]*entity.Session),
	}
}

func (m *memStore) addUser(userType entity.UserType) *entity.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	user := &entity.User{
		Base:      entity.Base{ID: uuid.New(), CreatedAt: time.Now()},
		FirstName: "Test",
		Email:     uuid.NewString() + "@example.com",
		UserType:  userType,
	}
	m.users[user.ID] = user
	return user
}

func (m *memStore) addHome(host uuid.UUID, price float64) *entity.Home {
	m.mu.Lock()
	defer m.mu.Unlock()
	home := &entity.Home{
		BaseNoDelete: entity.BaseNoDelete{ID: uuid.New(), CreatedAt: time.Now()},
		HostID:       host,
		HouseName:    "Seaside Cottage",
		Price:        price,
		Location:     "Goa",
		Rating:       4.5,
	}
	m.homes[home.ID] = home
	return home
}

func (m *memStore) booking(id uuid.UUID) *entity.Booking {
	m.mu.Lock()
	defer m.mu.Unlock()
	b, ok := m.bookings[id]
	if !ok {
		return nil
	}
	clone := *b
	return &clone
}

func (m *memStore) bookingCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.bookings)
}

func (m *memStore) favourites(userID uuid.UUID) []uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()
	return slices.Clone(m.users[userID].Favourites)
}

func (m *memStore) writeCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}

// ==================== BookingRepository ====================

type memBookings struct{ *memStore }

func (r memBookings) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrites {
		return errStoreDown
	}
	r.writes++
	clone := *booking
	r.bookings[booking.ID] = &clone
	return nil
}

func (r memBookings) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	return r.booking(id), nil
}

func (r memBookings) FindActiveByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Booking
	for _, b := range r.bookings {
		if b.UserID == userID && b.Status == entity.BookingStatusConfirmed {
			clone := *b
			out = append(out, &clone)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID.String() < out[j].ID.String()
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r memBookings) Cancel(_ context.Context, id uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWrites {
		return false, errStoreDown
	}
	b, ok := r.bookings[id]
	if !ok || b.Status != entity.BookingStatusConfirmed {
		return false, nil
	}
	r.writes++
	b.Status = entity.BookingStatusCancelled
	return true, nil
}

// ==================== HomeRepository ====================

type memHomes struct{ *memStore }

func (r memHomes) Create(_ context.Context, home *entity.Home) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *home
	r.homes[home.ID] = &clone
	return nil
}

func (r memHomes) FindByID(_ context.Context, id uuid.UUID) (*entity.Home, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.homes[id]
	if !ok {
		return nil, nil
	}
	clone := *h
	return &clone, nil
}

func (r memHomes) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Home, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Home
	for _, id := range ids {
		if h, ok := r.homes[id]; ok {
			clone := *h
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r memHomes) all() []*entity.Home {
	out := make([]*entity.Home, 0, len(r.homes))
	for _, h := range r.homes {
		clone := *h
		out = append(out, &clone)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out
}

func (r memHomes) FindAll(_ context.Context, limit, offset int) ([]*entity.Home, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := r.all()
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r memHomes) CountAll(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.homes)), nil
}

func (r memHomes) FindByHostID(_ context.Context, hostID uuid.UUID) ([]*entity.Home, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Home
	for _, h := range r.all() {
		if h.HostID == hostID {
			out = append(out, h)
		}
	}
	return out, nil
}

func (r memHomes) Update(_ context.Context, home *entity.Home) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.homes[home.ID]; !ok {
		return repository.ErrNotFound
	}
	clone := *home
	r.homes[home.ID] = &clone
	return nil
}

func (r memHomes) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.homes[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.homes, id)
	return nil
}

// ==================== UserRepository ====================

type memUsers struct{ *memStore }

func (r memUsers) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

func (r memUsers) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *u
	clone.Favourites = slices.Clone(u.Favourites)
	return &clone, nil
}

func (r memUsers) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r memUsers) AddFavourite(_ context.Context, userID, homeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	if !slices.Contains(u.Favourites, homeID) {
		u.Favourites = append(u.Favourites, homeID)
	}
	return true, nil
}

func (r memUsers) RemoveFavourite(_ context.Context, userID, homeID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[userID]
	if !ok {
		return false, nil
	}
	u.Favourites = slices.DeleteFunc(u.Favourites, func(id uuid.UUID) bool { return id == homeID })
	return true, nil
}

// ==================== SessionRepository ====================

type memSessions struct{ *memStore }

func (r memSessions) Create(_ context.Context, session *entity.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *session
	r.sessions[session.Token] = &clone
	return nil
}

func (r memSessions) FindValidSession(_ context.Context, token uuid.UUID) (*entity.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || !s.Valid(time.Now()) {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r memSessions) Revoke(_ context.Context, token uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[token]
	if !ok || s.RevokedAt != nil {
		return repository.ErrNotFound
	}
	now := time.Now()
	s.RevokedAt = &now
	return nil
}
