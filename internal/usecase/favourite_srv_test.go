package usecase

import (
	"context"
	"sync"
	"testing"

	"staynest/internal/data/entity"
	"staynest/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newFavouriteFixture(t *testing.T) (*memStore, FavouriteService) {
	t.Helper()
	store := newMemStore()
	return store, NewFavouriteService(memUsers{store}, memHomes{store}, zap.NewNop())
}

func favourite(homeID uuid.UUID) *request.AddFavouriteRequest {
	return &request.AddFavouriteRequest{HomeID: homeID.String()}
}

func TestFavouriteService_Add_Idempotent(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	require.NoError(t, svc.AddFavourite(context.Background(), user.ID.String(), favourite(home.ID)))
	require.NoError(t, svc.AddFavourite(context.Background(), user.ID.String(), favourite(home.ID)))

	assert.Equal(t, []uuid.UUID{home.ID}, store.favourites(user.ID))
}

func TestFavouriteService_Add_ConcurrentConverges(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, svc.AddFavourite(context.Background(), user.ID.String(), favourite(home.ID)))
		}()
	}
	wg.Wait()

	assert.Len(t, store.favourites(user.ID), 1)
}

func TestFavouriteService_Add_UserNotFound(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	home := store.addHome(uuid.New(), 100)

	err := svc.AddFavourite(context.Background(), uuid.NewString(), favourite(home.ID))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFavouriteService_Add_HomeNotFound(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)

	err := svc.AddFavourite(context.Background(), user.ID.String(), favourite(uuid.New()))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, store.favourites(user.ID))
}

func TestFavouriteService_Add_Unauthenticated(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	home := store.addHome(uuid.New(), 100)

	err := svc.AddFavourite(context.Background(), "", favourite(home.ID))

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestFavouriteService_Remove(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)
	kept := store.addHome(uuid.New(), 100)
	removed := store.addHome(uuid.New(), 100)

	require.NoError(t, svc.AddFavourite(context.Background(), user.ID.String(), favourite(kept.ID)))
	require.NoError(t, svc.AddFavourite(context.Background(), user.ID.String(), favourite(removed.ID)))

	require.NoError(t, svc.RemoveFavourite(context.Background(), user.ID.String(), removed.ID.String()))

	assert.Equal(t, []uuid.UUID{kept.ID}, store.favourites(user.ID))
}

func TestFavouriteService_Remove_AbsentIsNoop(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)
	require.NoError(t, svc.AddFavourite(context.Background(), user.ID.String(), favourite(home.ID)))

	err := svc.RemoveFavourite(context.Background(), user.ID.String(), uuid.NewString())

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{home.ID}, store.favourites(user.ID))
}

func TestFavouriteService_Remove_Unauthenticated(t *testing.T) {
	_, svc := newFavouriteFixture(t)

	err := svc.RemoveFavourite(context.Background(), "", uuid.NewString())

	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestFavouriteService_Remove_InvalidHomeID(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)

	err := svc.RemoveFavourite(context.Background(), user.ID.String(), "abc")

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestFavouriteService_List_DedupesAndDropsMissing(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)
	first := store.addHome(uuid.New(), 100)
	second := store.addHome(uuid.New(), 200)
	gone := uuid.New()

	// legacy rows may carry duplicates and dangling references
	store.mu.Lock()
	store.users[user.ID].Favourites = []uuid.UUID{second.ID, gone, first.ID, second.ID}
	store.mu.Unlock()

	homes, err := svc.ListFavourites(context.Background(), user.ID.String())

	require.NoError(t, err)
	require.Len(t, homes, 2)
	assert.Equal(t, second.ID.String(), homes[0].ID)
	assert.Equal(t, first.ID.String(), homes[1].ID)
}

func TestFavouriteService_List_Empty(t *testing.T) {
	store, svc := newFavouriteFixture(t)
	user := store.addUser(entity.UserTypeGuest)

	homes, err := svc.ListFavourites(context.Background(), user.ID.String())

	require.NoError(t, err)
	assert.NotNil(t, homes)
	assert.Empty(t, homes)
}
