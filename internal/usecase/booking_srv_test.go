package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"staynest/internal/data/entity"
	"staynest/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newBookingFixture(t *testing.T) (*memStore, BookingService) {
	t.Helper()
	store := newMemStore()
	return store, NewBookingService(memBookings{store}, memHomes{store}, zap.NewNop())
}

func book(homeID uuid.UUID, checkIn, checkOut string) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		HomeID:   homeID.String(),
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}
}

func TestBookingService_Create_PricesByNights(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	booking, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, guest.ID.String(), booking.User)
	assert.Equal(t, home.ID.String(), booking.Home)
	assert.Equal(t, "2024-01-01", booking.CheckIn)
	assert.Equal(t, "2024-01-04", booking.CheckOut)
	assert.Equal(t, 3, booking.Nights)
	assert.Equal(t, 300.0, booking.TotalPrice)
	assert.Equal(t, entity.BookingStatusConfirmed, booking.Status)
	require.NotNil(t, booking.HomeDetails)
	assert.Equal(t, "Seaside Cottage", booking.HomeDetails.HouseName)

	stored := store.booking(uuid.MustParse(booking.ID))
	require.NotNil(t, stored)
	assert.Equal(t, 300.0, stored.TotalPrice)
}

func TestBookingService_Create_TotalMatchesNightsTimesPrice(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)

	cases := []struct {
		name     string
		price    float64
		checkIn  string
		checkOut string
		want     float64
	}{
		{"single night", 80, "2024-03-10", "2024-03-11", 80},
		{"across month end", 55.5, "2024-01-30", "2024-02-02", 166.5},
		{"leap day", 120, "2024-02-28", "2024-03-01", 240},
		{"across year end", 99.99, "2023-12-30", "2024-01-02", 299.97},
		{"free listing", 0, "2024-05-01", "2024-05-08", 0},
		{"over a dst change", 100, "2024-03-09", "2024-03-12", 300},
		{"four centuries", 1, "1700-01-01", "2100-01-01", 146097},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			home := store.addHome(uuid.New(), tc.price)

			booking, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, tc.checkIn, tc.checkOut))

			require.NoError(t, err)
			assert.InDelta(t, tc.want, booking.TotalPrice, 0.0001)
		})
	}
}

func TestBookingService_Create_InvalidDateRange(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"reversed", "2024-01-04", "2024-01-01"},
		{"same day", "2024-01-01", "2024-01-01"},
		{"a year backwards", "2025-06-01", "2024-06-01"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, tc.checkIn, tc.checkOut))

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDateRange)
		})
	}

	assert.Zero(t, store.bookingCount())
}

func TestBookingService_Create_LongStayNights(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 1)

	booking, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "1700-01-01", "2100-01-01"))

	require.NoError(t, err)
	assert.Equal(t, 146097, booking.Nights)
	assert.Equal(t, 146097.0, booking.TotalPrice)
}

func TestBookingService_Create_TotalTooLarge(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 9999999999.99)

	_, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-03"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, store.bookingCount())
}

func TestBookingService_Create_HomeNotFound(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)

	_, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(uuid.New(), "2024-01-01", "2024-01-04"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Zero(t, store.bookingCount())
}

func TestBookingService_Create_Unauthenticated(t *testing.T) {
	store, svc := newBookingFixture(t)
	home := store.addHome(uuid.New(), 100)

	for _, actor := range []string{"", "not-a-uuid", uuid.Nil.String()} {
		_, err := svc.CreateBooking(context.Background(), actor, book(home.ID, "2024-01-01", "2024-01-04"))

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthenticated, "actor %q", actor)
	}
	assert.Zero(t, store.bookingCount())
}

func TestBookingService_Create_InvalidInput(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	cases := []*request.CreateBookingRequest{
		{HomeID: "nope", CheckIn: "2024-01-01", CheckOut: "2024-01-04"},
		{HomeID: home.ID.String(), CheckIn: "01/01/2024", CheckOut: "2024-01-04"},
		{HomeID: home.ID.String(), CheckIn: "2024-01-01", CheckOut: ""},
	}

	for _, req := range cases {
		_, err := svc.CreateBooking(context.Background(), guest.ID.String(), req)

		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	assert.Zero(t, store.bookingCount())
}

func TestBookingService_Create_StoreFailure(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)
	store.failWrites = true

	_, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrStoreFailure)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestBookingService_Create_PriceFrozenAfterListingChange(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	created, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	store.mu.Lock()
	store.homes[home.ID].Price = 250
	store.mu.Unlock()

	got, err := svc.GetBooking(context.Background(), created.ID, guest.ID.String())

	require.NoError(t, err)
	assert.Equal(t, 300.0, got.TotalPrice)
	assert.Equal(t, 250.0, got.HomeDetails.Price)
}

func TestBookingService_Cancel_Idempotent(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	created, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)
	writesAfterCreate := store.writeCount()

	first, err := svc.CancelBooking(context.Background(), created.ID, guest.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, first.Status)

	second, err := svc.CancelBooking(context.Background(), created.ID, guest.ID.String())
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, second.Status)

	assert.Equal(t, writesAfterCreate+1, store.writeCount())
	assert.Equal(t, entity.BookingStatusCancelled, store.booking(uuid.MustParse(created.ID)).Status)
}

func TestBookingService_Cancel_ConcurrentOwnerRetries(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	created, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CancelBooking(context.Background(), created.ID, guest.ID.String())
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	// one create, one effective cancel
	assert.Equal(t, 2, store.writeCount())
}

func TestBookingService_Cancel_NonOwnerForbidden(t *testing.T) {
	store, svc := newBookingFixture(t)
	owner := store.addUser(entity.UserTypeGuest)
	other := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	created, err := svc.CreateBooking(context.Background(), owner.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), created.ID, other.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, entity.BookingStatusConfirmed, store.booking(uuid.MustParse(created.ID)).Status)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)

	_, err := svc.CancelBooking(context.Background(), uuid.NewString(), guest.ID.String())

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingService_Cancel_Unauthenticated(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	created, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), created.ID, "")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthenticated)
	assert.Equal(t, entity.BookingStatusConfirmed, store.booking(uuid.MustParse(created.ID)).Status)
}

func TestBookingService_ListActive_OnlyConfirmed(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	other := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	kept, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)
	cancelled, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-02-01", "2024-02-03"))
	require.NoError(t, err)
	_, err = svc.CreateBooking(context.Background(), other.ID.String(), book(home.ID, "2024-03-01", "2024-03-03"))
	require.NoError(t, err)

	_, err = svc.CancelBooking(context.Background(), cancelled.ID, guest.ID.String())
	require.NoError(t, err)

	active, err := svc.ListActiveBookings(context.Background(), guest.ID.String())

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, kept.ID, active[0].ID)
	require.NotNil(t, active[0].HomeDetails)
	assert.Equal(t, home.ID.String(), active[0].HomeDetails.ID)
}

func TestBookingService_ListActive_StableOrder(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	for i := range 5 {
		in := time.Date(2024, 1, 1+i*3, 0, 0, 0, 0, time.UTC)
		_, err := svc.CreateBooking(context.Background(), guest.ID.String(),
			book(home.ID, in.Format("2006-01-02"), in.AddDate(0, 0, 2).Format("2006-01-02")))
		require.NoError(t, err)
	}

	first, err := svc.ListActiveBookings(context.Background(), guest.ID.String())
	require.NoError(t, err)
	second, err := svc.ListActiveBookings(context.Background(), guest.ID.String())
	require.NoError(t, err)

	assert.Len(t, first, 5)
	assert.Equal(t, first, second)
}

func TestBookingService_ListActive_DeletedHomeKeepsBooking(t *testing.T) {
	store, svc := newBookingFixture(t)
	guest := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	_, err := svc.CreateBooking(context.Background(), guest.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	store.mu.Lock()
	delete(store.homes, home.ID)
	store.mu.Unlock()

	active, err := svc.ListActiveBookings(context.Background(), guest.ID.String())

	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Nil(t, active[0].HomeDetails)
	assert.Equal(t, home.ID.String(), active[0].Home)
}

func TestBookingService_Get_OwnerOnly(t *testing.T) {
	store, svc := newBookingFixture(t)
	owner := store.addUser(entity.UserTypeGuest)
	other := store.addUser(entity.UserTypeGuest)
	home := store.addHome(uuid.New(), 100)

	created, err := svc.CreateBooking(context.Background(), owner.ID.String(), book(home.ID, "2024-01-01", "2024-01-04"))
	require.NoError(t, err)

	got, err := svc.GetBooking(context.Background(), created.ID, owner.ID.String())
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.GetBooking(context.Background(), created.ID, other.ID.String())
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.GetBooking(context.Background(), "bad-id", owner.ID.String())
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDaysBetween(t *testing.T) {
	day := func(s string) time.Time {
		d, err := time.Parse("2006-01-02", s)
		require.NoError(t, err)
		return d
	}

	assert.Equal(t, 3, DaysBetween(day("2024-01-01"), day("2024-01-04")))
	assert.Equal(t, -3, DaysBetween(day("2024-01-04"), day("2024-01-01")))
	assert.Equal(t, 0, DaysBetween(day("2024-01-01"), day("2024-01-01")))
	assert.Equal(t, 366, DaysBetween(day("2024-01-01"), day("2025-01-01")))
	assert.Equal(t, 146097, DaysBetween(day("1700-01-01"), day("2100-01-01")))
	assert.Equal(t, -146097, DaysBetween(day("2100-01-01"), day("1700-01-01")))

	// time of day is ignored
	late := time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)
	early := time.Date(2024, 1, 2, 0, 1, 0, 0, time.UTC)
	assert.Equal(t, 1, DaysBetween(late, early))
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 300.0, TotalPrice(3, 100))
	assert.Equal(t, 0.3, TotalPrice(3, 0.1))
	assert.Equal(t, 0.0, TotalPrice(5, 0))
}
