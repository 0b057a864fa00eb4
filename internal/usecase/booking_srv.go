package usecase

import (
	"context"
	"fmt"
	"math"
	"time"

	"staynest/internal/data/entity"
	"staynest/internal/data/repository"
	"staynest/internal/dto/request"
	"staynest/internal/dto/response"
	"staynest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxTotalPrice is the largest amount bookings.total_price (NUMERIC(12,2)) holds.
const MaxTotalPrice = 9999999999.99

// BookingService is the booking ledger: it prices, records and cancels
// reservations on behalf of the acting user.
type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	ListActiveBookings(ctx context.Context, userID string) ([]response.BookingResponse, error)
	GetBooking(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error)
}

type bookingService struct {
	bookings repository.BookingRepository
	homes    repository.HomeRepository
	log      *zap.Logger
}

func NewBookingService(bookings repository.BookingRepository, homes repository.HomeRepository, log *zap.Logger) BookingService {
	return &bookingService{
		bookings: bookings,
		homes:    homes,
		log:      log.With(zap.String("service", "booking")),
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	actor, err := parseActor(userID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create booking validation failed", zap.Any("errors", errs))
		return nil, invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	homeID, err := parseID("home", req.HomeID)
	if err != nil {
		return nil, err
	}

	checkIn, err := parseDate("check-in", req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check-out", req.CheckOut)
	if err != nil {
		return nil, err
	}

	home, err := s.homes.FindByID(ctx, homeID)
	if err != nil {
		return nil, storeFailure("load home", err)
	}
	if home == nil {
		return nil, notFound("home", req.HomeID)
	}

	nights := DaysBetween(checkIn, checkOut)
	if nights <= 0 {
		return nil, fmt.Errorf("%w: %s to %s", ErrInvalidDateRange, req.CheckIn, req.CheckOut)
	}

	total := TotalPrice(nights, home.Price)
	if total > MaxTotalPrice {
		return nil, invalidInput("total price %.2f for %d nights exceeds %.2f", total, nights, MaxTotalPrice)
	}

	now := time.Now()
	booking := &entity.Booking{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:     actor,
		HomeID:     home.ID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: total,
		Status:     entity.BookingStatusConfirmed,
	}

	if err := s.bookings.Create(ctx, booking); err != nil {
		s.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("home_id", req.HomeID),
		)
		return nil, storeFailure("create booking", err)
	}

	s.log.Info("Booking created",
		zap.String("booking_id", booking.ID.String()),
		zap.String("user_id", userID),
		zap.String("home_id", req.HomeID),
		zap.Int("nights", nights),
		zap.Float64("total_price", booking.TotalPrice),
	)

	resp := response.BookingToResponse(booking, home)
	return &resp, nil
}

func (s *bookingService) ListActiveBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	actor, err := parseActor(userID)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookings.FindActiveByUserID(ctx, actor)
	if err != nil {
		s.log.Error("Failed to get active bookings", zap.Error(err), zap.String("user_id", userID))
		return nil, storeFailure("list bookings", err)
	}

	homeIDs := make([]uuid.UUID, 0, len(bookings))
	for _, booking := range bookings {
		homeIDs = append(homeIDs, booking.HomeID)
	}

	homes, err := s.homes.FindByIDs(ctx, uniqueIDs(homeIDs))
	if err != nil {
		s.log.Error("Failed to load booked homes", zap.Error(err), zap.String("user_id", userID))
		return nil, storeFailure("load booked homes", err)
	}

	byID := make(map[uuid.UUID]*entity.Home, len(homes))
	for _, home := range homes {
		byID[home.ID] = home
	}

	result := make([]response.BookingResponse, len(bookings))
	for i, booking := range bookings {
		result[i] = response.BookingToResponse(booking, byID[booking.HomeID])
	}

	s.log.Debug("Active bookings retrieved",
		zap.String("user_id", userID),
		zap.Int("count", len(result)),
	)

	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error) {
	actor, err := parseActor(userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.ownedBooking(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}

	home, err := s.homes.FindByID(ctx, booking.HomeID)
	if err != nil {
		return nil, storeFailure("load booked home", err)
	}

	resp := response.BookingToResponse(booking, home)
	return &resp, nil
}

// CancelBooking is idempotent: cancelling an already cancelled booking
// succeeds without another write.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error) {
	actor, err := parseActor(userID)
	if err != nil {
		return nil, err
	}

	booking, err := s.ownedBooking(ctx, bookingID, actor)
	if err != nil {
		return nil, err
	}

	if booking.IsCancelled() {
		resp := response.BookingToResponse(booking, nil)
		return &resp, nil
	}

	changed, err := s.bookings.Cancel(ctx, booking.ID)
	if err != nil {
		s.log.Error("Failed to cancel booking",
			zap.Error(err),
			zap.String("booking_id", bookingID),
		)
		return nil, storeFailure("cancel booking", err)
	}

	booking.Status = entity.BookingStatusCancelled
	if changed {
		booking.UpdatedAt = time.Now()
		s.log.Info("Booking cancelled",
			zap.String("booking_id", bookingID),
			zap.String("user_id", userID),
		)
	}

	resp := response.BookingToResponse(booking, nil)
	return &resp, nil
}

func (s *bookingService) ownedBooking(ctx context.Context, bookingID string, actor uuid.UUID) (*entity.Booking, error) {
	id, err := parseID("booking", bookingID)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookings.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure("load booking", err)
	}
	if booking == nil {
		return nil, notFound("booking", bookingID)
	}

	if !IsOwner(actor, booking) {
		s.log.Warn("Booking access by non-owner",
			zap.String("booking_id", bookingID),
			zap.String("actor_id", actor.String()),
		)
		return nil, fmt.Errorf("booking %s: %w", bookingID, ErrForbidden)
	}

	return booking, nil
}

// ==================== HELPERS ====================

func parseDate(field, value string) (time.Time, error) {
	date, err := time.Parse(response.DateLayout, value)
	if err != nil {
		return time.Time{}, invalidInput("invalid %s date %q, expected YYYY-MM-DD", field, value)
	}
	return date, nil
}

// DaysBetween counts whole calendar days from checkIn to checkOut. It is
// negative when checkOut comes first.
func DaysBetween(checkIn, checkOut time.Time) int {
	return entity.NightsBetween(checkIn, checkOut)
}

// TotalPrice is nights times the nightly price, rounded to cents.
func TotalPrice(nights int, pricePerNight float64) float64 {
	return math.Round(float64(nights)*pricePerNight*100) / 100
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
