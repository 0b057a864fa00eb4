package adaptor

import (
	"context"

	"staynest/internal/dto/request"
	"staynest/internal/dto/response"

	"github.com/stretchr/testify/mock"
)

type mockBookingService struct{ mock.Mock }

func (m *mockBookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	args := m.Called(ctx, userID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) ListActiveBookings(ctx context.Context, userID string) ([]response.BookingResponse, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) GetBooking(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, userID)
	if v := args.Get(0); v != nil {
		return v.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingService) CancelBooking(ctx context.Context, bookingID, userID string) (*response.BookingResponse, error) {
	args := m.Called(ctx, bookingID, userID)
	if v := args.Get(0); v != nil {
		return v.(*response.BookingResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockFavouriteService struct{ mock.Mock }

func (m *mockFavouriteService) AddFavourite(ctx context.Context, userID string, req *request.AddFavouriteRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *mockFavouriteService) RemoveFavourite(ctx context.Context, userID, homeID string) error {
	return m.Called(ctx, userID, homeID).Error(0)
}

func (m *mockFavouriteService) ListFavourites(ctx context.Context, userID string) ([]response.HomeResponse, error) {
	args := m.Called(ctx, userID)
	if v := args.Get(0); v != nil {
		return v.([]response.HomeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockHomeService struct{ mock.Mock }

func (m *mockHomeService) GetHomes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeResponse], error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.PaginatedResponse[response.HomeResponse]), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHomeService) GetHomeByID(ctx context.Context, homeID string) (*response.HomeResponse, error) {
	args := m.Called(ctx, homeID)
	if v := args.Get(0); v != nil {
		return v.(*response.HomeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHomeService) GetHostHomes(ctx context.Context, hostID string) ([]response.HomeResponse, error) {
	args := m.Called(ctx, hostID)
	if v := args.Get(0); v != nil {
		return v.([]response.HomeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHomeService) CreateHome(ctx context.Context, hostID string, req *request.HomeRequest) (*response.HomeResponse, error) {
	args := m.Called(ctx, hostID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.HomeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHomeService) UpdateHome(ctx context.Context, homeID, hostID string, req *request.HomeRequest) (*response.HomeResponse, error) {
	args := m.Called(ctx, homeID, hostID, req)
	if v := args.Get(0); v != nil {
		return v.(*response.HomeResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockHomeService) DeleteHome(ctx context.Context, homeID, hostID string) error {
	return m.Called(ctx, homeID, hostID).Error(0)
}

type mockAuthService struct{ mock.Mock }

func (m *mockAuthService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.UserResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, req *request.LoginRequest) (*response.AuthResponse, error) {
	args := m.Called(ctx, req)
	if v := args.Get(0); v != nil {
		return v.(*response.AuthResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockAuthService) Logout(ctx context.Context, token string) error {
	return m.Called(ctx, token).Error(0)
}
