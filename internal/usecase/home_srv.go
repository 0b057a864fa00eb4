package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"staynest/internal/data/entity"
	"staynest/internal/data/repository"
	"staynest/internal/dto/request"
	"staynest/internal/dto/response"
	"staynest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HomeService interface {
	// Public
	GetHomes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeResponse], error)
	GetHomeByID(ctx context.Context, homeID string) (*response.HomeResponse, error)

	// Host only; update and delete also require ownership
	GetHostHomes(ctx context.Context, hostID string) ([]response.HomeResponse, error)
	CreateHome(ctx context.Context, hostID string, req *request.HomeRequest) (*response.HomeResponse, error)
	UpdateHome(ctx context.Context, homeID, hostID string, req *request.HomeRequest) (*response.HomeResponse, error)
	DeleteHome(ctx context.Context, homeID, hostID string) error
}

type homeService struct {
	homes repository.HomeRepository
	users repository.UserRepository
	log   *zap.Logger
}

func NewHomeService(homes repository.HomeRepository, users repository.UserRepository, log *zap.Logger) HomeService {
	return &homeService{
		homes: homes,
		users: users,
		log:   log.With(zap.String("service", "home")),
	}
}

func (s *homeService) GetHomes(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HomeResponse], error) {
	homes, err := s.homes.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get homes",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("per_page", req.PerPage),
		)
		return nil, storeFailure("list homes", err)
	}

	total, err := s.homes.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count homes", zap.Error(err))
		return nil, storeFailure("count homes", err)
	}

	return response.NewPaginatedResponse(response.HomesToResponse(homes), req.Page, req.Limit(), total), nil
}

func (s *homeService) GetHomeByID(ctx context.Context, homeID string) (*response.HomeResponse, error) {
	id, err := parseID("home", homeID)
	if err != nil {
		return nil, err
	}

	home, err := s.homes.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure("load home", err)
	}
	if home == nil {
		return nil, notFound("home", homeID)
	}

	resp := response.HomeToResponse(home)
	return &resp, nil
}

func (s *homeService) GetHostHomes(ctx context.Context, hostID string) ([]response.HomeResponse, error) {
	host, err := s.requireHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	homes, err := s.homes.FindByHostID(ctx, host)
	if err != nil {
		s.log.Error("Failed to get host homes", zap.Error(err), zap.String("host_id", hostID))
		return nil, storeFailure("list host homes", err)
	}

	return response.HomesToResponse(homes), nil
}

func (s *homeService) CreateHome(ctx context.Context, hostID string, req *request.HomeRequest) (*response.HomeResponse, error) {
	host, err := s.requireHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create home validation failed", zap.Any("errors", errs))
		return nil, invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	now := time.Now()
	home := &entity.Home{
		BaseNoDelete: entity.BaseNoDelete{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		HostID: host,
	}
	applyHomeRequest(home, req)

	if err := s.homes.Create(ctx, home); err != nil {
		return nil, storeFailure("create home", err)
	}

	s.log.Info("Home created",
		zap.String("home_id", home.ID.String()),
		zap.String("host_id", hostID),
		zap.Float64("price", home.Price),
	)

	resp := response.HomeToResponse(home)
	return &resp, nil
}

// UpdateHome changes listing details. Existing bookings keep the price
// they were made at.
func (s *homeService) UpdateHome(ctx context.Context, homeID, hostID string, req *request.HomeRequest) (*response.HomeResponse, error) {
	host, err := s.requireHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	home, err := s.ownedHome(ctx, homeID, host)
	if err != nil {
		return nil, err
	}

	applyHomeRequest(home, req)
	home.UpdatedAt = time.Now()

	if err := s.homes.Update(ctx, home); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, notFound("home", homeID)
		}
		return nil, storeFailure("update home", err)
	}

	s.log.Info("Home updated", zap.String("home_id", homeID), zap.String("host_id", hostID))

	resp := response.HomeToResponse(home)
	return &resp, nil
}

func (s *homeService) DeleteHome(ctx context.Context, homeID, hostID string) error {
	host, err := s.requireHost(ctx, hostID)
	if err != nil {
		return err
	}

	home, err := s.ownedHome(ctx, homeID, host)
	if err != nil {
		return err
	}

	if err := s.homes.Delete(ctx, home.ID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFound("home", homeID)
		}
		return storeFailure("delete home", err)
	}

	s.log.Info("Home deleted", zap.String("home_id", homeID), zap.String("host_id", hostID))
	return nil
}

// ==================== HELPER METHODS ====================

func (s *homeService) requireHost(ctx context.Context, hostID string) (uuid.UUID, error) {
	actor, err := parseActor(hostID)
	if err != nil {
		return uuid.Nil, err
	}

	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return uuid.Nil, storeFailure("load user", err)
	}
	if user == nil {
		return uuid.Nil, ErrUnauthenticated
	}
	if !user.IsHost() {
		return uuid.Nil, fmt.Errorf("only hosts can manage homes: %w", ErrForbidden)
	}

	return actor, nil
}

func (s *homeService) ownedHome(ctx context.Context, homeID string, host uuid.UUID) (*entity.Home, error) {
	id, err := parseID("home", homeID)
	if err != nil {
		return nil, err
	}

	home, err := s.homes.FindByID(ctx, id)
	if err != nil {
		return nil, storeFailure("load home", err)
	}
	if home == nil {
		return nil, notFound("home", homeID)
	}

	if !IsOwner(host, home) {
		s.log.Warn("Home change by non-owner",
			zap.String("home_id", homeID),
			zap.String("actor_id", host.String()),
		)
		return nil, fmt.Errorf("home %s: %w", homeID, ErrForbidden)
	}

	return home, nil
}

func applyHomeRequest(home *entity.Home, req *request.HomeRequest) {
	home.HouseName = req.HouseName
	home.Price = req.Price
	home.Location = req.Location
	home.Rating = req.Rating
	home.Description = req.Description
	home.PhotoURL = req.PhotoURL
}
