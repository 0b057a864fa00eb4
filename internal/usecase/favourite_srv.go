package usecase

import (
	"context"

	"staynest/internal/data/entity"
	"staynest/internal/data/repository"
	"staynest/internal/dto/request"
	"staynest/internal/dto/response"
	"staynest/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FavouriteService manages the acting user's set of favourite homes.
// Add and Remove are both idempotent.
type FavouriteService interface {
	AddFavourite(ctx context.Context, userID string, req *request.AddFavouriteRequest) error
	RemoveFavourite(ctx context.Context, userID, homeID string) error
	ListFavourites(ctx context.Context, userID string) ([]response.HomeResponse, error)
}

type favouriteService struct {
	users repository.UserRepository
	homes repository.HomeRepository
	log   *zap.Logger
}

func NewFavouriteService(users repository.UserRepository, homes repository.HomeRepository, log *zap.Logger) FavouriteService {
	return &favouriteService{
		users: users,
		homes: homes,
		log:   log.With(zap.String("service", "favourite")),
	}
}

func (s *favouriteService) AddFavourite(ctx context.Context, userID string, req *request.AddFavouriteRequest) error {
	actor, err := parseActor(userID)
	if err != nil {
		return err
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return invalidInput("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	homeID, err := parseID("home", req.HomeID)
	if err != nil {
		return err
	}

	home, err := s.homes.FindByID(ctx, homeID)
	if err != nil {
		return storeFailure("load home", err)
	}
	if home == nil {
		return notFound("home", req.HomeID)
	}

	found, err := s.users.AddFavourite(ctx, actor, homeID)
	if err != nil {
		s.log.Error("Failed to add favourite",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("home_id", req.HomeID),
		)
		return storeFailure("add favourite", err)
	}
	if !found {
		return notFound("user", userID)
	}

	s.log.Info("Favourite added",
		zap.String("user_id", userID),
		zap.String("home_id", req.HomeID),
	)
	return nil
}

func (s *favouriteService) RemoveFavourite(ctx context.Context, userID, homeID string) error {
	actor, err := parseActor(userID)
	if err != nil {
		return err
	}

	id, err := parseID("home", homeID)
	if err != nil {
		return err
	}

	found, err := s.users.RemoveFavourite(ctx, actor, id)
	if err != nil {
		s.log.Error("Failed to remove favourite",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.String("home_id", homeID),
		)
		return storeFailure("remove favourite", err)
	}
	if !found {
		return notFound("user", userID)
	}

	s.log.Info("Favourite removed",
		zap.String("user_id", userID),
		zap.String("home_id", homeID),
	)
	return nil
}

// ListFavourites resolves the stored references in their stored order.
// Duplicates collapse and homes that no longer exist are left out.
func (s *favouriteService) ListFavourites(ctx context.Context, userID string) ([]response.HomeResponse, error) {
	actor, err := parseActor(userID)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, actor)
	if err != nil {
		return nil, storeFailure("load user", err)
	}
	if user == nil {
		return nil, notFound("user", userID)
	}

	ids := uniqueIDs(user.Favourites)
	homes, err := s.homes.FindByIDs(ctx, ids)
	if err != nil {
		s.log.Error("Failed to load favourite homes", zap.Error(err), zap.String("user_id", userID))
		return nil, storeFailure("load favourite homes", err)
	}

	byID := make(map[uuid.UUID]*entity.Home, len(homes))
	for _, home := range homes {
		byID[home.ID] = home
	}

	result := make([]response.HomeResponse, 0, len(ids))
	for _, id := range ids {
		if home, ok := byID[id]; ok {
			result = append(result, response.HomeToResponse(home))
		}
	}

	return result, nil
}
