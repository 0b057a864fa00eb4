package repository

import (
	"context"
	"errors"
	"fmt"

	"staynest/internal/data/entity"
	"staynest/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// Favourites. Both report false when the user does not exist.
	AddFavourite(ctx context.Context, userID, homeID uuid.UUID) (bool, error)
	RemoveFavourite(ctx context.Context, userID, homeID uuid.UUID) (bool, error)
}

type userRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewUserRepository(db database.PgxIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log.With(zap.String("repository", "user")),
	}
}

const userColumns = `id, first_name, last_name, email, password, user_type,
		       favourites, created_at, updated_at, deleted_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*entity.User, error) {
	var user entity.User
	err := row.Scan(
		&user.ID,
		&user.FirstName,
		&user.LastName,
		&user.Email,
		&user.PasswordHash,
		&user.UserType,
		&user.Favourites,
		&user.CreatedAt,
		&user.UpdatedAt,
		&user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a new user record into the database
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (id, first_name, last_name, email, password, user_type,
		                  favourites, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	favourites := user.Favourites
	if favourites == nil {
		favourites = []uuid.UUID{}
	}

	_, err := ur.db.Exec(ctx, query,
		user.ID,
		user.FirstName,
		user.LastName,
		user.Email,
		user.PasswordHash,
		user.UserType,
		favourites,
		user.CreatedAt,
		user.UpdatedAt,
	)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return fmt.Errorf("create user %s: %w", user.Email, ErrDuplicate)
	}
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1 AND deleted_at IS NULL
	`

	user, err := scanUser(ur.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id.String()),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id.String(), err)
	}

	return user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE LOWER(email) = LOWER($1) AND deleted_at IS NULL
	`

	user, err := scanUser(ur.db.QueryRow(ctx, query, email))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return user, nil
}

// AddFavourite appends homeID unless it is already present. The membership
// check and the append happen in one statement, so concurrent adds converge.
func (ur *userRepository) AddFavourite(ctx context.Context, userID, homeID uuid.UUID) (bool, error) {
	query := `
		UPDATE users
		SET favourites = CASE
		        WHEN $2 = ANY(favourites) THEN favourites
		        ELSE array_append(favourites, $2)
		    END,
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query, userID, homeID)
	if err != nil {
		ur.log.Error("Failed to add favourite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("home_id", homeID.String()),
		)
		return false, fmt.Errorf("add favourite %s for user %s: %w", homeID.String(), userID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

// RemoveFavourite drops every occurrence of homeID.
func (ur *userRepository) RemoveFavourite(ctx context.Context, userID, homeID uuid.UUID) (bool, error) {
	query := `
		UPDATE users
		SET favourites = array_remove(favourites, $2),
		    updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	result, err := ur.db.Exec(ctx, query, userID, homeID)
	if err != nil {
		ur.log.Error("Failed to remove favourite",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("home_id", homeID.String()),
		)
		return false, fmt.Errorf("remove favourite %s for user %s: %w", homeID.String(), userID.String(), err)
	}

	return result.RowsAffected() > 0, nil
}
