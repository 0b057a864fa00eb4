package repository

import (
	"context"
	"errors"
	"fmt"

	"staynest/internal/data/entity"
	"staynest/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HomeRepository interface {
	Create(ctx context.Context, home *entity.Home) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Home, error)
	// FindByIDs returns the homes that still exist; missing ids are skipped.
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Home, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Home, error)
	CountAll(ctx context.Context) (int64, error)
	FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Home, error)
	Update(ctx context.Context, home *entity.Home) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type homeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHomeRepository(db database.PgxIface, log *zap.Logger) HomeRepository {
	return &homeRepository{
		db:  db,
		log: log.With(zap.String("repository", "home")),
	}
}

const homeColumns = `id, host_id, house_name, price, location, rating,
		       description, photo_url, created_at, updated_at`

func scanHome(row rowScanner) (*entity.Home, error) {
	var home entity.Home
	err := row.Scan(
		&home.ID,
		&home.HostID,
		&home.HouseName,
		&home.Price,
		&home.Location,
		&home.Rating,
		&home.Description,
		&home.PhotoURL,
		&home.CreatedAt,
		&home.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &home, nil
}

func (r *homeRepository) collect(rows pgx.Rows) ([]*entity.Home, error) {
	defer rows.Close()

	var homes []*entity.Home
	for rows.Next() {
		home, err := scanHome(rows)
		if err != nil {
			r.log.Error("Failed to scan home row", zap.Error(err))
			return nil, fmt.Errorf("scan home row: %w", err)
		}
		homes = append(homes, home)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate home rows: %w", err)
	}

	return homes, nil
}

func (r *homeRepository) Create(ctx context.Context, home *entity.Home) error {
	query := `
		INSERT INTO homes (id, host_id, house_name, price, location, rating,
		                   description, photo_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := r.db.Exec(ctx, query,
		home.ID,
		home.HostID,
		home.HouseName,
		home.Price,
		home.Location,
		home.Rating,
		home.Description,
		home.PhotoURL,
		home.CreatedAt,
		home.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create home",
			zap.Error(err),
			zap.String("house_name", home.HouseName),
			zap.String("host_id", home.HostID.String()),
		)
		return fmt.Errorf("create home %s: %w", home.HouseName, err)
	}

	return nil
}

func (r *homeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Home, error) {
	query := `SELECT ` + homeColumns + ` FROM homes WHERE id = $1`

	home, err := scanHome(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find home by ID",
			zap.Error(err),
			zap.String("home_id", id.String()),
		)
		return nil, fmt.Errorf("find home by ID %s: %w", id.String(), err)
	}

	return home, nil
}

func (r *homeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Home, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := `SELECT ` + homeColumns + ` FROM homes WHERE id = ANY($1)`

	rows, err := r.db.Query(ctx, query, ids)
	if err != nil {
		r.log.Error("Failed to find homes by IDs",
			zap.Error(err),
			zap.Int("count", len(ids)),
		)
		return nil, fmt.Errorf("find homes by IDs: %w", err)
	}

	return r.collect(rows)
}

func (r *homeRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Home, error) {
	query := `
		SELECT ` + homeColumns + `
		FROM homes
		ORDER BY created_at DESC, id
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find all homes",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all homes limit %d offset %d: %w", limit, offset, err)
	}

	return r.collect(rows)
}

func (r *homeRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM homes`

	var count int64
	if err := r.db.QueryRow(ctx, query).Scan(&count); err != nil {
		r.log.Error("Failed to count homes", zap.Error(err))
		return 0, fmt.Errorf("count homes: %w", err)
	}

	return count, nil
}

func (r *homeRepository) FindByHostID(ctx context.Context, hostID uuid.UUID) ([]*entity.Home, error) {
	query := `
		SELECT ` + homeColumns + `
		FROM homes
		WHERE host_id = $1
		ORDER BY created_at DESC, id
	`

	rows, err := r.db.Query(ctx, query, hostID)
	if err != nil {
		r.log.Error("Failed to find homes by host",
			zap.Error(err),
			zap.String("host_id", hostID.String()),
		)
		return nil, fmt.Errorf("find homes by host %s: %w", hostID.String(), err)
	}

	return r.collect(rows)
}

// Update never touches host_id: ownership is fixed at creation.
func (r *homeRepository) Update(ctx context.Context, home *entity.Home) error {
	query := `
		UPDATE homes
		SET house_name = $2, price = $3, location = $4, rating = $5,
		    description = $6, photo_url = $7, updated_at = $8
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		home.ID,
		home.HouseName,
		home.Price,
		home.Location,
		home.Rating,
		home.Description,
		home.PhotoURL,
		home.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update home",
			zap.Error(err),
			zap.String("home_id", home.ID.String()),
		)
		return fmt.Errorf("update home %s: %w", home.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("home %s: %w", home.ID.String(), ErrNotFound)
	}

	return nil
}

func (r *homeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM homes WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete home",
			zap.Error(err),
			zap.String("home_id", id.String()),
		)
		return fmt.Errorf("delete home %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("home %s: %w", id.String(), ErrNotFound)
	}

	r.log.Info("Home deleted", zap.String("home_id", id.String()))
	return nil
}
