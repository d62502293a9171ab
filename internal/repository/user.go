package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

// Create is idempotent per external subject: a concurrent insert for the
// same subject is swallowed by ON CONFLICT and the caller re-reads.
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	query := `INSERT INTO users (id, external_id, name, email, role, points, tier, events_attended, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			  ON CONFLICT (external_id) DO NOTHING`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		user.ID, user.ExternalID, user.Name, user.Email, user.Role,
		user.Points, user.Tier, user.EventsAttended, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `SELECT id, external_id, name, email, role, points, tier, events_attended, created_at
			  FROM users
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *UserRepository) GetByExternalID(ctx context.Context, externalID string) (*domain.User, error) {
	query := `SELECT id, external_id, name, email, role, points, tier, events_attended, created_at
			  FROM users
			  WHERE external_id = $1`
	return r.getOne(ctx, query, externalID)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err = row.Scan(
		&u.ID, &u.ExternalID, &u.Name, &u.Email, &u.Role,
		&u.Points, &u.Tier, &u.EventsAttended, &u.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return &u, nil
}
