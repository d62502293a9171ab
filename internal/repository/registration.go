package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type RegistrationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewRegistrationRepo(db *dbpg.DB) *RegistrationRepository {
	return &RegistrationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const registrationColumns = `id, event_id, user_id, attendee_name, cohort, batch,
		ticket_code, status, registered_at, updated_at`

func (r *RegistrationRepository) Create(ctx context.Context, reg *domain.Registration) error {
	query := `INSERT INTO registrations (id, event_id, user_id, attendee_name, cohort, batch,
				ticket_code, status, registered_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		reg.ID, reg.EventID, reg.UserID, reg.AttendeeName, reg.Cohort, reg.Batch,
		reg.TicketCode, reg.Status, reg.RegisteredAt, reg.UpdatedAt,
	)
	if err != nil {
		// The (event_id, user_id) unique index backs the service-level
		// duplicate pre-check under concurrent double-submit.
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return fmt.Errorf("insert registration: %w", err)
	}

	return nil
}

func (r *RegistrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE id = $1`
	return r.getOne(ctx, query, id, domain.ErrRegistrationNotFound)
}

func (r *RegistrationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id = $1 AND user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRegistrationNotFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) GetByTicketCode(ctx context.Context, code string) (*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE ticket_code = $1`
	return r.getOne(ctx, query, code, domain.ErrTicketNotFound)
}

func (r *RegistrationRepository) getOne(ctx context.Context, query string, arg any, notFound error) (*domain.Registration, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get registration: %w", err)
	}

	reg, err := scanRegistration(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound
		}
		return nil, fmt.Errorf("scan registration: %w", err)
	}

	return reg, nil
}

func (r *RegistrationRepository) ListApprovedByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error) {
	query := `SELECT ` + registrationColumns + `
			  FROM registrations
			  WHERE event_id = $1 AND status = $2
			  ORDER BY registered_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventID, domain.RegistrationStatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved registrations: %w", err)
	}
	defer rows.Close()

	var res []*domain.Registration
	for rows.Next() {
		reg, err := scanRegistration(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan registration: %w", err)
		}
		res = append(res, reg)
	}

	return res, rows.Err()
}

func (r *RegistrationRepository) SetStatus(ctx context.Context, id string, status domain.RegistrationStatus) error {
	query := `UPDATE registrations
			  SET status = $2, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("set registration status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("status rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrRegistrationNotFound
	}

	return nil
}

func scanRegistration(scan func(dest ...any) error) (*domain.Registration, error) {
	var reg domain.Registration
	if err := scan(
		&reg.ID, &reg.EventID, &reg.UserID, &reg.AttendeeName, &reg.Cohort, &reg.Batch,
		&reg.TicketCode, &reg.Status, &reg.RegisteredAt, &reg.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &reg, nil
}
