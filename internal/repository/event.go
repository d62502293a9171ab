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

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `id, slug, title, description, starts_at, ends_at,
		location_type, location_address, created_by, published,
		reminder_24h_sent, reminder_1h_sent, created_at, updated_at`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, slug, title, description, starts_at, ends_at,
				location_type, location_address, created_by, published,
				reminder_24h_sent, reminder_1h_sent, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Slug, e.Title, e.Description, e.StartsAt, e.EndsAt,
		e.LocationType, e.LocationAddress, e.CreatedBy, e.Published,
		e.Reminder24hSent, e.Reminder1hSent, now, now,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrSlugTaken
		}
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE id = $1`
	return r.getOne(ctx, query, id)
}

func (r *EventRepository) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE slug = $1`
	return r.getOne(ctx, query, slug)
}

func (r *EventRepository) getOne(ctx context.Context, query string, arg any) (*domain.Event, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	e, err := scanEvent(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return e, nil
}

func (r *EventRepository) ListPublished(ctx context.Context) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE published = true
			  ORDER BY starts_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

func (r *EventRepository) Publish(ctx context.Context, id string) error {
	query := `UPDATE events
			  SET published = true, updated_at = now()
			  WHERE id = $1`
	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("publish event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("publish rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) ListDueForReminder(ctx context.Context, from, to time.Time, window domain.ReminderWindow) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events
			  WHERE published = true
			    AND starts_at >= $1 AND starts_at < $2
			    AND ` + flagColumn(window) + ` = false
			  ORDER BY starts_at ASC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("list due events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		e, err := scanEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan due event: %w", err)
		}
		res = append(res, e)
	}

	return res, rows.Err()
}

// MarkReminderSent flips the window flag only if it is still false, in a
// single statement, so two overlapping passes cannot both claim the wave.
func (r *EventRepository) MarkReminderSent(ctx context.Context, eventID string, window domain.ReminderWindow) (bool, error) {
	col := flagColumn(window)
	query := `UPDATE events
			  SET ` + col + ` = true, updated_at = now()
			  WHERE id = $1 AND ` + col + ` = false`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, eventID)
	if err != nil {
		return false, fmt.Errorf("mark reminder sent: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("mark reminder rows affected: %w", err)
	}

	return rows > 0, nil
}

// flagColumn maps a window to its column name. Windows are a closed enum,
// never user input, so string concatenation into SQL is safe here.
func flagColumn(w domain.ReminderWindow) string {
	if w == domain.Window1h {
		return "reminder_1h_sent"
	}
	return "reminder_24h_sent"
}

func scanEvent(scan func(dest ...any) error) (*domain.Event, error) {
	var e domain.Event
	if err := scan(
		&e.ID, &e.Slug, &e.Title, &e.Description, &e.StartsAt, &e.EndsAt,
		&e.LocationType, &e.LocationAddress, &e.CreatedBy, &e.Published,
		&e.Reminder24hSent, &e.Reminder1hSent, &e.CreatedAt, &e.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &e, nil
}
