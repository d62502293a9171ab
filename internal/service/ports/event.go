package ports

import (
	"context"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	ListPublished(ctx context.Context) ([]*domain.Event, error)
	Publish(ctx context.Context, id string) error

	// ListDueForReminder returns published events starting within
	// [from, to) whose flag for the given window is still false.
	ListDueForReminder(ctx context.Context, from, to time.Time, window domain.ReminderWindow) ([]*domain.Event, error)

	// MarkReminderSent flips the window flag with a conditional update and
	// reports whether this call actually flipped it (false means another
	// pass got there first).
	MarkReminderSent(ctx context.Context, eventID string, window domain.ReminderWindow) (bool, error)
}
