package ports

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain"
)

// Mailer is the outbound email channel. Every method is best-effort from
// the caller's perspective: a send failure never rolls back the state
// change that triggered it.
type Mailer interface {
	SendTicket(ctx context.Context, to string, details domain.TicketDetails) error
	SendRejection(ctx context.Context, to string, details domain.TicketDetails) error
	SendReminder(ctx context.Context, to string, details domain.TicketDetails, window domain.ReminderWindow) error
}

// ModeratorNotifier alerts the moderators' channel about registrations
// awaiting review.
type ModeratorNotifier interface {
	NotifyRegistrationCreated(ctx context.Context, reg *domain.Registration, event *domain.Event)
}
