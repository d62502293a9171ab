package ports

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain"
)

type RegistrationRepo interface {
	Create(ctx context.Context, r *domain.Registration) error
	GetByID(ctx context.Context, id string) (*domain.Registration, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Registration, error)
	GetByTicketCode(ctx context.Context, code string) (*domain.Registration, error)
	ListApprovedByEvent(ctx context.Context, eventID string) ([]*domain.Registration, error)
	SetStatus(ctx context.Context, id string, status domain.RegistrationStatus) error
}
