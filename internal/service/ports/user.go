package ports

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain"
)

type UserRepo interface {
	// Create inserts the user, silently succeeding if a row for the same
	// external subject already exists.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByExternalID(ctx context.Context, externalID string) (*domain.User, error)
}
