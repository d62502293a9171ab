package ports

import (
	"context"

	"github.com/gatherhub/gatherhub/internal/domain"
)

// IdentityResolver maps an external auth subject to the internal user
// record, creating one with defaults on first sight.
type IdentityResolver interface {
	Resolve(ctx context.Context, subject, displayName string) (*domain.User, error)
}

// ProfileDirectory queries the external auth provider for profile data the
// internal record may lack.
type ProfileDirectory interface {
	PrimaryEmail(ctx context.Context, externalID string) (string, error)
}
