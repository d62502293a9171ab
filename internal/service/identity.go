package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports"
	"github.com/google/uuid"
)

type IdentityService struct {
	repo ports.UserRepo
}

func NewIdentityService(repo ports.UserRepo) *IdentityService {
	return &IdentityService{repo: repo}
}

// Resolve returns the internal user for an external auth subject, creating
// one with defaults on first sight. Idempotent: the insert is conflict-free
// per subject and a lost race simply re-reads the winner's row.
func (s *IdentityService) Resolve(ctx context.Context, subject, displayName string) (*domain.User, error) {
	if subject == "" {
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.GetByExternalID(ctx, subject)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("get user by subject: %w", err)
	}

	user = &domain.User{
		ID:         uuid.New().String(),
		ExternalID: subject,
		Name:       displayName,
		Role:       domain.RoleMember,
		Points:     0,
		Tier:       domain.BaseTier,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	// Re-read so a concurrent first-sight insert for the same subject
	// resolves to a single record.
	user, err = s.repo.GetByExternalID(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("reload user: %w", err)
	}

	return user, nil
}
