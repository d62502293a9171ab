package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports"
	"github.com/google/uuid"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

type EventService struct {
	repo     ports.EventRepo
	identity ports.IdentityResolver
}

func NewEventService(repo ports.EventRepo, identity ports.IdentityResolver) *EventService {
	return &EventService{
		repo:     repo,
		identity: identity,
	}
}

// Create records an organizer's event proposal. Proposals stay unpublished
// until a moderator approves them.
func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput, subject, subjectName string) (*domain.Event, error) {
	if input.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if input.StartsAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: starts_at must be in the future", domain.ErrValidation)
	}
	if input.EndsAt != nil && input.EndsAt.Before(input.StartsAt) {
		return nil, fmt.Errorf("%w: ends_at must not precede starts_at", domain.ErrValidation)
	}
	switch input.LocationType {
	case domain.LocationPhysical, domain.LocationVirtual, domain.LocationHybrid:
	default:
		return nil, fmt.Errorf("%w: unknown location type %q", domain.ErrValidation, input.LocationType)
	}

	proposer, err := s.identity.Resolve(ctx, subject, subjectName)
	if err != nil {
		return nil, fmt.Errorf("resolve proposer: %w", err)
	}

	event := &domain.Event{
		ID:              uuid.New().String(),
		Slug:            Slugify(input.Title),
		Title:           input.Title,
		Description:     input.Description,
		StartsAt:        input.StartsAt,
		EndsAt:          input.EndsAt,
		LocationType:    input.LocationType,
		LocationAddress: input.LocationAddress,
		CreatedBy:       proposer.ID,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Publish(ctx context.Context, id string) error {
	if err := s.repo.Publish(ctx, id); err != nil {
		return fmt.Errorf("publish event: %w", err)
	}
	return nil
}

func (s *EventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.ListPublished(ctx)
}

// Slugify lowercases the title and collapses every non-alphanumeric run
// into a single hyphen.
func Slugify(title string) string {
	slug := slugStrip.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
