package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports"
	"github.com/gatherhub/gatherhub/internal/ticket"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	registrationRepo ports.RegistrationRepo
	eventRepo        ports.EventRepo
	identity         ports.IdentityResolver
	notifier         ports.ModeratorNotifier
	logger           logger.Logger
}

func NewRegistrationService(
	registrationRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	identity ports.IdentityResolver,
	notifier ports.ModeratorNotifier,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		identity:         identity,
		notifier:         notifier,
		logger:           logger,
	}
}

// Register records the caller's intent to attend an event. At most one
// registration per (event, user) pair: a pre-insert existence check backed
// by a unique index. No partial writes on any failure path - the
// registration row is the only write and it happens last.
func (s *RegistrationService) Register(ctx context.Context, eventSlug, subject, subjectName string, input domain.RegisterInput) (*domain.Registration, error) {
	if input.AttendeeName == "" || input.Cohort == "" || input.Batch == "" {
		return nil, fmt.Errorf("%w: name, cohort and batch are required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetBySlug(ctx, eventSlug)
	if err != nil {
		return nil, fmt.Errorf("resolve event: %w", err)
	}

	user, err := s.identity.Resolve(ctx, subject, subjectName)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}

	existing, err := s.registrationRepo.GetByEventAndUser(ctx, event.ID, user.ID)
	if err != nil && !errors.Is(err, domain.ErrRegistrationNotFound) {
		return nil, fmt.Errorf("check existing registration: %w", err)
	}
	if existing != nil {
		return nil, domain.ErrAlreadyRegistered
	}

	now := time.Now().UTC()
	reg := &domain.Registration{
		ID:           uuid.New().String(),
		EventID:      event.ID,
		UserID:       user.ID,
		AttendeeName: input.AttendeeName,
		Cohort:       input.Cohort,
		Batch:        input.Batch,
		TicketCode:   ticket.NewCode(),
		Status:       domain.RegistrationStatusPending,
		RegisteredAt: now,
		UpdatedAt:    now,
	}
	if err := s.registrationRepo.Create(ctx, reg); err != nil {
		return nil, fmt.Errorf("create registration: %w", err)
	}

	s.logger.Info("registration created",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
		logger.String("user_id", user.ID),
		logger.String("ticket_code", reg.TicketCode),
	)

	go s.notifier.NotifyRegistrationCreated(context.WithoutCancel(ctx), reg, event)

	return reg, nil
}

// TicketStatus serves the public ticket lookup page, which is also the
// target of every QR code we mint.
func (s *RegistrationService) TicketStatus(ctx context.Context, code string) (*domain.TicketStatus, error) {
	reg, err := s.registrationRepo.GetByTicketCode(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("lookup ticket: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, fmt.Errorf("lookup ticket event: %w", err)
	}

	details := domain.TicketDetails{
		AttendeeName:    reg.AttendeeName,
		EventTitle:      event.Title,
		StartsAt:        event.StartsAt,
		LocationType:    event.LocationType,
		LocationAddress: event.LocationAddress,
		TicketCode:      reg.TicketCode,
	}

	return &domain.TicketStatus{
		TicketCode:   reg.TicketCode,
		AttendeeName: reg.AttendeeName,
		EventTitle:   event.Title,
		StartsAt:     event.StartsAt,
		Location:     details.Location(),
		Status:       reg.Status,
	}, nil
}
