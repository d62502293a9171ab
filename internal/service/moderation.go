package service

import (
	"context"
	"fmt"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type ModerationService struct {
	registrationRepo ports.RegistrationRepo
	eventRepo        ports.EventRepo
	userRepo         ports.UserRepo
	directory        ports.ProfileDirectory
	mailer           ports.Mailer
	logger           logger.Logger
}

func NewModerationService(
	registrationRepo ports.RegistrationRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	directory ports.ProfileDirectory,
	mailer ports.Mailer,
	logger logger.Logger,
) *ModerationService {
	return &ModerationService{
		registrationRepo: registrationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
		directory:        directory,
		mailer:           mailer,
		logger:           logger,
	}
}

// Approve moves a registration to approved and emails the ticket. The
// status change is persisted before any notification attempt, so an email
// failure downgrades to a warning and never undoes the approval. Repeated
// approvals resend the ticket.
func (s *ModerationService) Approve(ctx context.Context, registrationID string) (*domain.ModerationResult, error) {
	reg, event, user, err := s.load(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	if reg.Status != domain.RegistrationStatusPending && reg.Status != domain.RegistrationStatusApproved {
		return nil, fmt.Errorf("%w: cannot approve a %s registration", domain.ErrInvalidTransition, reg.Status)
	}

	if err := s.registrationRepo.SetStatus(ctx, reg.ID, domain.RegistrationStatusApproved); err != nil {
		return nil, fmt.Errorf("set status approved: %w", err)
	}

	s.logger.Info("registration approved",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
	)

	warning := s.notify(ctx, reg, event, user, func(to string, details domain.TicketDetails) error {
		return s.mailer.SendTicket(ctx, to, details)
	})

	return &domain.ModerationResult{Success: true, Warning: warning}, nil
}

// Reject mirrors Approve with a templated "not approved" notification and
// no QR code.
func (s *ModerationService) Reject(ctx context.Context, registrationID string) (*domain.ModerationResult, error) {
	reg, event, user, err := s.load(ctx, registrationID)
	if err != nil {
		return nil, err
	}

	if reg.Status != domain.RegistrationStatusPending && reg.Status != domain.RegistrationStatusRejected {
		return nil, fmt.Errorf("%w: cannot reject a %s registration", domain.ErrInvalidTransition, reg.Status)
	}

	if err := s.registrationRepo.SetStatus(ctx, reg.ID, domain.RegistrationStatusRejected); err != nil {
		return nil, fmt.Errorf("set status rejected: %w", err)
	}

	s.logger.Info("registration rejected",
		logger.String("registration_id", reg.ID),
		logger.String("event_id", event.ID),
	)

	warning := s.notify(ctx, reg, event, user, func(to string, details domain.TicketDetails) error {
		return s.mailer.SendRejection(ctx, to, details)
	})

	return &domain.ModerationResult{Success: true, Warning: warning}, nil
}

func (s *ModerationService) load(ctx context.Context, registrationID string) (*domain.Registration, *domain.Event, *domain.User, error) {
	reg, err := s.registrationRepo.GetByID(ctx, registrationID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get registration: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, reg.EventID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get user: %w", err)
	}

	return reg, event, user, nil
}

// notify resolves the attendee's address and sends one email, returning a
// warning message instead of an error on any failure.
func (s *ModerationService) notify(
	ctx context.Context,
	reg *domain.Registration,
	event *domain.Event,
	user *domain.User,
	send func(to string, details domain.TicketDetails) error,
) string {
	to, warning := s.resolveEmail(ctx, user)
	if warning != "" {
		return warning
	}

	details := domain.TicketDetails{
		AttendeeName:    reg.AttendeeName,
		EventTitle:      event.Title,
		StartsAt:        event.StartsAt,
		LocationType:    event.LocationType,
		LocationAddress: event.LocationAddress,
		TicketCode:      reg.TicketCode,
	}
	if err := send(to, details); err != nil {
		s.logger.Error("moderation email failed",
			logger.String("registration_id", reg.ID),
			logger.String("error", err.Error()),
		)
		return fmt.Sprintf("status updated, but email could not be sent: %v", err)
	}

	return ""
}

// resolveEmail prefers the stored address and falls back to the auth
// provider's profile for the user's external subject.
func (s *ModerationService) resolveEmail(ctx context.Context, user *domain.User) (string, string) {
	if user.Email != nil && *user.Email != "" {
		return *user.Email, ""
	}

	email, err := s.directory.PrimaryEmail(ctx, user.ExternalID)
	if err != nil {
		s.logger.Error("profile email lookup failed",
			logger.String("user_id", user.ID),
			logger.String("error", err.Error()),
		)
		return "", fmt.Sprintf("status updated, but email lookup failed: %v", err)
	}
	if email == "" {
		s.logger.Warn("no address to notify",
			logger.String("user_id", user.ID),
		)
		return "", "status updated, but user email not found"
	}

	return email, ""
}
