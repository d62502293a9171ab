package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// windowWidth is the span of each lookahead window. One hour with an
// exclusive upper bound means an event falls into a window during exactly
// one pass, provided passes run at least hourly.
const windowWidth = time.Hour

type ReminderService struct {
	eventRepo        ports.EventRepo
	registrationRepo ports.RegistrationRepo
	userRepo         ports.UserRepo
	directory        ports.ProfileDirectory
	mailer           ports.Mailer
	logger           logger.Logger
}

func NewReminderService(
	eventRepo ports.EventRepo,
	registrationRepo ports.RegistrationRepo,
	userRepo ports.UserRepo,
	directory ports.ProfileDirectory,
	mailer ports.Mailer,
	logger logger.Logger,
) *ReminderService {
	return &ReminderService{
		eventRepo:        eventRepo,
		registrationRepo: registrationRepo,
		userRepo:         userRepo,
		directory:        directory,
		mailer:           mailer,
		logger:           logger,
	}
}

// RunOnce executes one reminder pass: for each window, find events whose
// start time lies in [now+offset, now+offset+1h) with the window flag
// still false, email every approved attendee, then flip the flag. A
// recipient failure never aborts the rest of the wave, and an event's
// failures never abort the scan of later events.
func (s *ReminderService) RunOnce(ctx context.Context, now time.Time) (*domain.ReminderReport, error) {
	report := &domain.ReminderReport{}

	for _, window := range []domain.ReminderWindow{domain.Window24h, domain.Window1h} {
		count, err := s.runWindow(ctx, now, window)
		if err != nil {
			return nil, fmt.Errorf("window %s: %w", window, err)
		}
		switch window {
		case domain.Window24h:
			report.Events24h = count
		case domain.Window1h:
			report.Events1h = count
		}
	}

	return report, nil
}

func (s *ReminderService) runWindow(ctx context.Context, now time.Time, window domain.ReminderWindow) (int, error) {
	from := now.Add(window.Offset())
	to := from.Add(windowWidth)

	events, err := s.eventRepo.ListDueForReminder(ctx, from, to, window)
	if err != nil {
		return 0, fmt.Errorf("list due events: %w", err)
	}

	processed := 0
	for _, event := range events {
		s.remindAttendees(ctx, event, window)

		flipped, err := s.eventRepo.MarkReminderSent(ctx, event.ID, window)
		if err != nil {
			s.logger.Error("failed to mark reminder sent",
				logger.String("event_id", event.ID),
				logger.String("window", string(window)),
				logger.String("error", err.Error()),
			)
			continue
		}
		if !flipped {
			// Another pass claimed this wave between our scan and now.
			s.logger.Warn("reminder flag already set, skipping count",
				logger.String("event_id", event.ID),
				logger.String("window", string(window)),
			)
			continue
		}
		processed++
	}

	return processed, nil
}

func (s *ReminderService) remindAttendees(ctx context.Context, event *domain.Event, window domain.ReminderWindow) {
	regs, err := s.registrationRepo.ListApprovedByEvent(ctx, event.ID)
	if err != nil {
		s.logger.Error("failed to list approved attendees",
			logger.String("event_id", event.ID),
			logger.String("error", err.Error()),
		)
		return
	}

	sent := 0
	for _, reg := range regs {
		if s.remindOne(ctx, event, reg, window) {
			sent++
		}
	}

	s.logger.Info("reminder wave dispatched",
		logger.String("event_id", event.ID),
		logger.String("window", string(window)),
		logger.Int("attendees", len(regs)),
		logger.Int("sent", sent),
	)
}

func (s *ReminderService) remindOne(ctx context.Context, event *domain.Event, reg *domain.Registration, window domain.ReminderWindow) bool {
	user, err := s.userRepo.GetByID(ctx, reg.UserID)
	if err != nil {
		s.logger.Error("failed to load attendee",
			logger.String("registration_id", reg.ID),
			logger.String("error", err.Error()),
		)
		return false
	}

	to := ""
	if user.Email != nil && *user.Email != "" {
		to = *user.Email
	} else {
		to, err = s.directory.PrimaryEmail(ctx, user.ExternalID)
		if err != nil {
			s.logger.Error("attendee email lookup failed",
				logger.String("user_id", user.ID),
				logger.String("error", err.Error()),
			)
			return false
		}
	}
	if to == "" {
		s.logger.Warn("attendee has no email, skipping reminder",
			logger.String("user_id", user.ID),
		)
		return false
	}

	details := domain.TicketDetails{
		AttendeeName:    reg.AttendeeName,
		EventTitle:      event.Title,
		StartsAt:        event.StartsAt,
		LocationType:    event.LocationType,
		LocationAddress: event.LocationAddress,
		TicketCode:      reg.TicketCode,
	}
	if err := s.mailer.SendReminder(ctx, to, details, window); err != nil {
		s.logger.Error("reminder send failed",
			logger.String("registration_id", reg.ID),
			logger.String("error", err.Error()),
		)
		return false
	}

	return true
}
