package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReminderService(t *testing.T) (*ReminderService, *mocks.MockEventRepo, *mocks.MockRegistrationRepo, *mocks.MockUserRepo, *mocks.MockProfileDirectory, *mocks.MockMailer) {
	t.Helper()
	eventRepo := mocks.NewMockEventRepo(t)
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	directory := mocks.NewMockProfileDirectory(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewReminderService(eventRepo, registrationRepo, userRepo, directory, mailer, newTestLogger(t))
	return svc, eventRepo, registrationRepo, userRepo, directory, mailer
}

func TestReminderService_RunOnce_WindowBounds(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newReminderService(t)

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, now.Add(24*time.Hour), now.Add(25*time.Hour), domain.Window24h).
		Return(nil, nil)
	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, now.Add(time.Hour), now.Add(2*time.Hour), domain.Window1h).
		Return(nil, nil)

	report, err := svc.RunOnce(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Events24h)
	assert.Equal(t, 0, report.Events1h)
}

func TestReminderService_RunOnce_SendsAndFlips(t *testing.T) {
	svc, eventRepo, registrationRepo, userRepo, _, mailer := newReminderService(t)

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	event := &domain.Event{
		ID:       "e1",
		Title:    "Go Meetup",
		StartsAt: now.Add(24*time.Hour + 30*time.Minute),
	}
	regs := []*domain.Registration{
		{ID: "r1", EventID: "e1", UserID: "u1", AttendeeName: "Alice", TicketCode: "TICKET-000001-AAAA"},
		{ID: "r2", EventID: "e1", UserID: "u2", AttendeeName: "Bob", TicketCode: "TICKET-000002-BBBB"},
	}
	alice := &domain.User{ID: "u1", ExternalID: "sub_1", Email: strPtr("alice@example.com")}
	bob := &domain.User{ID: "u2", ExternalID: "sub_2", Email: strPtr("bob@example.com")}

	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window24h).
		Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window1h).
		Return(nil, nil)

	registrationRepo.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(regs, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(alice, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(bob, nil)
	mailer.EXPECT().SendReminder(mock.Anything, "alice@example.com", mock.Anything, domain.Window24h).Return(nil)
	mailer.EXPECT().SendReminder(mock.Anything, "bob@example.com", mock.Anything, domain.Window24h).Return(nil)
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e1", domain.Window24h).Return(true, nil)

	report, err := svc.RunOnce(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Events24h)
	assert.Equal(t, 0, report.Events1h)
}

func TestReminderService_RunOnce_RecipientFailureDoesNotAbortWave(t *testing.T) {
	svc, eventRepo, registrationRepo, userRepo, _, mailer := newReminderService(t)

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "e1", Title: "Go Meetup", StartsAt: now.Add(90 * time.Minute)}
	regs := []*domain.Registration{
		{ID: "r1", EventID: "e1", UserID: "u1", AttendeeName: "Alice"},
		{ID: "r2", EventID: "e1", UserID: "u2", AttendeeName: "Bob"},
	}
	alice := &domain.User{ID: "u1", ExternalID: "sub_1", Email: strPtr("alice@example.com")}
	bob := &domain.User{ID: "u2", ExternalID: "sub_2", Email: strPtr("bob@example.com")}

	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window24h).
		Return(nil, nil)
	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window1h).
		Return([]*domain.Event{event}, nil)

	registrationRepo.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(regs, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(alice, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u2").Return(bob, nil)
	mailer.EXPECT().SendReminder(mock.Anything, "alice@example.com", mock.Anything, domain.Window1h).Return(errors.New("smtp down"))
	mailer.EXPECT().SendReminder(mock.Anything, "bob@example.com", mock.Anything, domain.Window1h).Return(nil)
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e1", domain.Window1h).Return(true, nil)

	report, err := svc.RunOnce(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Events1h)
}

func TestReminderService_RunOnce_FlagAlreadySetNotCounted(t *testing.T) {
	svc, eventRepo, registrationRepo, _, _, _ := newReminderService(t)

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "e1", Title: "Go Meetup", StartsAt: now.Add(24*time.Hour + 10*time.Minute)}

	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window24h).
		Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window1h).
		Return(nil, nil)

	registrationRepo.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(nil, nil)
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e1", domain.Window24h).Return(false, nil)

	report, err := svc.RunOnce(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 0, report.Events24h)
}

func TestReminderService_RunOnce_DirectoryFallback(t *testing.T) {
	svc, eventRepo, registrationRepo, userRepo, directory, mailer := newReminderService(t)

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: "e1", Title: "Go Meetup", StartsAt: now.Add(25*time.Hour - time.Minute)}
	regs := []*domain.Registration{
		{ID: "r1", EventID: "e1", UserID: "u1", AttendeeName: "Alice"},
	}
	alice := &domain.User{ID: "u1", ExternalID: "sub_1"}

	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window24h).
		Return([]*domain.Event{event}, nil)
	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window1h).
		Return(nil, nil)

	registrationRepo.EXPECT().ListApprovedByEvent(mock.Anything, "e1").Return(regs, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(alice, nil)
	directory.EXPECT().PrimaryEmail(mock.Anything, "sub_1").Return("alice@provider.test", nil)
	mailer.EXPECT().SendReminder(mock.Anything, "alice@provider.test", mock.Anything, domain.Window24h).Return(nil)
	eventRepo.EXPECT().MarkReminderSent(mock.Anything, "e1", domain.Window24h).Return(true, nil)

	report, err := svc.RunOnce(context.Background(), now)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Events24h)
}

func TestReminderService_RunOnce_ListError(t *testing.T) {
	svc, eventRepo, _, _, _, _ := newReminderService(t)

	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.UTC)

	eventRepo.EXPECT().
		ListDueForReminder(mock.Anything, mock.Anything, mock.Anything, domain.Window24h).
		Return(nil, errors.New("db error"))

	_, err := svc.RunOnce(context.Background(), now)

	require.Error(t, err)
}
