package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func moderationFixture() (*domain.Registration, *domain.Event, *domain.User) {
	reg := &domain.Registration{
		ID:           "r1",
		EventID:      "e1",
		UserID:       "u1",
		AttendeeName: "Alice Doe",
		TicketCode:   "TICKET-123456-AB12",
		Status:       domain.RegistrationStatusPending,
	}
	event := &domain.Event{ID: "e1", Title: "Go Meetup", LocationType: domain.LocationPhysical, LocationAddress: "12 Harbor St"}
	user := &domain.User{ID: "u1", ExternalID: "sub_1", Email: strPtr("alice@example.com")}
	return reg, event, user
}

func newModerationService(t *testing.T) (*ModerationService, *mocks.MockRegistrationRepo, *mocks.MockEventRepo, *mocks.MockUserRepo, *mocks.MockProfileDirectory, *mocks.MockMailer) {
	t.Helper()
	registrationRepo := mocks.NewMockRegistrationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	userRepo := mocks.NewMockUserRepo(t)
	directory := mocks.NewMockProfileDirectory(t)
	mailer := mocks.NewMockMailer(t)
	svc := NewModerationService(registrationRepo, eventRepo, userRepo, directory, mailer, newTestLogger(t))
	return svc, registrationRepo, eventRepo, userRepo, directory, mailer
}

func TestModerationService_Approve_Success(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, mailer := newModerationService(t)

	reg, event, user := moderationFixture()

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusApproved).Return(nil)
	mailer.EXPECT().SendTicket(mock.Anything, "alice@example.com", mock.Anything).Return(nil)

	result, err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Warning)
}

func TestModerationService_Approve_RepeatedResends(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, mailer := newModerationService(t)

	reg, event, user := moderationFixture()
	reg.Status = domain.RegistrationStatusApproved

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusApproved).Return(nil)
	mailer.EXPECT().SendTicket(mock.Anything, "alice@example.com", mock.Anything).Return(nil)

	result, err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
}

func TestModerationService_Approve_EmailFailureIsWarning(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, mailer := newModerationService(t)

	reg, event, user := moderationFixture()

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusApproved).Return(nil)
	mailer.EXPECT().SendTicket(mock.Anything, "alice@example.com", mock.Anything).Return(errors.New("smtp down"))

	result, err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Warning, "email could not be sent")
}

func TestModerationService_Approve_DirectoryFallback(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, directory, mailer := newModerationService(t)

	reg, event, user := moderationFixture()
	user.Email = nil

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusApproved).Return(nil)
	directory.EXPECT().PrimaryEmail(mock.Anything, "sub_1").Return("alice@provider.test", nil)
	mailer.EXPECT().SendTicket(mock.Anything, "alice@provider.test", mock.Anything).Return(nil)

	result, err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Warning)
}

func TestModerationService_Approve_NoEmailAnywhere(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, directory, _ := newModerationService(t)

	reg, event, user := moderationFixture()
	user.Email = nil

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusApproved).Return(nil)
	directory.EXPECT().PrimaryEmail(mock.Anything, "sub_1").Return("", nil)

	result, err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "status updated, but user email not found", result.Warning)
}

func TestModerationService_Approve_DirectoryLookupFails(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, directory, _ := newModerationService(t)

	reg, event, user := moderationFixture()
	user.Email = nil

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusApproved).Return(nil)
	directory.EXPECT().PrimaryEmail(mock.Anything, "sub_1").Return("", errors.New("provider 500"))

	result, err := svc.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Contains(t, result.Warning, "email lookup failed")
}

func TestModerationService_Approve_NotFound(t *testing.T) {
	svc, registrationRepo, _, _, _, _ := newModerationService(t)

	registrationRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrRegistrationNotFound)

	_, err := svc.Approve(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRegistrationNotFound)
}

func TestModerationService_Approve_FromRejected(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, _ := newModerationService(t)

	reg, event, user := moderationFixture()
	reg.Status = domain.RegistrationStatusRejected

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.Approve(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestModerationService_Approve_FromWaitlisted(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, _ := newModerationService(t)

	reg, event, user := moderationFixture()
	reg.Status = domain.RegistrationStatusWaitlisted

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.Approve(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestModerationService_Reject_Success(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, mailer := newModerationService(t)

	reg, event, user := moderationFixture()

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusRejected).Return(nil)
	mailer.EXPECT().SendRejection(mock.Anything, "alice@example.com", mock.Anything).Return(nil)

	result, err := svc.Reject(context.Background(), "r1")

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Empty(t, result.Warning)
}

func TestModerationService_Reject_FromApproved(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, _ := newModerationService(t)

	reg, event, user := moderationFixture()
	reg.Status = domain.RegistrationStatusApproved

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)

	_, err := svc.Reject(context.Background(), "r1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestModerationService_Reject_SetStatusError(t *testing.T) {
	svc, registrationRepo, eventRepo, userRepo, _, _ := newModerationService(t)

	reg, event, user := moderationFixture()

	registrationRepo.EXPECT().GetByID(mock.Anything, "r1").Return(reg, nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	userRepo.EXPECT().GetByID(mock.Anything, "u1").Return(user, nil)
	registrationRepo.EXPECT().SetStatus(mock.Anything, "r1", domain.RegistrationStatusRejected).Return(errors.New("db error"))

	_, err := svc.Reject(context.Background(), "r1")

	require.Error(t, err)
}
