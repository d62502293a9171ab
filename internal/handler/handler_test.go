package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/handler/dto"
	hmocks "github.com/gatherhub/gatherhub/internal/handler/mocks"
	"github.com/gatherhub/gatherhub/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRegistrationSvc, *hmocks.MockModerationSvc, *hmocks.MockReminderSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	registrationSvc := hmocks.NewMockRegistrationSvc(t)
	moderationSvc := hmocks.NewMockModerationSvc(t)
	reminderSvc := hmocks.NewMockReminderSvc(t)

	h := NewHandler(eventSvc, registrationSvc, moderationSvc, reminderSvc)

	// Stands in for the session middleware on authed routes.
	auth := func(c *ginext.Context) {
		c.Set(middleware.SubjectKey, "sub_1")
		c.Set(middleware.SubjectNameKey, "Alice Doe")
		c.Next()
	}

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.GET("/events/:slug", h.GetEvent)
		api.GET("/tickets/:code", h.GetTicket)
		api.POST("/events", auth, h.CreateEvent)
		api.POST("/events/:slug/register", auth, h.Register)
		api.POST("/admin/events/:id/approve", h.ApproveEvent)
		api.POST("/admin/registrations/:id/approve", h.ApproveRegistration)
		api.POST("/admin/registrations/:id/reject", h.RejectRegistration)
		api.GET("/reminders/run", h.RunReminders)
	}

	return eventSvc, registrationSvc, moderationSvc, reminderSvc, r
}

// --- Events ---

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	startsAt := time.Now().Add(72 * time.Hour).UTC()
	event := &domain.Event{
		ID:              uuid.New().String(),
		Slug:            "go-meetup",
		Title:           "Go Meetup",
		StartsAt:        startsAt,
		LocationType:    domain.LocationPhysical,
		LocationAddress: "12 Harbor St",
	}

	eventSvc.EXPECT().Create(mock.Anything, mock.Anything, "sub_1", "Alice Doe").Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:           "Go Meetup",
		StartsAt:        startsAt.Format(time.RFC3339),
		LocationType:    "physical",
		LocationAddress: "12 Harbor St",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "go-meetup", resp.Slug)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","starts_at":"not-a-date","location_type":"physical","location_address":"12 Harbor St"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_InvalidLocationType(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"title":"X","starts_at":"2026-09-10T18:00:00Z","location_type":"metaverse","location_address":"12 Harbor St"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Slug: "event-1", Title: "Event 1", StartsAt: time.Now()},
		{ID: "e2", Slug: "event-2", Title: "Event 2", StartsAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_GetEvent_NotFound(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetBySlug(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/missing", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_ApproveEvent_Success(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Publish(mock.Anything, eventID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events/"+eventID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ApproveEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/events/not-a-uuid/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Success(t *testing.T) {
	_, registrationSvc, _, _, r := setupRouter(t)

	reg := &domain.Registration{
		ID:           uuid.New().String(),
		EventID:      "e1",
		AttendeeName: "Alice Doe",
		TicketCode:   "TICKET-123456-AB12",
		Status:       domain.RegistrationStatusPending,
		RegisteredAt: time.Now(),
	}

	registrationSvc.EXPECT().
		Register(mock.Anything, "go-meetup", "sub_1", "Alice Doe", mock.Anything).
		Return(reg, nil)

	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice Doe", Cohort: "Backend", Batch: "2026-spring"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/go-meetup/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, "TICKET-123456-AB12", resp.TicketCode)
}

func TestHandler_Register_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	body := []byte(`{"name":"Alice Doe"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/go-meetup/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_Duplicate(t *testing.T) {
	_, registrationSvc, _, _, r := setupRouter(t)

	registrationSvc.EXPECT().
		Register(mock.Anything, "go-meetup", "sub_1", "Alice Doe", mock.Anything).
		Return(nil, domain.ErrAlreadyRegistered)

	body, _ := json.Marshal(dto.RegisterRequest{Name: "Alice Doe", Cohort: "Backend", Batch: "2026-spring"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/go-meetup/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestHandler_GetTicket_Success(t *testing.T) {
	_, registrationSvc, _, _, r := setupRouter(t)

	status := &domain.TicketStatus{
		TicketCode:   "TICKET-123456-AB12",
		AttendeeName: "Alice Doe",
		EventTitle:   "Go Meetup",
		StartsAt:     time.Now().Add(72 * time.Hour),
		Location:     "12 Harbor St",
		Status:       domain.RegistrationStatusApproved,
	}

	registrationSvc.EXPECT().TicketStatus(mock.Anything, "TICKET-123456-AB12").Return(status, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets/TICKET-123456-AB12", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TicketResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, "12 Harbor St", resp.Location)
}

func TestHandler_GetTicket_NotFound(t *testing.T) {
	_, registrationSvc, _, _, r := setupRouter(t)

	registrationSvc.EXPECT().TicketStatus(mock.Anything, "TICKET-000000-XXXX").Return(nil, domain.ErrTicketNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/tickets/TICKET-000000-XXXX", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Moderation ---

func TestHandler_ApproveRegistration_Success(t *testing.T) {
	_, _, moderationSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	moderationSvc.EXPECT().Approve(mock.Anything, regID).Return(&domain.ModerationResult{Success: true}, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registrations/"+regID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Empty(t, resp.Warning)
}

func TestHandler_ApproveRegistration_WarningPassedThrough(t *testing.T) {
	_, _, moderationSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	result := &domain.ModerationResult{Success: true, Warning: "status updated, but user email not found"}
	moderationSvc.EXPECT().Approve(mock.Anything, regID).Return(result, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registrations/"+regID+"/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ModerationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "status updated, but user email not found", resp.Warning)
}

func TestHandler_ApproveRegistration_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registrations/not-a-uuid/approve", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_RejectRegistration_InvalidTransition(t *testing.T) {
	_, _, moderationSvc, _, r := setupRouter(t)

	regID := uuid.New().String()
	moderationSvc.EXPECT().Reject(mock.Anything, regID).Return(nil, domain.ErrInvalidTransition)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/registrations/"+regID+"/reject", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Reminders ---

func TestHandler_RunReminders_Success(t *testing.T) {
	_, _, _, reminderSvc, r := setupRouter(t)

	report := &domain.ReminderReport{Events24h: 2, Events1h: 1}
	reminderSvc.EXPECT().RunOnce(mock.Anything, mock.Anything).Return(report, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/reminders/run", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.ReminderRunResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Events24h)
	assert.Equal(t, 1, resp.Events1h)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, _, _, r := setupRouter(t)

	eventSvc.EXPECT().GetBySlug(mock.Anything, "boom").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events/boom", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
