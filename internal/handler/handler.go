package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
	"github.com/gatherhub/gatherhub/internal/handler/dto"
	"github.com/gatherhub/gatherhub/internal/middleware"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

type EventSvc interface {
	Create(ctx context.Context, input domain.CreateEventInput, subject, subjectName string) (*domain.Event, error)
	Publish(ctx context.Context, id string) error
	GetBySlug(ctx context.Context, slug string) (*domain.Event, error)
	List(ctx context.Context) ([]*domain.Event, error)
}

type RegistrationSvc interface {
	Register(ctx context.Context, eventSlug, subject, subjectName string, input domain.RegisterInput) (*domain.Registration, error)
	TicketStatus(ctx context.Context, code string) (*domain.TicketStatus, error)
}

type ModerationSvc interface {
	Approve(ctx context.Context, registrationID string) (*domain.ModerationResult, error)
	Reject(ctx context.Context, registrationID string) (*domain.ModerationResult, error)
}

type ReminderSvc interface {
	RunOnce(ctx context.Context, now time.Time) (*domain.ReminderReport, error)
}

type Handler struct {
	eventService        EventSvc
	registrationService RegistrationSvc
	moderationService   ModerationSvc
	reminderService     ReminderSvc
}

func NewHandler(
	eventService EventSvc,
	registrationService RegistrationSvc,
	moderationService ModerationSvc,
	reminderService ReminderSvc,
) *Handler {
	return &Handler{
		eventService:        eventService,
		registrationService: registrationService,
		moderationService:   moderationService,
		reminderService:     reminderService,
	}
}

// Events

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	startsAt, err := time.Parse(time.RFC3339, req.StartsAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "invalid starts_at format, expected RFC3339",
		})
		return
	}

	var endsAt *time.Time
	if req.EndsAt != "" {
		t, err := time.Parse(time.RFC3339, req.EndsAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "invalid ends_at format, expected RFC3339",
			})
			return
		}
		endsAt = &t
	}

	input := domain.CreateEventInput{
		Title:           req.Title,
		Description:     req.Description,
		StartsAt:        startsAt,
		EndsAt:          endsAt,
		LocationType:    domain.LocationType(req.LocationType),
		LocationAddress: req.LocationAddress,
	}

	event, err := h.eventService.Create(
		c.Request.Context(), input,
		c.GetString(middleware.SubjectKey), c.GetString(middleware.SubjectNameKey),
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	events, err := h.eventService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.EventResponse, 0, len(events))
	for _, e := range events {
		resp = append(resp, dto.ToEventResponse(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) GetEvent(c *ginext.Context) {
	event, err := h.eventService.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ApproveEvent(c *ginext.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid event id"})
		return
	}

	if err := h.eventService.Publish(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "published"})
}

// Registrations

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	reg, err := h.registrationService.Register(
		c.Request.Context(), c.Param("slug"),
		c.GetString(middleware.SubjectKey), c.GetString(middleware.SubjectNameKey),
		domain.RegisterInput{
			AttendeeName: req.Name,
			Cohort:       req.Cohort,
			Batch:        req.Batch,
		},
	)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToRegistrationResponse(reg))
}

func (h *Handler) GetTicket(c *ginext.Context) {
	status, err := h.registrationService.TicketStatus(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTicketResponse(status))
}

// Moderation

func (h *Handler) ApproveRegistration(c *ginext.Context) {
	h.moderate(c, h.moderationService.Approve)
}

func (h *Handler) RejectRegistration(c *ginext.Context) {
	h.moderate(c, h.moderationService.Reject)
}

func (h *Handler) moderate(c *ginext.Context, action func(ctx context.Context, id string) (*domain.ModerationResult, error)) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid registration id"})
		return
	}

	result, err := action(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToModerationResponse(result))
}

// Reminders

func (h *Handler) RunReminders(c *ginext.Context) {
	report, err := h.reminderService.RunOnce(c.Request.Context(), time.Now().UTC())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToReminderRunResponse(report))
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrRegistrationNotFound),
		errors.Is(err, domain.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrAlreadyRegistered),
		errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSlugTaken):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrUnauthenticated):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})

	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "internal server error"})
	}
}
