package dto

import (
	"time"

	"github.com/gatherhub/gatherhub/internal/domain"
)

type EventResponse struct {
	ID              string `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	StartsAt        string `json:"starts_at"`
	EndsAt          string `json:"ends_at,omitempty"`
	LocationType    string `json:"location_type"`
	LocationAddress string `json:"location_address"`
	Published       bool   `json:"published"`
	CreatedAt       string `json:"created_at"`
}

type RegistrationResponse struct {
	ID           string `json:"id"`
	EventID      string `json:"event_id"`
	AttendeeName string `json:"attendee_name"`
	TicketCode   string `json:"ticket_code"`
	Status       string `json:"status"`
	RegisteredAt string `json:"registered_at"`
}

type ModerationResponse struct {
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty"`
}

type TicketResponse struct {
	TicketCode   string `json:"ticket_code"`
	AttendeeName string `json:"attendee_name"`
	EventTitle   string `json:"event_title"`
	StartsAt     string `json:"starts_at"`
	Location     string `json:"location"`
	Status       string `json:"status"`
}

type ReminderRunResponse struct {
	Events24h int `json:"events_24h"`
	Events1h  int `json:"events_1h"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	resp := EventResponse{
		ID:              e.ID,
		Slug:            e.Slug,
		Title:           e.Title,
		Description:     e.Description,
		StartsAt:        e.StartsAt.Format(time.RFC3339),
		LocationType:    string(e.LocationType),
		LocationAddress: e.LocationAddress,
		Published:       e.Published,
		CreatedAt:       e.CreatedAt.Format(time.RFC3339),
	}
	if e.EndsAt != nil {
		resp.EndsAt = e.EndsAt.Format(time.RFC3339)
	}
	return resp
}

func ToRegistrationResponse(r *domain.Registration) RegistrationResponse {
	return RegistrationResponse{
		ID:           r.ID,
		EventID:      r.EventID,
		AttendeeName: r.AttendeeName,
		TicketCode:   r.TicketCode,
		Status:       string(r.Status),
		RegisteredAt: r.RegisteredAt.Format(time.RFC3339),
	}
}

func ToModerationResponse(r *domain.ModerationResult) ModerationResponse {
	return ModerationResponse{
		Success: r.Success,
		Warning: r.Warning,
	}
}

func ToTicketResponse(t *domain.TicketStatus) TicketResponse {
	return TicketResponse{
		TicketCode:   t.TicketCode,
		AttendeeName: t.AttendeeName,
		EventTitle:   t.EventTitle,
		StartsAt:     t.StartsAt.Format(time.RFC3339),
		Location:     t.Location,
		Status:       string(t.Status),
	}
}

func ToReminderRunResponse(r *domain.ReminderReport) ReminderRunResponse {
	return ReminderRunResponse{
		Events24h: r.Events24h,
		Events1h:  r.Events1h,
	}
}
