package domain

import "time"

type RegistrationStatus string

const (
	RegistrationStatusPending    RegistrationStatus = "pending"
	RegistrationStatusApproved   RegistrationStatus = "approved"
	RegistrationStatusRejected   RegistrationStatus = "rejected"
	RegistrationStatusWaitlisted RegistrationStatus = "waitlisted"
)

type Registration struct {
	ID           string             `json:"id"`
	EventID      string             `json:"event_id"`
	UserID       string             `json:"user_id"`
	AttendeeName string             `json:"attendee_name"`
	Cohort       string             `json:"cohort"`
	Batch        string             `json:"batch"`
	TicketCode   string             `json:"ticket_code"`
	Status       RegistrationStatus `json:"status"`
	RegisteredAt time.Time          `json:"registered_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type RegisterInput struct {
	AttendeeName string
	Cohort       string
	Batch        string
}

// TicketDetails carries everything an outbound ticket or reminder email
// needs about one registration.
type TicketDetails struct {
	AttendeeName    string
	EventTitle      string
	StartsAt        time.Time
	LocationType    LocationType
	LocationAddress string
	TicketCode      string
}

// Location renders the human-facing venue line for emails and the ticket
// lookup page. Virtual events show a fixed label instead of the join link.
func (t TicketDetails) Location() string {
	if t.LocationType == LocationVirtual {
		return "Virtual Event"
	}
	return t.LocationAddress
}

// ModerationResult reports a moderation action: the state change itself
// succeeded, with an optional warning when the follow-up notification
// could not be delivered.
type ModerationResult struct {
	Success bool   `json:"success"`
	Warning string `json:"warning,omitempty"`
}

// TicketStatus is the public view served by the ticket lookup endpoint.
type TicketStatus struct {
	TicketCode   string             `json:"ticket_code"`
	AttendeeName string             `json:"attendee_name"`
	EventTitle   string             `json:"event_title"`
	StartsAt     time.Time          `json:"starts_at"`
	Location     string             `json:"location"`
	Status       RegistrationStatus `json:"status"`
}
