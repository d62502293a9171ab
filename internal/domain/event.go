package domain

import "time"

type LocationType string

const (
	LocationPhysical LocationType = "physical"
	LocationVirtual  LocationType = "virtual"
	LocationHybrid   LocationType = "hybrid"
)

// ReminderWindow identifies one of the two lookahead windows the reminder
// job scans: [now+Offset, now+Offset+1h).
type ReminderWindow string

const (
	Window24h ReminderWindow = "24h"
	Window1h  ReminderWindow = "1h"
)

func (w ReminderWindow) Offset() time.Duration {
	if w == Window1h {
		return time.Hour
	}
	return 24 * time.Hour
}

type Event struct {
	ID              string       `json:"id"`
	Slug            string       `json:"slug"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	StartsAt        time.Time    `json:"starts_at"`
	EndsAt          *time.Time   `json:"ends_at,omitempty"`
	LocationType    LocationType `json:"location_type"`
	LocationAddress string       `json:"location_address"`
	CreatedBy       string       `json:"created_by"`
	Published       bool         `json:"published"`
	Reminder24hSent bool         `json:"reminder_24h_sent"`
	Reminder1hSent  bool         `json:"reminder_1h_sent"`
	CreatedAt       time.Time    `json:"created_at"`
	UpdatedAt       time.Time    `json:"updated_at"`
}

// ReminderSent reports whether the wave for the given window already went out.
func (e *Event) ReminderSent(w ReminderWindow) bool {
	if w == Window1h {
		return e.Reminder1hSent
	}
	return e.Reminder24hSent
}

type CreateEventInput struct {
	Title           string
	Description     string
	StartsAt        time.Time
	EndsAt          *time.Time
	LocationType    LocationType
	LocationAddress string
}

// ReminderReport summarizes one reminder pass: how many events had a wave
// dispatched per window.
type ReminderReport struct {
	Events24h int `json:"events_24h"`
	Events1h  int `json:"events_1h"`
}
