package domain

import "time"

type UserRole string

const (
	RoleMember    UserRole = "member"
	RoleModerator UserRole = "moderator"
)

const BaseTier = "base"

type User struct {
	ID             string    `json:"id"`
	ExternalID     string    `json:"external_id"`
	Name           string    `json:"name"`
	Email          *string   `json:"email,omitempty"`
	Role           UserRole  `json:"role"`
	Points         int       `json:"points"`
	Tier           string    `json:"tier"`
	EventsAttended int       `json:"events_attended"`
	CreatedAt      time.Time `json:"created_at"`
}
