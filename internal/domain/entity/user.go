package entity

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered traveler
type User struct {
	ID          uuid.UUID
	SlackID     string
	Name        string
	LinkedinURL *string
	CreatedAt   time.Time
}

// Profile projects the user to the public shape shared with matched travelers
func (u *User) Profile() MatchProfile {
	return MatchProfile{
		Name:        u.Name,
		LinkedinURL: u.LinkedinURL,
		SlackID:     u.SlackID,
	}
}

// SlackIdentity holds the profile returned by the Slack identity API
type SlackIdentity struct {
	SlackID  string
	Name     string
	ImageURL string
}
