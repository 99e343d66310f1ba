package entity

import "time"

// PresenceWindow is the interval a traveler expects to be at the departure
// airport, inclusive at both ends
type PresenceWindow struct {
	Start time.Time
	End   time.Time
}

// Overlap returns the intersection duration with another window,
// clamped at zero when the windows do not intersect
func (w PresenceWindow) Overlap(other PresenceWindow) time.Duration {
	start := w.Start
	if other.Start.After(start) {
		start = other.Start
	}
	end := w.End
	if other.End.Before(end) {
		end = other.End
	}
	if d := end.Sub(start); d > 0 {
		return d
	}
	return 0
}

// CandidateFlight pairs a pool flight with its owner, as loaded in one
// read-consistent snapshot by the storage layer
type CandidateFlight struct {
	Flight Flight
	Owner  User
}

// MatchProfile is the public shape of a matched traveler
type MatchProfile struct {
	Name        string  `json:"name"`
	LinkedinURL *string `json:"linkedin_url"`
	SlackID     string  `json:"slack_id"`
}

// OverlapMatch is a matched traveler with the best presence overlap in minutes
type OverlapMatch struct {
	MatchProfile
	OverlapMinutes float64 `json:"overlap_minutes"`
}

// MatchResult holds both match classifications for one reference flight
type MatchResult struct {
	SameFlight  []MatchProfile `json:"same_flight"`
	TimeOverlap []OverlapMatch `json:"time_overlap"`
}
