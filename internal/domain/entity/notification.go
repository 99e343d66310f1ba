package entity

import "time"

// NotificationRecord logs one match DM delivered for a flight, keyed by
// (flightId, recipientSlackId) so a traveler is only notified once per flight
type NotificationRecord struct {
	ID               string    `bson:"_id,omitempty"`
	FlightID         int64     `bson:"flightId"`
	RecipientSlackID string    `bson:"recipientSlackId"`
	Message          string    `bson:"message"`
	Status           string    `bson:"status"`
	SentAt           time.Time `bson:"sentAt"`
	CreatedAt        time.Time `bson:"createdAt"`
}
