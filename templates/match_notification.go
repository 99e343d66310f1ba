package templates

import "fmt"

// MatchNotification builds the DM sent to a traveler when someone registers
// a flight that matches theirs
func MatchNotification(name string) string {
	return fmt.Sprintf("You have a new FlightMate! %s just registered a flight that matches yours.", name)
}
