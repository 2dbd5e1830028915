package models

import (
	"time"
)

// EventStatus represents the lifecycle state of an event
type EventStatus string

const (
	// EventStatusUpcoming indicates an event that has not started yet
	EventStatusUpcoming EventStatus = "upcoming"

	// EventStatusActive indicates an event with a live game session
	EventStatusActive EventStatus = "active"

	// EventStatusHistoric indicates a finished event; terminal
	EventStatusHistoric EventStatus = "historic"
)

// Event is the schedulable, player-facing wrapper around a scenario.
type Event struct {
	// ID is the unique identifier for the event
	ID string

	// Name is the event's display name
	Name string

	// Description is the player-facing description of the event
	Description string

	// Date is when the event is scheduled to take place
	Date time.Time

	// Status is the event's lifecycle state
	Status EventStatus

	// ScenarioID is the scenario this event runs
	ScenarioID string

	// GameSessionID is the live session created on activation, empty before
	GameSessionID string

	// AssignedRoles pairs scenario roles with player emails
	AssignedRoles []AssignedRole

	// CreatedAt is when the event was created
	CreatedAt time.Time

	// UpdatedAt is when the event was last updated
	UpdatedAt time.Time
}

// AssignedRole pairs one scenario role with the email of the player cast in it.
type AssignedRole struct {
	// ID is the unique identifier for the assignment
	ID string

	// ScenarioRoleID is the scenario role being cast
	ScenarioRoleID string

	// AssignedEmail is the player's email, empty while uncast
	AssignedEmail string
}

// AssignedEmails returns the distinct non-empty emails assigned to the event.
func (e *Event) AssignedEmails() []string {
	seen := make(map[string]struct{})
	var emails []string
	for _, ar := range e.AssignedRoles {
		if ar.AssignedEmail == "" {
			continue
		}
		if _, ok := seen[ar.AssignedEmail]; ok {
			continue
		}
		seen[ar.AssignedEmail] = struct{}{}
		emails = append(emails, ar.AssignedEmail)
	}
	return emails
}
