package models

import (
	"time"
)

// GameSession is the live instantiation of a scenario for one event. It owns
// the per-role and per-item state created when the event activates; the state
// records are stored under their own IDs and listed here.
type GameSession struct {
	// ID is the unique identifier for the session
	ID string

	// EventID is the event this session belongs to, 1:1
	EventID string

	// ScenarioID is the scenario the session was snapshotted from
	ScenarioID string

	// StartTime is when the session was created
	StartTime time.Time

	// EndTime is set when the session is archived, zero while live
	EndTime time.Time

	// RoleStateIDs lists the session's GameRoleState records
	RoleStateIDs []string

	// ItemStateIDs lists the session's GameItemState records
	ItemStateIDs []string
}
