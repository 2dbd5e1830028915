package models

import (
	"time"
)

// GameActionLog is an immutable record of one action resolution. The tag
// lists are the effect sets chosen during resolution, snapshotted so later
// ledger mutations cannot rewrite history.
type GameActionLog struct {
	// ID is the unique identifier for the log entry
	ID string

	// GameSessionID is the session the action was performed in
	GameSessionID string

	// ActionID is the action definition that was performed
	ActionID string

	// ActionName is the action's name at the time of resolution
	ActionName string

	// PerformerRoleStateID is the role state that performed the action
	PerformerRoleStateID string

	// TargetItemStateID is the item state targeted, empty for scenario-level
	// actions
	TargetItemStateID string

	// Timestamp is when the action was resolved
	Timestamp time.Time

	// Success is the resolution outcome
	Success bool

	// Message is the success or failure message shown to the performer
	Message string

	// AppliedTags is the apply effect set used for this resolution
	AppliedTags []Tag

	// RemovedTags is the remove effect set used for this resolution
	RemovedTags []Tag
}
