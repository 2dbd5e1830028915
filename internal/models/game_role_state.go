package models

import (
	"time"
)

// GameRoleState is the live, per-session instantiation of a scenario role for
// one assigned player. It owns the role's applied-tag ledger.
type GameRoleState struct {
	// ID is the unique identifier for the role state
	ID string

	// GameSessionID is the session this role state belongs to
	GameSessionID string

	// ScenarioRoleID is the scenario role this state instantiates
	ScenarioRoleID string

	// AssignedEmail is the email the role was assigned to
	AssignedEmail string

	// AssignedUserID is the resolved account ID, empty if the email did not
	// resolve at session creation
	AssignedUserID string

	// AppliedTags is the role's ledger of currently held tags
	AppliedTags []AppliedTag
}

// AllActiveTags returns the tags held by the role that are active at the
// given time, keyed by tag ID. The set is derived on every call; callers must
// treat it as a snapshot valid only at read time.
func (g *GameRoleState) AllActiveTags(now time.Time) map[string]Tag {
	active := make(map[string]Tag)
	for i := range g.AppliedTags {
		if g.AppliedTags[i].IsActive(now) {
			active[g.AppliedTags[i].Tag.ID] = g.AppliedTags[i].Tag
		}
	}
	return active
}

// FindActiveAppliedTag returns the active applied-tag record for the given
// tag ID, or nil if the role does not actively hold it.
func (g *GameRoleState) FindActiveAppliedTag(tagID string, now time.Time) *AppliedTag {
	for i := range g.AppliedTags {
		if g.AppliedTags[i].Tag.ID == tagID && g.AppliedTags[i].IsActive(now) {
			return &g.AppliedTags[i]
		}
	}
	return nil
}
