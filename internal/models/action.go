package models

// Action is the rule unit shared by scenario-level and item-level actions:
// display/success gating conditions plus success/failure tag mutations.
// The eight tag lists are independent; membership in one never implies
// membership in another.
type Action struct {
	// ID is the unique identifier for the action
	ID string

	// Name is the player-facing name of the action
	Name string

	// Description explains what the action represents in play
	Description string

	// MessageOnSuccess is shown to the performer when the action succeeds
	MessageOnSuccess string

	// MessageOnFailure is shown to the performer when the action fails
	MessageOnFailure string

	// RequiredTagsToDisplay must all be active for the action to be shown
	RequiredTagsToDisplay []Tag

	// ForbiddenTagsToDisplay hide the action when any of them is active
	ForbiddenTagsToDisplay []Tag

	// RequiredTagsToSucceed must all be active for the action to succeed
	RequiredTagsToSucceed []Tag

	// ForbiddenTagsToSucceed fail the action when any of them is active
	ForbiddenTagsToSucceed []Tag

	// TagsToApplyOnSuccess are granted to the performer on success
	TagsToApplyOnSuccess []Tag

	// TagsToApplyOnFailure are granted to the performer on failure
	TagsToApplyOnFailure []Tag

	// TagsToRemoveOnSuccess are revoked from the performer on success
	TagsToRemoveOnSuccess []Tag

	// TagsToRemoveOnFailure are revoked from the performer on failure
	TagsToRemoveOnFailure []Tag
}

// ScenarioAction is an action attached directly to a scenario.
type ScenarioAction struct {
	Action

	// ScenarioID is the scenario this action belongs to
	ScenarioID string
}

// ScenarioItemAction is an action attached to a scenario item.
type ScenarioItemAction struct {
	Action

	// ItemID is the scenario item this action belongs to
	ItemID string
}
