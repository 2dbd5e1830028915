package models

// GameItemState is the live, per-session state of one scenario item.
type GameItemState struct {
	// ID is the unique identifier for the item state
	ID string

	// GameSessionID is the session this item state belongs to
	GameSessionID string

	// ScenarioItemID is the scenario item this state instantiates
	ScenarioItemID string

	// CurrentHolderRoleID is the role state currently holding the item,
	// empty when unheld
	CurrentHolderRoleID string
}
