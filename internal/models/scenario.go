package models

// Scenario is an authored game definition: the roles that can be assigned,
// the items in play, and the scenario-level actions. It owns its roles,
// items, and actions; children refer back by ID only.
type Scenario struct {
	// ID is the unique identifier for the scenario
	ID string

	// Name is the scenario's display name
	Name string

	// Description is the GM-facing summary of the scenario
	Description string

	// Roles are the scenario's castable roles
	Roles []ScenarioRole

	// Items are the physical or virtual props in the scenario
	Items []ScenarioItem

	// Actions are the scenario-level actions available to any role
	Actions []ScenarioAction
}

// ScenarioRole links a reusable Role into one scenario, with audience-specific
// description variants.
type ScenarioRole struct {
	// ID is the unique identifier for this role-in-scenario
	ID string

	// ScenarioID is the scenario this role belongs to
	ScenarioID string

	// Role is the underlying reusable role definition
	Role Role

	// DescriptionForGM is visible to game masters only
	DescriptionForGM string

	// DescriptionForOwner is visible to the assigned player only
	DescriptionForOwner string

	// DescriptionForOthers is visible to everyone else
	DescriptionForOthers string
}

// ScenarioItem is a prop defined by the scenario, carrying its own actions.
type ScenarioItem struct {
	// ID is the unique identifier for the item
	ID string

	// ScenarioID is the scenario this item belongs to
	ScenarioID string

	// Name is the item's display name
	Name string

	// Description explains the item to players who can see it
	Description string

	// Actions are the item-level actions usable with this item
	Actions []ScenarioItemAction
}

// FindItem returns the scenario item with the given ID, or nil.
func (s *Scenario) FindItem(itemID string) *ScenarioItem {
	for i := range s.Items {
		if s.Items[i].ID == itemID {
			return &s.Items[i]
		}
	}
	return nil
}

// FindRole returns the scenario role with the given ID, or nil.
func (s *Scenario) FindRole(scenarioRoleID string) *ScenarioRole {
	for i := range s.Roles {
		if s.Roles[i].ID == scenarioRoleID {
			return &s.Roles[i]
		}
	}
	return nil
}
