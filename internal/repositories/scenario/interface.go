package scenario

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/larpwright/larpwright/internal/repositories/scenario Repository

import (
	"context"

	"github.com/larpwright/larpwright/internal/models"
)

// Repository defines the interface for scenario persistence. Scenarios are
// stored as whole aggregates: roles, items, and actions travel with them.
type Repository interface {
	// SaveScenario persists a scenario aggregate
	SaveScenario(ctx context.Context, input *SaveScenarioInput) error

	// GetScenario retrieves a scenario by ID
	GetScenario(ctx context.Context, input *GetScenarioInput) (*models.Scenario, error)

	// DeleteScenario removes a scenario
	DeleteScenario(ctx context.Context, input *DeleteScenarioInput) error

	// ListScenarios retrieves all scenarios
	ListScenarios(ctx context.Context, input *ListScenariosInput) (*ListScenariosOutput, error)
}
