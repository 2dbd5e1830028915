package scenario

import "github.com/larpwright/larpwright/internal/models"

type SaveScenarioInput struct {
	Scenario *models.Scenario
}

type GetScenarioInput struct {
	ScenarioID string
}

type DeleteScenarioInput struct {
	ScenarioID string
}

type ListScenariosInput struct {
}

type ListScenariosOutput struct {
	Scenarios []*models.Scenario
}
