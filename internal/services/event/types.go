package event

import (
	"time"

	"github.com/larpwright/larpwright/internal/common/clock"
	"github.com/larpwright/larpwright/internal/common/uuid"
	"github.com/larpwright/larpwright/internal/identity"
	"github.com/larpwright/larpwright/internal/models"
	eventRepo "github.com/larpwright/larpwright/internal/repositories/event"
	scenarioRepo "github.com/larpwright/larpwright/internal/repositories/scenario"
	gameService "github.com/larpwright/larpwright/internal/services/game"
)

// Config holds the dependencies and settings for the event service
type Config struct {
	EventRepo     eventRepo.Repository
	ScenarioRepo  scenarioRepo.Repository
	GameService   gameService.Service
	Identity      identity.Resolver
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// AssignedRoleInput pairs a scenario role with a player email in a request
type AssignedRoleInput struct {
	// ID identifies an existing assignment on update, empty for new ones
	ID string

	ScenarioRoleID string
	AssignedEmail  string
}

type CreateEventInput struct {
	Name          string
	Description   string
	Date          time.Time
	ScenarioID    string
	AssignedRoles []AssignedRoleInput
}

type CreateEventOutput struct {
	Event *models.Event
}

type GetEventInput struct {
	EventID string
}

type GetEventOutput struct {
	Event *models.Event
}

type ListEventsInput struct {
	// Status filters the listing when set
	Status models.EventStatus
}

type ListEventsOutput struct {
	Events []*models.Event
}

type UpdateEventInput struct {
	EventID       string
	Name          string
	Description   string
	Date          time.Time
	AssignedRoles []AssignedRoleInput
}

type UpdateEventOutput struct {
	Event *models.Event
}

type DeleteEventInput struct {
	EventID string
}

type DeleteEventOutput struct {
	Success bool
}

type UpdateEventStatusInput struct {
	EventID string
	Status  models.EventStatus
}

type UpdateEventStatusOutput struct {
	Event *models.Event
}
