package game

import (
	"github.com/larpwright/larpwright/internal/common/clock"
	"github.com/larpwright/larpwright/internal/common/uuid"
	"github.com/larpwright/larpwright/internal/identity"
	"github.com/larpwright/larpwright/internal/models"
	"github.com/larpwright/larpwright/internal/notify"
	scenarioRepo "github.com/larpwright/larpwright/internal/repositories/scenario"
	sessionRepo "github.com/larpwright/larpwright/internal/repositories/session"
	tagRepo "github.com/larpwright/larpwright/internal/repositories/tag"
)

// Config holds the dependencies and settings for the game service
type Config struct {
	SessionRepo   sessionRepo.Repository
	ScenarioRepo  scenarioRepo.Repository
	TagRepo       tagRepo.Repository
	Identity      identity.Resolver
	Notifier      notify.Notifier
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

type CreateSessionInput struct {
	Event *models.Event
}

type CreateSessionOutput struct {
	Session    *models.GameSession
	RoleStates []*models.GameRoleState
	ItemStates []*models.GameItemState
}

type ArchiveSessionInput struct {
	SessionID string
}

type ArchiveSessionOutput struct {
	Session *models.GameSession
}

type PerformActionInput struct {
	SessionID            string
	PerformerRoleStateID string
	ActionID             string

	// TargetItemID selects an item-level action by scenario item; empty for
	// scenario-level actions
	TargetItemID string
}

type PerformActionOutput struct {
	Success bool
	Message string
	Log     *models.GameActionLog
}

type GetAvailableActionsInput struct {
	RoleStateID string
}

type GetAvailableActionsOutput struct {
	Actions []models.ScenarioAction
}

type GetAvailableItemActionsInput struct {
	RoleStateID    string
	ScenarioItemID string
}

type GetAvailableItemActionsOutput struct {
	Actions []models.ScenarioItemAction
}

type UpdateRoleStateInput struct {
	RoleStateID string

	// TagIDs is the requested active tag membership
	TagIDs []string
}

type UpdateRoleStateOutput struct {
	RoleState *models.GameRoleState
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionOutput struct {
	Session    *models.GameSession
	RoleStates []*models.GameRoleState
	ItemStates []*models.GameItemState
}

type GetSessionByEventInput struct {
	EventID string
}

type GetSessionByEventOutput struct {
	Session *models.GameSession
}

type GetRoleStateForUserInput struct {
	SessionID string
	UserID    string
}

type GetRoleStateForUserOutput struct {
	RoleState *models.GameRoleState
}

type GetSessionHistoryInput struct {
	SessionID string
}

type GetSessionHistoryOutput struct {
	Logs []*models.GameActionLog
}

type GetUserSessionHistoryInput struct {
	SessionID string
	UserID    string
}

type GetUserSessionHistoryOutput struct {
	Logs []*models.GameActionLog
}
