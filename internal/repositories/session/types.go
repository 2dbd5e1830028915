package session

import "github.com/larpwright/larpwright/internal/models"

type CreateSessionInput struct {
	Session    *models.GameSession
	RoleStates []*models.GameRoleState
	ItemStates []*models.GameItemState
}

type GetSessionInput struct {
	SessionID string
}

type GetSessionByEventInput struct {
	EventID string
}

type SaveSessionInput struct {
	Session *models.GameSession
}

type GetRoleStateInput struct {
	RoleStateID string
}

type GetRoleStateByUserInput struct {
	SessionID string
	UserID    string
}

type GetRoleStatesInput struct {
	SessionID string
}

type GetRoleStatesOutput struct {
	RoleStates []*models.GameRoleState
}

type SaveRoleStateInput struct {
	RoleState *models.GameRoleState
}

type GetItemStateInput struct {
	ItemStateID string
}

type GetItemStateByScenarioItemInput struct {
	SessionID      string
	ScenarioItemID string
}

type GetItemStatesInput struct {
	SessionID string
}

type GetItemStatesOutput struct {
	ItemStates []*models.GameItemState
}

type SaveItemStateInput struct {
	ItemState *models.GameItemState
}

type AppendActionLogInput struct {
	Log *models.GameActionLog
}

type GetActionLogsInput struct {
	SessionID string
}

type GetActionLogsByPerformerInput struct {
	SessionID   string
	RoleStateID string
}

type GetActionLogsOutput struct {
	Logs []*models.GameActionLog
}
