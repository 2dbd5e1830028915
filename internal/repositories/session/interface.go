package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/larpwright/larpwright/internal/repositories/session Repository

import (
	"context"

	"github.com/larpwright/larpwright/internal/models"
)

// Repository defines the interface for live game session persistence: the
// session record, its role and item states, and the append-only action log.
type Repository interface {
	// CreateSession persists a new session snapshot atomically: the session
	// record, all role states, all item states, and the event lookup
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error)

	// GetSessionByEvent retrieves the session created for an event
	GetSessionByEvent(ctx context.Context, input *GetSessionByEventInput) (*models.GameSession, error)

	// SaveSession persists an updated session record
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetRoleState retrieves a role state by ID
	GetRoleState(ctx context.Context, input *GetRoleStateInput) (*models.GameRoleState, error)

	// GetRoleStateByUser retrieves the role state assigned to a user within a session
	GetRoleStateByUser(ctx context.Context, input *GetRoleStateByUserInput) (*models.GameRoleState, error)

	// GetRoleStates retrieves all role states of a session
	GetRoleStates(ctx context.Context, input *GetRoleStatesInput) (*GetRoleStatesOutput, error)

	// SaveRoleState persists an updated role state
	SaveRoleState(ctx context.Context, input *SaveRoleStateInput) error

	// GetItemState retrieves an item state by ID
	GetItemState(ctx context.Context, input *GetItemStateInput) (*models.GameItemState, error)

	// GetItemStateByScenarioItem retrieves the item state instantiating a scenario item
	GetItemStateByScenarioItem(ctx context.Context, input *GetItemStateByScenarioItemInput) (*models.GameItemState, error)

	// GetItemStates retrieves all item states of a session
	GetItemStates(ctx context.Context, input *GetItemStatesInput) (*GetItemStatesOutput, error)

	// SaveItemState persists an updated item state
	SaveItemState(ctx context.Context, input *SaveItemStateInput) error

	// AppendActionLog appends an immutable action log entry
	AppendActionLog(ctx context.Context, input *AppendActionLogInput) error

	// GetActionLogs retrieves a session's action log, newest first
	GetActionLogs(ctx context.Context, input *GetActionLogsInput) (*GetActionLogsOutput, error)

	// GetActionLogsByPerformer retrieves a session's action log for one
	// performer role, newest first
	GetActionLogsByPerformer(ctx context.Context, input *GetActionLogsByPerformerInput) (*GetActionLogsOutput, error)
}
