package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/larpwright/larpwright/internal/services/game Service

import "context"

// Service defines the interface for live game operations
type Service interface {
	// CreateSession snapshots an event's scenario and cast into a live session
	CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error)

	// ArchiveSession ends a live session, leaving its state intact
	ArchiveSession(ctx context.Context, input *ArchiveSessionInput) (*ArchiveSessionOutput, error)

	// PerformAction resolves an action for a role and records the outcome
	PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionOutput, error)

	// GetAvailableActions returns the scenario-level actions visible to a role
	GetAvailableActions(ctx context.Context, input *GetAvailableActionsInput) (*GetAvailableActionsOutput, error)

	// GetAvailableItemActions returns the item-level actions visible to a role
	GetAvailableItemActions(ctx context.Context, input *GetAvailableItemActionsInput) (*GetAvailableItemActionsOutput, error)

	// UpdateRoleState replaces a role's manually editable tag set
	UpdateRoleState(ctx context.Context, input *UpdateRoleStateInput) (*UpdateRoleStateOutput, error)

	// GetSession retrieves a session with its role and item state
	GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error)

	// GetSessionByEvent retrieves the session created for an event
	GetSessionByEvent(ctx context.Context, input *GetSessionByEventInput) (*GetSessionByEventOutput, error)

	// GetRoleStateForUser retrieves the role state assigned to a user in a session
	GetRoleStateForUser(ctx context.Context, input *GetRoleStateForUserInput) (*GetRoleStateForUserOutput, error)

	// GetSessionHistory retrieves a session's action log, newest first
	GetSessionHistory(ctx context.Context, input *GetSessionHistoryInput) (*GetSessionHistoryOutput, error)

	// GetUserSessionHistory retrieves the action log slice performed by a
	// user's role, newest first
	GetUserSessionHistory(ctx context.Context, input *GetUserSessionHistoryInput) (*GetUserSessionHistoryOutput, error)
}
