package game

import (
	"context"
	"errors"

	"github.com/larpwright/larpwright/internal/identity"
	"github.com/larpwright/larpwright/internal/models"
	scenarioRepo "github.com/larpwright/larpwright/internal/repositories/scenario"
	sessionRepo "github.com/larpwright/larpwright/internal/repositories/session"
)

// CreateSession snapshots an event into a live game session: one role state
// per assigned role, seeded with the role's default tags, and one item state
// per scenario item. The whole snapshot is persisted atomically.
func (s *service) CreateSession(ctx context.Context, input *CreateSessionInput) (*CreateSessionOutput, error) {
	if input == nil || input.Event == nil {
		return nil, errors.New("input and event cannot be nil")
	}

	event := input.Event

	// An event owns at most one session for its lifetime
	existing, err := s.sessionRepo.GetSessionByEvent(ctx, &sessionRepo.GetSessionByEventInput{
		EventID: event.ID,
	})
	if err != nil && !errors.Is(err, sessionRepo.ErrSessionNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrSessionExists
	}

	scenario, err := s.scenarioRepo.GetScenario(ctx, &scenarioRepo.GetScenarioInput{
		ScenarioID: event.ScenarioID,
	})
	if err != nil {
		if errors.Is(err, scenarioRepo.ErrScenarioNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}

	// Unresolved emails become role states with an empty user ID; that is
	// not fatal here, the activation precondition lives with the caller
	resolved, err := s.identity.ResolveUserIDs(ctx, &identity.ResolveUserIDsInput{
		Emails: event.AssignedEmails(),
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()

	session := &models.GameSession{
		ID:         s.uuidGenerator.NewUUID(),
		EventID:    event.ID,
		ScenarioID: scenario.ID,
		StartTime:  now,
	}

	roleStates := make([]*models.GameRoleState, 0, len(event.AssignedRoles))
	for _, assignedRole := range event.AssignedRoles {
		scenarioRole := scenario.FindRole(assignedRole.ScenarioRoleID)
		if scenarioRole == nil {
			return nil, ErrScenarioRoleNotFound
		}

		userID := resolved.UserIDs[assignedRole.AssignedEmail]

		roleState := &models.GameRoleState{
			ID:             s.uuidGenerator.NewUUID(),
			GameSessionID:  session.ID,
			ScenarioRoleID: scenarioRole.ID,
			AssignedEmail:  assignedRole.AssignedEmail,
			AssignedUserID: userID,
		}

		for _, tag := range scenarioRole.Role.Tags {
			roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
				ID:        s.uuidGenerator.NewUUID(),
				Tag:       tag,
				UserID:    userID,
				UserEmail: assignedRole.AssignedEmail,
				AppliedAt: now,
			})
		}

		roleStates = append(roleStates, roleState)
		session.RoleStateIDs = append(session.RoleStateIDs, roleState.ID)
	}

	itemStates := make([]*models.GameItemState, 0, len(scenario.Items))
	for _, item := range scenario.Items {
		itemState := &models.GameItemState{
			ID:             s.uuidGenerator.NewUUID(),
			GameSessionID:  session.ID,
			ScenarioItemID: item.ID,
		}
		itemStates = append(itemStates, itemState)
		session.ItemStateIDs = append(session.ItemStateIDs, itemState.ID)
	}

	err = s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session:    session,
		RoleStates: roleStates,
		ItemStates: itemStates,
	})
	if err != nil {
		return nil, err
	}

	return &CreateSessionOutput{
		Session:    session,
		RoleStates: roleStates,
		ItemStates: itemStates,
	}, nil
}

// ArchiveSession ends a session by setting its end time. Role and item state
// are left untouched.
func (s *service) ArchiveSession(ctx context.Context, input *ArchiveSessionInput) (*ArchiveSessionOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	if !session.EndTime.IsZero() {
		return nil, ErrSessionArchived
	}

	session.EndTime = s.clock.Now()

	err = s.sessionRepo.SaveSession(ctx, &sessionRepo.SaveSessionInput{
		Session: session,
	})
	if err != nil {
		return nil, err
	}

	return &ArchiveSessionOutput{Session: session}, nil
}
