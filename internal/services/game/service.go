package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/larpwright/larpwright/internal/common/clock"
	"github.com/larpwright/larpwright/internal/common/uuid"
	"github.com/larpwright/larpwright/internal/identity"
	"github.com/larpwright/larpwright/internal/models"
	"github.com/larpwright/larpwright/internal/notify"
	scenarioRepo "github.com/larpwright/larpwright/internal/repositories/scenario"
	sessionRepo "github.com/larpwright/larpwright/internal/repositories/session"
	tagRepo "github.com/larpwright/larpwright/internal/repositories/tag"
)

// service implements the Service interface
type service struct {
	sessionRepo   sessionRepo.Repository
	scenarioRepo  scenarioRepo.Repository
	tagRepo       tagRepo.Repository
	identity      identity.Resolver
	notifier      notify.Notifier
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new game service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.SessionRepo == nil {
		return nil, ErrNilSessionRepo
	}
	if cfg.ScenarioRepo == nil {
		return nil, ErrNilScenarioRepo
	}
	if cfg.TagRepo == nil {
		return nil, ErrNilTagRepo
	}
	if cfg.Identity == nil {
		return nil, ErrNilResolver
	}
	if cfg.Notifier == nil {
		return nil, ErrNilNotifier
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		sessionRepo:   cfg.SessionRepo,
		scenarioRepo:  cfg.ScenarioRepo,
		tagRepo:       cfg.TagRepo,
		identity:      cfg.Identity,
		notifier:      cfg.Notifier,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// PerformAction resolves an action against the performer's active tag set,
// applies the selected effect sets to the role's ledger, and appends an
// immutable history record.
func (s *service) PerformAction(ctx context.Context, input *PerformActionInput) (*PerformActionOutput, error) {
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

	roleState, err := s.sessionRepo.GetRoleState(ctx, &sessionRepo.GetRoleStateInput{
		RoleStateID: input.PerformerRoleStateID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrRoleStateNotFound) {
			return nil, ErrRoleStateNotFound
		}
		return nil, err
	}

	if roleState.GameSessionID != session.ID {
		return nil, ErrRoleStateNotFound
	}

	scenario, err := s.scenarioRepo.GetScenario(ctx, &scenarioRepo.GetScenarioInput{
		ScenarioID: session.ScenarioID,
	})
	if err != nil {
		if errors.Is(err, scenarioRepo.ErrScenarioNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}

	// Scenario-level action when no target item, item-level otherwise
	var action *models.Action
	var targetItemStateID string

	if input.TargetItemID == "" {
		for i := range scenario.Actions {
			if scenario.Actions[i].ID == input.ActionID {
				action = &scenario.Actions[i].Action
				break
			}
		}
	} else {
		item := scenario.FindItem(input.TargetItemID)
		if item == nil {
			return nil, ErrItemNotFound
		}

		itemState, err := s.sessionRepo.GetItemStateByScenarioItem(ctx, &sessionRepo.GetItemStateByScenarioItemInput{
			SessionID:      session.ID,
			ScenarioItemID: item.ID,
		})
		if err != nil {
			if errors.Is(err, sessionRepo.ErrItemStateNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, err
		}
		targetItemStateID = itemState.ID

		for i := range item.Actions {
			if item.Actions[i].ID == input.ActionID {
				action = &item.Actions[i].Action
				break
			}
		}
	}

	if action == nil {
		return nil, ErrActionNotFound
	}

	now := s.clock.Now()
	activeTags := roleState.AllActiveTags(now)

	hasAllRequired := containsAllTags(activeTags, action.RequiredTagsToSucceed)
	hasAnyForbidden := containsAnyTag(activeTags, action.ForbiddenTagsToSucceed)

	success := hasAllRequired && !hasAnyForbidden

	tagsToApply := action.TagsToApplyOnFailure
	tagsToRemove := action.TagsToRemoveOnFailure
	message := action.MessageOnFailure
	if success {
		tagsToApply = action.TagsToApplyOnSuccess
		tagsToRemove = action.TagsToRemoveOnSuccess
		message = action.MessageOnSuccess
	}

	s.applyEffects(roleState, tagsToApply, tagsToRemove, now)

	err = s.sessionRepo.SaveRoleState(ctx, &sessionRepo.SaveRoleStateInput{
		RoleState: roleState,
	})
	if err != nil {
		return nil, err
	}

	log := &models.GameActionLog{
		ID:                   s.uuidGenerator.NewUUID(),
		GameSessionID:        session.ID,
		ActionID:             action.ID,
		ActionName:           action.Name,
		PerformerRoleStateID: roleState.ID,
		TargetItemStateID:    targetItemStateID,
		Timestamp:            now,
		Success:              success,
		Message:              message,
		AppliedTags:          tagsToApply,
		RemovedTags:          tagsToRemove,
	}

	err = s.sessionRepo.AppendActionLog(ctx, &sessionRepo.AppendActionLogInput{
		Log: log,
	})
	if err != nil {
		return nil, err
	}

	// Fire-and-forget: delivery is neither awaited nor retried
	s.notifier.SessionUpdated(session.ID)
	if roleState.AssignedUserID != "" {
		s.notifier.RoleStateChanged(session.ID, roleState.AssignedUserID)
	}

	return &PerformActionOutput{
		Success: success,
		Message: message,
		Log:     log,
	}, nil
}

// applyEffects mutates the role's ledger: tags already actively held are
// refreshed instead of granted twice, removals apply regardless of outcome.
func (s *service) applyEffects(roleState *models.GameRoleState, tagsToApply, tagsToRemove []models.Tag, now time.Time) {
	// Partition against the pre-mutation active set
	activeTags := roleState.AllActiveTags(now)

	var toGrant, toRefresh []models.Tag
	for _, tag := range tagsToApply {
		if _, ok := activeTags[tag.ID]; ok {
			toRefresh = append(toRefresh, tag)
		} else {
			toGrant = append(toGrant, tag)
		}
	}

	removeSet := make(map[string]struct{}, len(tagsToRemove))
	for _, tag := range tagsToRemove {
		removeSet[tag.ID] = struct{}{}
	}

	kept := roleState.AppliedTags[:0]
	for _, applied := range roleState.AppliedTags {
		if _, ok := removeSet[applied.Tag.ID]; !ok {
			kept = append(kept, applied)
		}
	}
	roleState.AppliedTags = kept

	for _, tag := range toGrant {
		roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
			ID:        s.uuidGenerator.NewUUID(),
			Tag:       tag,
			UserID:    roleState.AssignedUserID,
			UserEmail: roleState.AssignedEmail,
			AppliedAt: now,
		})
	}

	for _, tag := range toRefresh {
		if applied := roleState.FindActiveAppliedTag(tag.ID, now); applied != nil {
			applied.AppliedAt = now
		}
	}
}

// GetAvailableActions returns the scenario-level actions displayable to a role
func (s *service) GetAvailableActions(ctx context.Context, input *GetAvailableActionsInput) (*GetAvailableActionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roleState, scenario, err := s.getRoleStateWithScenario(ctx, input.RoleStateID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	actions := make([]models.ScenarioAction, 0, len(scenario.Actions))
	for _, scenarioAction := range scenario.Actions {
		if canDisplayAction(roleState, &scenarioAction.Action, now) {
			actions = append(actions, scenarioAction)
		}
	}

	return &GetAvailableActionsOutput{Actions: actions}, nil
}

// GetAvailableItemActions returns one item's actions displayable to a role
func (s *service) GetAvailableItemActions(ctx context.Context, input *GetAvailableItemActionsInput) (*GetAvailableItemActionsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roleState, scenario, err := s.getRoleStateWithScenario(ctx, input.RoleStateID)
	if err != nil {
		return nil, err
	}

	item := scenario.FindItem(input.ScenarioItemID)
	if item == nil {
		return nil, ErrItemNotFound
	}

	now := s.clock.Now()
	actions := make([]models.ScenarioItemAction, 0, len(item.Actions))
	for _, itemAction := range item.Actions {
		if canDisplayAction(roleState, &itemAction.Action, now) {
			actions = append(actions, itemAction)
		}
	}

	return &GetAvailableItemActionsOutput{Actions: actions}, nil
}

// UpdateRoleState replaces a role's tag membership with the requested set:
// tags not actively held are granted, active tags not requested are revoked.
// This administrative path bypasses action resolution entirely.
func (s *service) UpdateRoleState(ctx context.Context, input *UpdateRoleStateInput) (*UpdateRoleStateOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roleState, err := s.sessionRepo.GetRoleState(ctx, &sessionRepo.GetRoleStateInput{
		RoleStateID: input.RoleStateID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrRoleStateNotFound) {
			return nil, ErrRoleStateNotFound
		}
		return nil, err
	}

	tagsOut, err := s.tagRepo.GetTagsByIDs(ctx, &tagRepo.GetTagsByIDsInput{
		TagIDs: input.TagIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load requested tags: %w", err)
	}

	now := s.clock.Now()
	activeTags := roleState.AllActiveTags(now)

	requestedSet := make(map[string]struct{}, len(tagsOut.Tags))
	for _, tag := range tagsOut.Tags {
		requestedSet[tag.ID] = struct{}{}
	}

	// Revoke active tags that are no longer requested
	kept := roleState.AppliedTags[:0]
	for _, applied := range roleState.AppliedTags {
		_, requested := requestedSet[applied.Tag.ID]
		if applied.IsActive(now) && !requested {
			continue
		}
		kept = append(kept, applied)
	}
	roleState.AppliedTags = kept

	// Grant requested tags that are not actively held
	for _, tag := range tagsOut.Tags {
		if _, ok := activeTags[tag.ID]; ok {
			continue
		}
		roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
			ID:        s.uuidGenerator.NewUUID(),
			Tag:       tag,
			UserID:    roleState.AssignedUserID,
			UserEmail: roleState.AssignedEmail,
			AppliedAt: now,
		})
	}

	err = s.sessionRepo.SaveRoleState(ctx, &sessionRepo.SaveRoleStateInput{
		RoleState: roleState,
	})
	if err != nil {
		return nil, err
	}

	if roleState.AssignedUserID != "" {
		s.notifier.RoleStateChanged(roleState.GameSessionID, roleState.AssignedUserID)
	}

	return &UpdateRoleStateOutput{RoleState: roleState}, nil
}

// GetSession retrieves a session with its role and item state
func (s *service) GetSession(ctx context.Context, input *GetSessionInput) (*GetSessionOutput, error) {
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

	roleStates, err := s.sessionRepo.GetRoleStates(ctx, &sessionRepo.GetRoleStatesInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	itemStates, err := s.sessionRepo.GetItemStates(ctx, &sessionRepo.GetItemStatesInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	return &GetSessionOutput{
		Session:    session,
		RoleStates: roleStates.RoleStates,
		ItemStates: itemStates.ItemStates,
	}, nil
}

// GetSessionByEvent retrieves the session created for an event
func (s *service) GetSessionByEvent(ctx context.Context, input *GetSessionByEventInput) (*GetSessionByEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	session, err := s.sessionRepo.GetSessionByEvent(ctx, &sessionRepo.GetSessionByEventInput{
		EventID: input.EventID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	return &GetSessionByEventOutput{Session: session}, nil
}

// GetRoleStateForUser retrieves the role state assigned to a user in a session
func (s *service) GetRoleStateForUser(ctx context.Context, input *GetRoleStateForUserInput) (*GetRoleStateForUserOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roleState, err := s.sessionRepo.GetRoleStateByUser(ctx, &sessionRepo.GetRoleStateByUserInput{
		SessionID: input.SessionID,
		UserID:    input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrRoleStateNotFound) {
			return nil, ErrRoleStateNotFound
		}
		return nil, err
	}

	return &GetRoleStateForUserOutput{RoleState: roleState}, nil
}

// GetSessionHistory retrieves a session's action log, newest first
func (s *service) GetSessionHistory(ctx context.Context, input *GetSessionHistoryInput) (*GetSessionHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	logs, err := s.sessionRepo.GetActionLogs(ctx, &sessionRepo.GetActionLogsInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		return nil, err
	}

	return &GetSessionHistoryOutput{Logs: logs.Logs}, nil
}

// GetUserSessionHistory retrieves the log entries performed by a user's role.
// A user with no role in the session gets an empty history, not an error.
func (s *service) GetUserSessionHistory(ctx context.Context, input *GetUserSessionHistoryInput) (*GetUserSessionHistoryOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	roleState, err := s.sessionRepo.GetRoleStateByUser(ctx, &sessionRepo.GetRoleStateByUserInput{
		SessionID: input.SessionID,
		UserID:    input.UserID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrRoleStateNotFound) {
			return &GetUserSessionHistoryOutput{Logs: []*models.GameActionLog{}}, nil
		}
		return nil, err
	}

	logs, err := s.sessionRepo.GetActionLogsByPerformer(ctx, &sessionRepo.GetActionLogsByPerformerInput{
		SessionID:   input.SessionID,
		RoleStateID: roleState.ID,
	})
	if err != nil {
		return nil, err
	}

	return &GetUserSessionHistoryOutput{Logs: logs.Logs}, nil
}

// getRoleStateWithScenario resolves a role state and the scenario its session runs
func (s *service) getRoleStateWithScenario(ctx context.Context, roleStateID string) (*models.GameRoleState, *models.Scenario, error) {
	roleState, err := s.sessionRepo.GetRoleState(ctx, &sessionRepo.GetRoleStateInput{
		RoleStateID: roleStateID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrRoleStateNotFound) {
			return nil, nil, ErrRoleStateNotFound
		}
		return nil, nil, err
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: roleState.GameSessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, nil, ErrSessionNotFound
		}
		return nil, nil, err
	}

	scenario, err := s.scenarioRepo.GetScenario(ctx, &scenarioRepo.GetScenarioInput{
		ScenarioID: session.ScenarioID,
	})
	if err != nil {
		if errors.Is(err, scenarioRepo.ErrScenarioNotFound) {
			return nil, nil, ErrScenarioNotFound
		}
		return nil, nil, err
	}

	return roleState, scenario, nil
}

// canDisplayAction applies the display gate: all required display tags active,
// no forbidden display tag active.
func canDisplayAction(roleState *models.GameRoleState, action *models.Action, now time.Time) bool {
	activeTags := roleState.AllActiveTags(now)

	return containsAllTags(activeTags, action.RequiredTagsToDisplay) &&
		!containsAnyTag(activeTags, action.ForbiddenTagsToDisplay)
}

func containsAllTags(activeTags map[string]models.Tag, required []models.Tag) bool {
	for _, tag := range required {
		if _, ok := activeTags[tag.ID]; !ok {
			return false
		}
	}
	return true
}

func containsAnyTag(activeTags map[string]models.Tag, tags []models.Tag) bool {
	for _, tag := range tags {
		if _, ok := activeTags[tag.ID]; ok {
			return true
		}
	}
	return false
}
