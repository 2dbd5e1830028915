package game

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/larpwright/larpwright/internal/common/clock/mocks"
	uuidMocks "github.com/larpwright/larpwright/internal/common/uuid/mocks"
	identityMocks "github.com/larpwright/larpwright/internal/identity/mocks"
	"github.com/larpwright/larpwright/internal/models"
	notifyMocks "github.com/larpwright/larpwright/internal/notify/mocks"
	scenarioMocks "github.com/larpwright/larpwright/internal/repositories/scenario/mocks"
	sessionRepo "github.com/larpwright/larpwright/internal/repositories/session"
	sessionMocks "github.com/larpwright/larpwright/internal/repositories/session/mocks"
	tagRepo "github.com/larpwright/larpwright/internal/repositories/tag"
	tagMocks "github.com/larpwright/larpwright/internal/repositories/tag/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockSessionRepo  *sessionMocks.MockRepository
	mockScenarioRepo *scenarioMocks.MockRepository
	mockTagRepo      *tagMocks.MockRepository
	mockResolver     *identityMocks.MockResolver
	mockNotifier     *notifyMocks.MockNotifier
	mockClock        *mocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	gameService      Service
	ctx              context.Context

	// Test data
	testTime        time.Time
	testSessionID   string
	testScenarioID  string
	testRoleStateID string
	testUserID      string
	testEmail       string

	// Tag fixtures
	tagNoble    models.Tag
	tagPoisoned models.Tag
	tagAntidote models.Tag
	tagHidden   models.Tag

	// Reusable test fixtures
	expectedScenario  *models.Scenario
	expectedSession   *models.GameSession
	expectedRoleState *models.GameRoleState
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockScenarioRepo = scenarioMocks.NewMockRepository(s.mockCtrl)
	s.mockTagRepo = tagMocks.NewMockRepository(s.mockCtrl)
	s.mockResolver = identityMocks.NewMockResolver(s.mockCtrl)
	s.mockNotifier = notifyMocks.NewMockNotifier(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testScenarioID = "test-scenario-id"
	s.testRoleStateID = "test-role-state-id"
	s.testUserID = "test-user-id"
	s.testEmail = "alice@example.com"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Deterministic UUID sequence: uuid-1, uuid-2, ...
	uuidCounter := 0
	s.mockUUID.EXPECT().NewUUID().DoAndReturn(func() string {
		uuidCounter++
		return fmt.Sprintf("uuid-%d", uuidCounter)
	}).AnyTimes()

	s.tagNoble = models.Tag{ID: "tag-noble", Value: "noble"}
	s.tagPoisoned = models.Tag{ID: "tag-poisoned", Value: "poisoned", ExpiresAfterMinutes: 30}
	s.tagAntidote = models.Tag{ID: "tag-antidote", Value: "antidote"}
	s.tagHidden = models.Tag{ID: "tag-hidden", Value: "hidden"}

	s.expectedScenario = &models.Scenario{
		ID:   s.testScenarioID,
		Name: "The Masquerade",
		Roles: []models.ScenarioRole{
			{
				ID:         "scenario-role-1",
				ScenarioID: s.testScenarioID,
				Role: models.Role{
					ID:   "role-1",
					Name: "Countess",
					Tags: []models.Tag{s.tagNoble},
				},
			},
		},
		Items: []models.ScenarioItem{
			{
				ID:         "scenario-item-1",
				ScenarioID: s.testScenarioID,
				Name:       "Silver Goblet",
				Actions: []models.ScenarioItemAction{
					{
						ItemID: "scenario-item-1",
						Action: models.Action{
							ID:                   "action-drink",
							Name:                 "Drink",
							MessageOnSuccess:     "You drink deeply.",
							MessageOnFailure:     "The wine burns your throat.",
							TagsToApplyOnFailure: []models.Tag{s.tagPoisoned},
						},
					},
				},
			},
		},
		Actions: []models.ScenarioAction{
			{
				ScenarioID: s.testScenarioID,
				Action: models.Action{
					ID:                     "action-cure",
					Name:                   "Take Antidote",
					MessageOnSuccess:       "The poison fades.",
					MessageOnFailure:       "Nothing happens.",
					RequiredTagsToSucceed:  []models.Tag{s.tagPoisoned},
					TagsToRemoveOnSuccess:  []models.Tag{s.tagPoisoned},
					TagsToApplyOnSuccess:   []models.Tag{s.tagAntidote},
					RequiredTagsToDisplay:  []models.Tag{s.tagPoisoned},
					ForbiddenTagsToDisplay: nil,
				},
			},
		},
	}

	s.expectedSession = &models.GameSession{
		ID:         s.testSessionID,
		EventID:    "test-event-id",
		ScenarioID: s.testScenarioID,
		StartTime:  s.testTime.Add(-time.Hour),
	}

	s.expectedRoleState = &models.GameRoleState{
		ID:             s.testRoleStateID,
		GameSessionID:  s.testSessionID,
		ScenarioRoleID: "scenario-role-1",
		AssignedEmail:  s.testEmail,
		AssignedUserID: s.testUserID,
		AppliedTags: []models.AppliedTag{
			{
				ID:        "applied-noble",
				Tag:       models.Tag{ID: "tag-noble", Value: "noble"},
				UserID:    s.testUserID,
				UserEmail: s.testEmail,
				AppliedAt: s.testTime.Add(-time.Hour),
			},
		},
	}

	// Create the service with mocked dependencies
	cfg := &Config{
		SessionRepo:   s.mockSessionRepo,
		ScenarioRepo:  s.mockScenarioRepo,
		TagRepo:       s.mockTagRepo,
		Identity:      s.mockResolver,
		Notifier:      s.mockNotifier,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	}

	svc, err := New(cfg)
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectSessionAndRoleState wires the common lookups for PerformAction
func (s *GameServiceTestSuite) expectSessionAndRoleState(roleState *models.GameRoleState) {
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), &sessionRepo.GetSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(s.expectedSession, nil)

	s.mockSessionRepo.EXPECT().
		GetRoleState(gomock.Any(), &sessionRepo.GetRoleStateInput{
			RoleStateID: s.testRoleStateID,
		}).
		Return(roleState, nil)
}

func (s *GameServiceTestSuite) expectScenario() {
	s.mockScenarioRepo.EXPECT().
		GetScenario(gomock.Any(), gomock.Any()).
		Return(s.expectedScenario, nil)
}

func (s *GameServiceTestSuite) TestPerformAction_SuccessAppliesAndRemovesTags() {
	roleState := s.expectedRoleState
	roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
		ID:        "applied-poisoned",
		Tag:       s.tagPoisoned,
		UserID:    s.testUserID,
		UserEmail: s.testEmail,
		AppliedAt: s.testTime.Add(-5 * time.Minute),
	})

	s.expectSessionAndRoleState(roleState)
	s.expectScenario()

	var savedRoleState *models.GameRoleState
	s.mockSessionRepo.EXPECT().
		SaveRoleState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveRoleStateInput) error {
			savedRoleState = input.RoleState
			return nil
		})

	var appendedLog *models.GameActionLog
	s.mockSessionRepo.EXPECT().
		AppendActionLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.AppendActionLogInput) error {
			appendedLog = input.Log
			return nil
		})

	s.mockNotifier.EXPECT().SessionUpdated(s.testSessionID)
	s.mockNotifier.EXPECT().RoleStateChanged(s.testSessionID, s.testUserID)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-cure",
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)
	s.True(output.Success)
	s.Equal("The poison fades.", output.Message)

	// Poisoned removed, antidote granted, noble untouched
	s.Require().NotNil(savedRoleState)
	active := savedRoleState.AllActiveTags(s.testTime)
	s.Contains(active, "tag-noble")
	s.Contains(active, "tag-antidote")
	s.NotContains(active, "tag-poisoned")

	s.Require().NotNil(appendedLog)
	s.Equal("action-cure", appendedLog.ActionID)
	s.Equal("Take Antidote", appendedLog.ActionName)
	s.Equal(s.testRoleStateID, appendedLog.PerformerRoleStateID)
	s.Empty(appendedLog.TargetItemStateID)
	s.True(appendedLog.Success)
	s.Equal(s.testTime, appendedLog.Timestamp)
	s.Equal([]models.Tag{s.tagAntidote}, appendedLog.AppliedTags)
	s.Equal([]models.Tag{s.tagPoisoned}, appendedLog.RemovedTags)
}

func (s *GameServiceTestSuite) TestPerformAction_MissingRequiredTagFails() {
	// Role was poisoned 45 minutes ago with a 30 minute tag: expired, so the
	// cure's required tag is not active and the action fails
	roleState := s.expectedRoleState
	roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
		ID:        "applied-poisoned",
		Tag:       s.tagPoisoned,
		UserID:    s.testUserID,
		UserEmail: s.testEmail,
		AppliedAt: s.testTime.Add(-45 * time.Minute),
	})

	s.expectSessionAndRoleState(roleState)
	s.expectScenario()

	s.mockSessionRepo.EXPECT().SaveRoleState(gomock.Any(), gomock.Any()).Return(nil)

	var appendedLog *models.GameActionLog
	s.mockSessionRepo.EXPECT().
		AppendActionLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.AppendActionLogInput) error {
			appendedLog = input.Log
			return nil
		})

	s.mockNotifier.EXPECT().SessionUpdated(s.testSessionID)
	s.mockNotifier.EXPECT().RoleStateChanged(s.testSessionID, s.testUserID)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-cure",
	})

	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal("Nothing happens.", output.Message)

	s.Require().NotNil(appendedLog)
	s.False(appendedLog.Success)
	s.Empty(appendedLog.AppliedTags)
	s.Empty(appendedLog.RemovedTags)
}

func (s *GameServiceTestSuite) TestPerformAction_ForbiddenTagBlocksSuccess() {
	scenario := s.expectedScenario
	scenario.Actions = append(scenario.Actions, models.ScenarioAction{
		ScenarioID: s.testScenarioID,
		Action: models.Action{
			ID:                     "action-sneak",
			Name:                   "Sneak Out",
			MessageOnSuccess:       "You slip away unseen.",
			MessageOnFailure:       "A guard spots you.",
			ForbiddenTagsToSucceed: []models.Tag{s.tagNoble},
		},
	})

	// The performer holds the noble tag, which forbids success even though
	// every required tag (there are none) is satisfied
	s.expectSessionAndRoleState(s.expectedRoleState)
	s.expectScenario()

	s.mockSessionRepo.EXPECT().SaveRoleState(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSessionRepo.EXPECT().AppendActionLog(gomock.Any(), gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().SessionUpdated(s.testSessionID)
	s.mockNotifier.EXPECT().RoleStateChanged(s.testSessionID, s.testUserID)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-sneak",
	})

	s.Require().NoError(err)
	s.False(output.Success)
	s.Equal("A guard spots you.", output.Message)
}

func (s *GameServiceTestSuite) TestPerformAction_RefreshesHeldTagInsteadOfDuplicating() {
	scenario := s.expectedScenario
	scenario.Actions = append(scenario.Actions, models.ScenarioAction{
		ScenarioID: s.testScenarioID,
		Action: models.Action{
			ID:                   "action-poison",
			Name:                 "Poison",
			MessageOnSuccess:     "The poison takes hold.",
			TagsToApplyOnSuccess: []models.Tag{s.tagPoisoned},
		},
	})

	// Already actively poisoned 10 minutes ago
	roleState := s.expectedRoleState
	roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
		ID:        "applied-poisoned",
		Tag:       s.tagPoisoned,
		UserID:    s.testUserID,
		UserEmail: s.testEmail,
		AppliedAt: s.testTime.Add(-10 * time.Minute),
	})

	s.expectSessionAndRoleState(roleState)
	s.expectScenario()

	var savedRoleState *models.GameRoleState
	s.mockSessionRepo.EXPECT().
		SaveRoleState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveRoleStateInput) error {
			savedRoleState = input.RoleState
			return nil
		})
	s.mockSessionRepo.EXPECT().AppendActionLog(gomock.Any(), gomock.Any()).Return(nil)
	s.mockNotifier.EXPECT().SessionUpdated(s.testSessionID)
	s.mockNotifier.EXPECT().RoleStateChanged(s.testSessionID, s.testUserID)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-poison",
	})

	s.Require().NoError(err)
	s.True(output.Success)

	// Still a single poisoned grant, its timer restarted
	s.Require().NotNil(savedRoleState)
	s.Len(savedRoleState.AppliedTags, 2)
	refreshed := savedRoleState.FindActiveAppliedTag("tag-poisoned", s.testTime)
	s.Require().NotNil(refreshed)
	s.Equal("applied-poisoned", refreshed.ID)
	s.Equal(s.testTime, refreshed.AppliedAt)
}

func (s *GameServiceTestSuite) TestPerformAction_ItemActionRecordsTargetItemState() {
	roleState := s.expectedRoleState

	s.expectSessionAndRoleState(roleState)
	s.expectScenario()

	s.mockSessionRepo.EXPECT().
		GetItemStateByScenarioItem(gomock.Any(), &sessionRepo.GetItemStateByScenarioItemInput{
			SessionID:      s.testSessionID,
			ScenarioItemID: "scenario-item-1",
		}).
		Return(&models.GameItemState{
			ID:             "item-state-1",
			GameSessionID:  s.testSessionID,
			ScenarioItemID: "scenario-item-1",
		}, nil)

	var savedRoleState *models.GameRoleState
	s.mockSessionRepo.EXPECT().
		SaveRoleState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveRoleStateInput) error {
			savedRoleState = input.RoleState
			return nil
		})

	var appendedLog *models.GameActionLog
	s.mockSessionRepo.EXPECT().
		AppendActionLog(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.AppendActionLogInput) error {
			appendedLog = input.Log
			return nil
		})

	s.mockNotifier.EXPECT().SessionUpdated(s.testSessionID)
	s.mockNotifier.EXPECT().RoleStateChanged(s.testSessionID, s.testUserID)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-drink",
		TargetItemID:         "scenario-item-1",
	})

	s.Require().NoError(err)
	s.True(output.Success)
	s.Equal("You drink deeply.", output.Message)

	s.Require().NotNil(appendedLog)
	s.Equal("item-state-1", appendedLog.TargetItemStateID)

	// Success path applies nothing, the ledger is untouched
	s.Require().NotNil(savedRoleState)
	s.Len(savedRoleState.AppliedTags, 1)
}

func (s *GameServiceTestSuite) TestPerformAction_UnresolvedUserSkipsUserNotification() {
	roleState := s.expectedRoleState
	roleState.AssignedUserID = ""

	s.expectSessionAndRoleState(roleState)
	s.expectScenario()

	s.mockSessionRepo.EXPECT().SaveRoleState(gomock.Any(), gomock.Any()).Return(nil)
	s.mockSessionRepo.EXPECT().AppendActionLog(gomock.Any(), gomock.Any()).Return(nil)

	// Only the session broadcast fires; RoleStateChanged is never called
	s.mockNotifier.EXPECT().SessionUpdated(s.testSessionID)

	_, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-cure",
	})

	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestPerformAction_SessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(nil, sessionRepo.ErrSessionNotFound)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            "missing-session",
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-cure",
	})

	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPerformAction_RoleStateFromOtherSession() {
	roleState := s.expectedRoleState
	roleState.GameSessionID = "some-other-session"

	s.expectSessionAndRoleState(roleState)

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-cure",
	})

	s.Require().Error(err)
	s.ErrorIs(err, ErrRoleStateNotFound)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPerformAction_UnknownAction() {
	s.expectSessionAndRoleState(s.expectedRoleState)
	s.expectScenario()

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "no-such-action",
	})

	s.Require().Error(err)
	s.ErrorIs(err, ErrActionNotFound)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestPerformAction_UnknownTargetItem() {
	s.expectSessionAndRoleState(s.expectedRoleState)
	s.expectScenario()

	output, err := s.gameService.PerformAction(s.ctx, &PerformActionInput{
		SessionID:            s.testSessionID,
		PerformerRoleStateID: s.testRoleStateID,
		ActionID:             "action-drink",
		TargetItemID:         "no-such-item",
	})

	s.Require().Error(err)
	s.ErrorIs(err, ErrItemNotFound)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestGetAvailableActions_FiltersByDisplayGate() {
	// The cure action requires the poisoned tag to display; the bare role
	// state only holds noble, so nothing is visible
	s.mockSessionRepo.EXPECT().
		GetRoleState(gomock.Any(), &sessionRepo.GetRoleStateInput{
			RoleStateID: s.testRoleStateID,
		}).
		Return(s.expectedRoleState, nil)
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), &sessionRepo.GetSessionInput{
			SessionID: s.testSessionID,
		}).
		Return(s.expectedSession, nil)
	s.expectScenario()

	output, err := s.gameService.GetAvailableActions(s.ctx, &GetAvailableActionsInput{
		RoleStateID: s.testRoleStateID,
	})

	s.Require().NoError(err)
	s.Empty(output.Actions)
}

func (s *GameServiceTestSuite) TestGetAvailableActions_ShowsActionWhenDisplayTagActive() {
	roleState := s.expectedRoleState
	roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
		ID:        "applied-poisoned",
		Tag:       s.tagPoisoned,
		AppliedAt: s.testTime.Add(-5 * time.Minute),
	})

	s.mockSessionRepo.EXPECT().
		GetRoleState(gomock.Any(), gomock.Any()).
		Return(roleState, nil)
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(s.expectedSession, nil)
	s.expectScenario()

	output, err := s.gameService.GetAvailableActions(s.ctx, &GetAvailableActionsInput{
		RoleStateID: s.testRoleStateID,
	})

	s.Require().NoError(err)
	s.Require().Len(output.Actions, 1)
	s.Equal("action-cure", output.Actions[0].ID)
}

func (s *GameServiceTestSuite) TestGetAvailableItemActions_ReturnsItemActions() {
	s.mockSessionRepo.EXPECT().
		GetRoleState(gomock.Any(), gomock.Any()).
		Return(s.expectedRoleState, nil)
	s.mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), gomock.Any()).
		Return(s.expectedSession, nil)
	s.expectScenario()

	output, err := s.gameService.GetAvailableItemActions(s.ctx, &GetAvailableItemActionsInput{
		RoleStateID:    s.testRoleStateID,
		ScenarioItemID: "scenario-item-1",
	})

	s.Require().NoError(err)
	s.Require().Len(output.Actions, 1)
	s.Equal("action-drink", output.Actions[0].ID)
}

func (s *GameServiceTestSuite) TestUpdateRoleState_ReplacesTagMembership() {
	// The role actively holds noble; the request asks for poisoned only, so
	// noble is revoked and poisoned granted
	s.mockSessionRepo.EXPECT().
		GetRoleState(gomock.Any(), &sessionRepo.GetRoleStateInput{
			RoleStateID: s.testRoleStateID,
		}).
		Return(s.expectedRoleState, nil)

	s.mockTagRepo.EXPECT().
		GetTagsByIDs(gomock.Any(), &tagRepo.GetTagsByIDsInput{
			TagIDs: []string{"tag-poisoned"},
		}).
		Return(&tagRepo.GetTagsByIDsOutput{
			Tags: []models.Tag{s.tagPoisoned},
		}, nil)

	var savedRoleState *models.GameRoleState
	s.mockSessionRepo.EXPECT().
		SaveRoleState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input *sessionRepo.SaveRoleStateInput) error {
			savedRoleState = input.RoleState
			return nil
		})

	s.mockNotifier.EXPECT().RoleStateChanged(s.testSessionID, s.testUserID)

	output, err := s.gameService.UpdateRoleState(s.ctx, &UpdateRoleStateInput{
		RoleStateID: s.testRoleStateID,
		TagIDs:      []string{"tag-poisoned"},
	})

	s.Require().NoError(err)
	s.Require().NotNil(output)

	s.Require().NotNil(savedRoleState)
	active := savedRoleState.AllActiveTags(s.testTime)
	s.NotContains(active, "tag-noble")
	s.Contains(active, "tag-poisoned")
}

func (s *GameServiceTestSuite) TestUpdateRoleState_UnknownTagFails() {
	s.mockSessionRepo.EXPECT().
		GetRoleState(gomock.Any(), gomock.Any()).
		Return(s.expectedRoleState, nil)

	s.mockTagRepo.EXPECT().
		GetTagsByIDs(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: no-such-tag", tagRepo.ErrTagNotFound))

	output, err := s.gameService.UpdateRoleState(s.ctx, &UpdateRoleStateInput{
		RoleStateID: s.testRoleStateID,
		TagIDs:      []string{"no-such-tag"},
	})

	s.Require().Error(err)
	s.ErrorIs(err, tagRepo.ErrTagNotFound)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestGetUserSessionHistory_NoRoleReturnsEmpty() {
	s.mockSessionRepo.EXPECT().
		GetRoleStateByUser(gomock.Any(), &sessionRepo.GetRoleStateByUserInput{
			SessionID: s.testSessionID,
			UserID:    "stranger",
		}).
		Return(nil, sessionRepo.ErrRoleStateNotFound)

	output, err := s.gameService.GetUserSessionHistory(s.ctx, &GetUserSessionHistoryInput{
		SessionID: s.testSessionID,
		UserID:    "stranger",
	})

	s.Require().NoError(err)
	s.Empty(output.Logs)
}

func (s *GameServiceTestSuite) TestGetSessionHistory_PropagatesRepoError() {
	expectedError := errors.New("redis unavailable")

	s.mockSessionRepo.EXPECT().
		GetActionLogs(gomock.Any(), gomock.Any()).
		Return(nil, expectedError)

	output, err := s.gameService.GetSessionHistory(s.ctx, &GetSessionHistoryInput{
		SessionID: s.testSessionID,
	})

	s.Require().Error(err)
	s.Equal(expectedError, err)
	s.Nil(output)
}

func (s *GameServiceTestSuite) TestNew_NilDependencies() {
	_, err := New(nil)
	s.ErrorIs(err, ErrNilConfig)

	_, err = New(&Config{})
	s.ErrorIs(err, ErrNilSessionRepo)

	_, err = New(&Config{
		SessionRepo: s.mockSessionRepo,
	})
	s.ErrorIs(err, ErrNilScenarioRepo)
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}
