package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/larpwright/larpwright/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	repo    Repository
	testNow time.Time
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo

	s.testNow = time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

// buildSnapshot returns a session with two role states (one unresolved) and
// one item state, ready to be persisted
func (s *RedisRepositoryTestSuite) buildSnapshot() *CreateSessionInput {
	session := &models.GameSession{
		ID:           "session-1",
		EventID:      "event-1",
		ScenarioID:   "scenario-1",
		StartTime:    s.testNow,
		RoleStateIDs: []string{"role-state-1", "role-state-2"},
		ItemStateIDs: []string{"item-state-1"},
	}

	roleStates := []*models.GameRoleState{
		{
			ID:             "role-state-1",
			GameSessionID:  "session-1",
			ScenarioRoleID: "scenario-role-1",
			AssignedEmail:  "alice@example.com",
			AssignedUserID: "user-alice",
			AppliedTags: []models.AppliedTag{
				{
					ID:        "applied-1",
					Tag:       models.Tag{ID: "tag-armed", Value: "armed"},
					UserID:    "user-alice",
					UserEmail: "alice@example.com",
					AppliedAt: s.testNow,
				},
			},
		},
		{
			ID:             "role-state-2",
			GameSessionID:  "session-1",
			ScenarioRoleID: "scenario-role-2",
			AssignedEmail:  "ghost@example.com",
			AssignedUserID: "",
		},
	}

	itemStates := []*models.GameItemState{
		{
			ID:             "item-state-1",
			GameSessionID:  "session-1",
			ScenarioItemID: "scenario-item-1",
		},
	}

	return &CreateSessionInput{
		Session:    session,
		RoleStates: roleStates,
		ItemStates: itemStates,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGetSession() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	s.Equal("session-1", retrieved.ID)
	s.Equal("event-1", retrieved.EventID)
	s.Equal("scenario-1", retrieved.ScenarioID)
	s.Equal(s.testNow.Unix(), retrieved.StartTime.Unix())
	s.True(retrieved.EndTime.IsZero())
	s.Equal([]string{"role-state-1", "role-state-2"}, retrieved.RoleStateIDs)
	s.Equal([]string{"item-state-1"}, retrieved.ItemStateIDs)
}

func (s *RedisRepositoryTestSuite) TestGetSessionByEvent() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	retrieved, err := s.repo.GetSessionByEvent(context.Background(), &GetSessionByEventInput{
		EventID: "event-1",
	})
	s.Require().NoError(err)
	s.Equal("session-1", retrieved.ID)

	_, err = s.repo.GetSessionByEvent(context.Background(), &GetSessionByEventInput{
		EventID: "event-without-session",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetRoleStateByUser() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	retrieved, err := s.repo.GetRoleStateByUser(context.Background(), &GetRoleStateByUserInput{
		SessionID: "session-1",
		UserID:    "user-alice",
	})
	s.Require().NoError(err)
	s.Equal("role-state-1", retrieved.ID)
	s.Require().Len(retrieved.AppliedTags, 1)
	s.Equal("tag-armed", retrieved.AppliedTags[0].Tag.ID)

	// The unresolved player has no user lookup
	_, err = s.repo.GetRoleStateByUser(context.Background(), &GetRoleStateByUserInput{
		SessionID: "session-1",
		UserID:    "user-ghost",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrRoleStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestGetRoleStates() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	output, err := s.repo.GetRoleStates(context.Background(), &GetRoleStatesInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.RoleStates, 2)
	s.Equal("role-state-1", output.RoleStates[0].ID)
	s.Equal("role-state-2", output.RoleStates[1].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveRoleState() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	roleState, err := s.repo.GetRoleState(context.Background(), &GetRoleStateInput{
		RoleStateID: "role-state-1",
	})
	s.Require().NoError(err)

	roleState.AppliedTags = append(roleState.AppliedTags, models.AppliedTag{
		ID:        "applied-2",
		Tag:       models.Tag{ID: "tag-wounded", Value: "wounded", ExpiresAfterMinutes: 60},
		AppliedAt: s.testNow,
	})

	err = s.repo.SaveRoleState(context.Background(), &SaveRoleStateInput{
		RoleState: roleState,
	})
	s.Require().NoError(err)

	reloaded, err := s.repo.GetRoleState(context.Background(), &GetRoleStateInput{
		RoleStateID: "role-state-1",
	})
	s.Require().NoError(err)
	s.Require().Len(reloaded.AppliedTags, 2)
	s.Equal("tag-wounded", reloaded.AppliedTags[1].Tag.ID)
	s.Equal(60, reloaded.AppliedTags[1].Tag.ExpiresAfterMinutes)
}

func (s *RedisRepositoryTestSuite) TestGetItemStateByScenarioItem() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	retrieved, err := s.repo.GetItemStateByScenarioItem(context.Background(), &GetItemStateByScenarioItemInput{
		SessionID:      "session-1",
		ScenarioItemID: "scenario-item-1",
	})
	s.Require().NoError(err)
	s.Equal("item-state-1", retrieved.ID)

	_, err = s.repo.GetItemStateByScenarioItem(context.Background(), &GetItemStateByScenarioItemInput{
		SessionID:      "session-1",
		ScenarioItemID: "no-such-item",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrItemStateNotFound)
}

func (s *RedisRepositoryTestSuite) TestActionLogs_NewestFirst() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	for i, id := range []string{"log-1", "log-2", "log-3"} {
		err := s.repo.AppendActionLog(context.Background(), &AppendActionLogInput{
			Log: &models.GameActionLog{
				ID:                   id,
				GameSessionID:        "session-1",
				ActionID:             "action-1",
				PerformerRoleStateID: "role-state-1",
				Timestamp:            s.testNow.Add(time.Duration(i) * time.Minute),
				Success:              true,
			},
		})
		s.Require().NoError(err)
	}

	output, err := s.repo.GetActionLogs(context.Background(), &GetActionLogsInput{
		SessionID: "session-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Logs, 3)
	s.Equal("log-3", output.Logs[0].ID)
	s.Equal("log-2", output.Logs[1].ID)
	s.Equal("log-1", output.Logs[2].ID)
}

func (s *RedisRepositoryTestSuite) TestActionLogsByPerformer() {
	err := s.repo.CreateSession(context.Background(), s.buildSnapshot())
	s.Require().NoError(err)

	err = s.repo.AppendActionLog(context.Background(), &AppendActionLogInput{
		Log: &models.GameActionLog{
			ID:                   "log-alice",
			GameSessionID:        "session-1",
			PerformerRoleStateID: "role-state-1",
			Timestamp:            s.testNow,
		},
	})
	s.Require().NoError(err)

	err = s.repo.AppendActionLog(context.Background(), &AppendActionLogInput{
		Log: &models.GameActionLog{
			ID:                   "log-ghost",
			GameSessionID:        "session-1",
			PerformerRoleStateID: "role-state-2",
			Timestamp:            s.testNow.Add(time.Minute),
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.GetActionLogsByPerformer(context.Background(), &GetActionLogsByPerformerInput{
		SessionID:   "session-1",
		RoleStateID: "role-state-1",
	})
	s.Require().NoError(err)
	s.Require().Len(output.Logs, 1)
	s.Equal("log-alice", output.Logs[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetSession_NotFound() {
	_, err := s.repo.GetSession(context.Background(), &GetSessionInput{
		SessionID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrSessionNotFound)
}
