package scenario

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/larpwright/larpwright/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
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
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) buildScenario() *models.Scenario {
	poisoned := models.Tag{ID: "tag-poisoned", Value: "poisoned", ExpiresAfterMinutes: 30}

	return &models.Scenario{
		ID:   "scenario-1",
		Name: "The Masquerade",
		Roles: []models.ScenarioRole{
			{
				ID:         "scenario-role-1",
				ScenarioID: "scenario-1",
				Role: models.Role{
					ID:   "role-1",
					Name: "Countess",
					Tags: []models.Tag{{ID: "tag-noble", Value: "noble"}},
				},
				DescriptionForOwner:  "You know about the poison.",
				DescriptionForOthers: "A wealthy host.",
			},
		},
		Items: []models.ScenarioItem{
			{
				ID:         "scenario-item-1",
				ScenarioID: "scenario-1",
				Name:       "Silver Goblet",
				Actions: []models.ScenarioItemAction{
					{
						ItemID: "scenario-item-1",
						Action: models.Action{
							ID:                   "action-drink",
							Name:                 "Drink",
							TagsToApplyOnFailure: []models.Tag{poisoned},
						},
					},
				},
			},
		},
		Actions: []models.ScenarioAction{
			{
				ScenarioID: "scenario-1",
				Action: models.Action{
					ID:                    "action-cure",
					Name:                  "Take Antidote",
					RequiredTagsToSucceed: []models.Tag{poisoned},
					TagsToRemoveOnSuccess: []models.Tag{poisoned},
				},
			},
		},
	}
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetScenario() {
	scenario := s.buildScenario()

	err := s.repo.SaveScenario(context.Background(), &SaveScenarioInput{
		Scenario: scenario,
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetScenario(context.Background(), &GetScenarioInput{
		ScenarioID: "scenario-1",
	})
	s.Require().NoError(err)
	s.Require().NotNil(retrieved)

	// The whole aggregate round-trips: roles, items, and actions with their
	// embedded tag lists
	s.Equal("The Masquerade", retrieved.Name)
	s.Require().Len(retrieved.Roles, 1)
	s.Equal("Countess", retrieved.Roles[0].Role.Name)
	s.Require().Len(retrieved.Roles[0].Role.Tags, 1)
	s.Equal("tag-noble", retrieved.Roles[0].Role.Tags[0].ID)

	s.Require().Len(retrieved.Items, 1)
	s.Require().Len(retrieved.Items[0].Actions, 1)
	s.Equal("action-drink", retrieved.Items[0].Actions[0].ID)
	s.Require().Len(retrieved.Items[0].Actions[0].TagsToApplyOnFailure, 1)
	s.Equal(30, retrieved.Items[0].Actions[0].TagsToApplyOnFailure[0].ExpiresAfterMinutes)

	s.Require().Len(retrieved.Actions, 1)
	s.Equal("action-cure", retrieved.Actions[0].ID)
}

func (s *RedisRepositoryTestSuite) TestGetScenario_NotFound() {
	_, err := s.repo.GetScenario(context.Background(), &GetScenarioInput{
		ScenarioID: "missing",
	})
	s.Require().Error(err)
	s.ErrorIs(err, ErrScenarioNotFound)
}

func (s *RedisRepositoryTestSuite) TestListScenarios() {
	err := s.repo.SaveScenario(context.Background(), &SaveScenarioInput{
		Scenario: s.buildScenario(),
	})
	s.Require().NoError(err)

	second := s.buildScenario()
	second.ID = "scenario-2"
	second.Name = "The Heist"
	err = s.repo.SaveScenario(context.Background(), &SaveScenarioInput{
		Scenario: second,
	})
	s.Require().NoError(err)

	output, err := s.repo.ListScenarios(context.Background(), &ListScenariosInput{})
	s.Require().NoError(err)
	s.Len(output.Scenarios, 2)
}

func (s *RedisRepositoryTestSuite) TestDeleteScenario() {
	err := s.repo.SaveScenario(context.Background(), &SaveScenarioInput{
		Scenario: s.buildScenario(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteScenario(context.Background(), &DeleteScenarioInput{
		ScenarioID: "scenario-1",
	})
	s.Require().NoError(err)

	_, err = s.repo.GetScenario(context.Background(), &GetScenarioInput{
		ScenarioID: "scenario-1",
	})
	s.ErrorIs(err, ErrScenarioNotFound)
}
