package scenario

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/larpwright/larpwright/internal/models"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	scenarioKeyPrefix = "scenario:"
	allScenariosKey   = "scenarios"
)

// ErrScenarioNotFound is returned when a scenario is not found
var ErrScenarioNotFound = errors.New("scenario not found")

// Config holds configuration for the Redis scenario repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed scenario repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// SaveScenario persists a scenario aggregate to Redis
func (r *redisRepository) SaveScenario(ctx context.Context, input *SaveScenarioInput) error {
	if input == nil || input.Scenario == nil {
		return errors.New("input and scenario cannot be nil")
	}

	scenarioJSON, err := json.Marshal(input.Scenario)
	if err != nil {
		return fmt.Errorf("failed to marshal scenario: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, scenarioKeyPrefix+input.Scenario.ID, scenarioJSON, 0)
	pipe.SAdd(ctx, allScenariosKey, input.Scenario.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save scenario: %w", err)
	}

	return nil
}

// GetScenario retrieves a scenario from Redis by ID
func (r *redisRepository) GetScenario(ctx context.Context, input *GetScenarioInput) (*models.Scenario, error) {
	if input == nil || input.ScenarioID == "" {
		return nil, errors.New("input and scenario ID cannot be empty")
	}

	scenarioJSON, err := r.client.Get(ctx, scenarioKeyPrefix+input.ScenarioID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrScenarioNotFound
		}
		return nil, fmt.Errorf("failed to get scenario: %w", err)
	}

	var scenario models.Scenario
	if err := json.Unmarshal([]byte(scenarioJSON), &scenario); err != nil {
		return nil, fmt.Errorf("failed to unmarshal scenario: %w", err)
	}

	return &scenario, nil
}

// DeleteScenario removes a scenario from Redis
func (r *redisRepository) DeleteScenario(ctx context.Context, input *DeleteScenarioInput) error {
	if input == nil || input.ScenarioID == "" {
		return errors.New("input and scenario ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, scenarioKeyPrefix+input.ScenarioID)
	pipe.SRem(ctx, allScenariosKey, input.ScenarioID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete scenario: %w", err)
	}

	return nil
}

// ListScenarios retrieves all scenarios
func (r *redisRepository) ListScenarios(ctx context.Context, input *ListScenariosInput) (*ListScenariosOutput, error) {
	ids, err := r.client.SMembers(ctx, allScenariosKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list scenarios: %w", err)
	}

	scenarios := make([]*models.Scenario, 0, len(ids))
	for _, id := range ids {
		scenario, err := r.GetScenario(ctx, &GetScenarioInput{ScenarioID: id})
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, scenario)
	}

	return &ListScenariosOutput{Scenarios: scenarios}, nil
}
