package identity

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const (
	// Key prefix for Redis
	accountEmailKeyPrefix = "account_email:"
)

// Config holds configuration for the Redis account directory
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisDirectory implements the Resolver interface against a Redis-backed
// account directory
type redisDirectory struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed account directory
func NewRedis(cfg *Config) (*redisDirectory, error) {
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

	return &redisDirectory{
		client: cfg.RedisClient,
	}, nil
}

// RegisterAccount records an email -> user ID mapping
func (r *redisDirectory) RegisterAccount(ctx context.Context, email, userID string) error {
	if email == "" || userID == "" {
		return errors.New("email and user ID cannot be empty")
	}

	if err := r.client.Set(ctx, accountEmailKeyPrefix+email, userID, 0).Err(); err != nil {
		return fmt.Errorf("failed to register account: %w", err)
	}

	return nil
}

// ResolveUserIDs resolves a batch of emails to user IDs. Unknown emails
// resolve to the empty string.
func (r *redisDirectory) ResolveUserIDs(ctx context.Context, input *ResolveUserIDsInput) (*ResolveUserIDsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	userIDs := make(map[string]string, len(input.Emails))
	for _, email := range input.Emails {
		userID, err := r.client.Get(ctx, accountEmailKeyPrefix+email).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				userIDs[email] = ""
				continue
			}
			return nil, fmt.Errorf("failed to resolve email %s: %w", email, err)
		}
		userIDs[email] = userID
	}

	return &ResolveUserIDsOutput{UserIDs: userIDs}, nil
}
