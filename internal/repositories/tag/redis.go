package tag

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
	tagKeyPrefix = "tag:"
	allTagsKey   = "tags"
)

// ErrTagNotFound is returned when a tag is not found
var ErrTagNotFound = errors.New("tag not found")

// Config holds configuration for the Redis tag repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed tag repository
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

// SaveTag persists a tag to Redis
func (r *redisRepository) SaveTag(ctx context.Context, input *SaveTagInput) error {
	if input == nil || input.Tag == nil {
		return errors.New("input and tag cannot be nil")
	}

	tagJSON, err := json.Marshal(input.Tag)
	if err != nil {
		return fmt.Errorf("failed to marshal tag: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, tagKeyPrefix+input.Tag.ID, tagJSON, 0)
	pipe.SAdd(ctx, allTagsKey, input.Tag.ID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save tag: %w", err)
	}

	return nil
}

// GetTag retrieves a tag from Redis by ID
func (r *redisRepository) GetTag(ctx context.Context, input *GetTagInput) (*models.Tag, error) {
	if input == nil || input.TagID == "" {
		return nil, errors.New("input and tag ID cannot be empty")
	}

	tagJSON, err := r.client.Get(ctx, tagKeyPrefix+input.TagID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrTagNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	var tag models.Tag
	if err := json.Unmarshal([]byte(tagJSON), &tag); err != nil {
		return nil, fmt.Errorf("failed to unmarshal tag: %w", err)
	}

	return &tag, nil
}

// GetTagsByIDs retrieves tags for a list of IDs in a single round trip.
// The returned slice preserves the input order; any missing ID is an error.
func (r *redisRepository) GetTagsByIDs(ctx context.Context, input *GetTagsByIDsInput) (*GetTagsByIDsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if len(input.TagIDs) == 0 {
		return &GetTagsByIDsOutput{Tags: []models.Tag{}}, nil
	}

	keys := make([]string, 0, len(input.TagIDs))
	for _, id := range input.TagIDs {
		keys = append(keys, tagKeyPrefix+id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	tags := make([]models.Tag, 0, len(values))
	for i, value := range values {
		raw, ok := value.(string)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrTagNotFound, input.TagIDs[i])
		}

		var tag models.Tag
		if err := json.Unmarshal([]byte(raw), &tag); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tag %s: %w", input.TagIDs[i], err)
		}
		tags = append(tags, tag)
	}

	return &GetTagsByIDsOutput{Tags: tags}, nil
}

// DeleteTag removes a tag from Redis
func (r *redisRepository) DeleteTag(ctx context.Context, input *DeleteTagInput) error {
	if input == nil || input.TagID == "" {
		return errors.New("input and tag ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, tagKeyPrefix+input.TagID)
	pipe.SRem(ctx, allTagsKey, input.TagID)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete tag: %w", err)
	}

	return nil
}

// ListTags retrieves all tag definitions
func (r *redisRepository) ListTags(ctx context.Context, input *ListTagsInput) (*ListTagsOutput, error) {
	ids, err := r.client.SMembers(ctx, allTagsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	if len(ids) == 0 {
		return &ListTagsOutput{Tags: []models.Tag{}}, nil
	}

	out, err := r.GetTagsByIDs(ctx, &GetTagsByIDsInput{TagIDs: ids})
	if err != nil {
		return nil, err
	}

	return &ListTagsOutput{Tags: out.Tags}, nil
}
