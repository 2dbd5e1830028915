package event

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
	eventKeyPrefix       = "event:"
	allEventsKey         = "events"
	eventStatusKeyPrefix = "events:status:" // Index of event IDs per status
)

// ErrEventNotFound is returned when an event is not found
var ErrEventNotFound = errors.New("event not found")

// Config holds configuration for the Redis event repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed event repository
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

// SaveEvent persists an event to Redis and maintains the status index
func (r *redisRepository) SaveEvent(ctx context.Context, input *SaveEventInput) error {
	if input == nil || input.Event == nil {
		return errors.New("input and event cannot be nil")
	}

	eventJSON, err := json.Marshal(input.Event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, eventKeyPrefix+input.Event.ID, eventJSON, 0)
	pipe.SAdd(ctx, allEventsKey, input.Event.ID)

	// Move the event to its current status set
	for _, status := range []models.EventStatus{
		models.EventStatusUpcoming,
		models.EventStatusActive,
		models.EventStatusHistoric,
	} {
		if status == input.Event.Status {
			pipe.SAdd(ctx, eventStatusKeyPrefix+string(status), input.Event.ID)
		} else {
			pipe.SRem(ctx, eventStatusKeyPrefix+string(status), input.Event.ID)
		}
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save event: %w", err)
	}

	return nil
}

// GetEvent retrieves an event from Redis by ID
func (r *redisRepository) GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	eventJSON, err := r.client.Get(ctx, eventKeyPrefix+input.EventID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	var event models.Event
	if err := json.Unmarshal([]byte(eventJSON), &event); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return &event, nil
}

// DeleteEvent removes an event from Redis
func (r *redisRepository) DeleteEvent(ctx context.Context, input *DeleteEventInput) error {
	if input == nil || input.EventID == "" {
		return errors.New("input and event ID cannot be empty")
	}

	pipe := r.client.Pipeline()
	pipe.Del(ctx, eventKeyPrefix+input.EventID)
	pipe.SRem(ctx, allEventsKey, input.EventID)
	for _, status := range []models.EventStatus{
		models.EventStatusUpcoming,
		models.EventStatusActive,
		models.EventStatusHistoric,
	} {
		pipe.SRem(ctx, eventStatusKeyPrefix+string(status), input.EventID)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	return nil
}

// ListEvents retrieves all events
func (r *redisRepository) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	ids, err := r.client.SMembers(ctx, allEventsKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	events, err := r.getEventsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: events}, nil
}

// ListEventsByStatus retrieves all events in a given status
func (r *redisRepository) ListEventsByStatus(ctx context.Context, input *ListEventsByStatusInput) (*ListEventsByStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	ids, err := r.client.SMembers(ctx, eventStatusKeyPrefix+string(input.Status)).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list events by status: %w", err)
	}

	events, err := r.getEventsByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	return &ListEventsByStatusOutput{Events: events}, nil
}

func (r *redisRepository) getEventsByIDs(ctx context.Context, ids []string) ([]*models.Event, error) {
	events := make([]*models.Event, 0, len(ids))
	for _, id := range ids {
		event, err := r.GetEvent(ctx, &GetEventInput{EventID: id})
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, nil
}
