package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/larpwright/larpwright/internal/models"
	"github.com/redis/go-redis/v9"
)

// Key prefixes for Redis. The lookup keys map event_session: eventID to a
// session ID, session_user_role: sessionID:userID to a role state ID, and
// session_item: sessionID:scenarioItemID to an item state ID. The log
// indexes are sorted sets of log IDs scored by timestamp.
const (
	sessionKeyPrefix      = "game_session:"
	eventSessionKeyPrefix = "event_session:"
	roleStateKeyPrefix    = "role_state:"
	userRoleKeyPrefix     = "session_user_role:"
	itemStateKeyPrefix    = "item_state:"
	sessionItemKeyPrefix  = "session_item:"
	actionLogKeyPrefix    = "action_log:"
	sessionLogsKeyPrefix  = "session_logs:"
	roleLogsKeyPrefix     = "session_role_logs:"
)

// Errors returned by the session repository
var (
	ErrSessionNotFound   = errors.New("game session not found")
	ErrRoleStateNotFound = errors.New("game role state not found")
	ErrItemStateNotFound = errors.New("game item state not found")
)

// Config holds configuration for the Redis session repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed session repository
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

// CreateSession persists a whole session snapshot in one pipeline so a
// partially written session is never observable.
func (r *redisRepository) CreateSession(ctx context.Context, input *CreateSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+input.Session.ID, sessionJSON, 0)
	pipe.Set(ctx, eventSessionKeyPrefix+input.Session.EventID, input.Session.ID, 0)

	for _, roleState := range input.RoleStates {
		roleJSON, err := json.Marshal(roleState)
		if err != nil {
			return fmt.Errorf("failed to marshal role state: %w", err)
		}
		pipe.Set(ctx, roleStateKeyPrefix+roleState.ID, roleJSON, 0)

		// Secondary lookup for resolved users only
		if roleState.AssignedUserID != "" {
			userRoleKey := fmt.Sprintf("%s%s:%s", userRoleKeyPrefix, input.Session.ID, roleState.AssignedUserID)
			pipe.Set(ctx, userRoleKey, roleState.ID, 0)
		}
	}

	for _, itemState := range input.ItemStates {
		itemJSON, err := json.Marshal(itemState)
		if err != nil {
			return fmt.Errorf("failed to marshal item state: %w", err)
		}
		pipe.Set(ctx, itemStateKeyPrefix+itemState.ID, itemJSON, 0)

		sessionItemKey := fmt.Sprintf("%s%s:%s", sessionItemKeyPrefix, input.Session.ID, itemState.ScenarioItemID)
		pipe.Set(ctx, sessionItemKey, itemState.ID, 0)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}

	return nil
}

// GetSession retrieves a session from Redis by ID
func (r *redisRepository) GetSession(ctx context.Context, input *GetSessionInput) (*models.GameSession, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	sessionJSON, err := r.client.Get(ctx, sessionKeyPrefix+input.SessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	var session models.GameSession
	if err := json.Unmarshal([]byte(sessionJSON), &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	return &session, nil
}

// GetSessionByEvent retrieves the session created for an event
func (r *redisRepository) GetSessionByEvent(ctx context.Context, input *GetSessionByEventInput) (*models.GameSession, error) {
	if input == nil || input.EventID == "" {
		return nil, errors.New("input and event ID cannot be empty")
	}

	sessionID, err := r.client.Get(ctx, eventSessionKeyPrefix+input.EventID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session for event: %w", err)
	}

	return r.GetSession(ctx, &GetSessionInput{SessionID: sessionID})
}

// SaveSession persists an updated session record
func (r *redisRepository) SaveSession(ctx context.Context, input *SaveSessionInput) error {
	if input == nil || input.Session == nil {
		return errors.New("input and session cannot be nil")
	}

	sessionJSON, err := json.Marshal(input.Session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	if err := r.client.Set(ctx, sessionKeyPrefix+input.Session.ID, sessionJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// GetRoleState retrieves a role state from Redis by ID
func (r *redisRepository) GetRoleState(ctx context.Context, input *GetRoleStateInput) (*models.GameRoleState, error) {
	if input == nil || input.RoleStateID == "" {
		return nil, errors.New("input and role state ID cannot be empty")
	}

	roleJSON, err := r.client.Get(ctx, roleStateKeyPrefix+input.RoleStateID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoleStateNotFound
		}
		return nil, fmt.Errorf("failed to get role state: %w", err)
	}

	var roleState models.GameRoleState
	if err := json.Unmarshal([]byte(roleJSON), &roleState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal role state: %w", err)
	}

	return &roleState, nil
}

// GetRoleStateByUser retrieves the role state assigned to a user within a session
func (r *redisRepository) GetRoleStateByUser(ctx context.Context, input *GetRoleStateByUserInput) (*models.GameRoleState, error) {
	if input == nil || input.SessionID == "" || input.UserID == "" {
		return nil, errors.New("input, session ID and user ID cannot be empty")
	}

	userRoleKey := fmt.Sprintf("%s%s:%s", userRoleKeyPrefix, input.SessionID, input.UserID)
	roleStateID, err := r.client.Get(ctx, userRoleKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrRoleStateNotFound
		}
		return nil, fmt.Errorf("failed to get role state for user: %w", err)
	}

	return r.GetRoleState(ctx, &GetRoleStateInput{RoleStateID: roleStateID})
}

// GetRoleStates retrieves all role states of a session
func (r *redisRepository) GetRoleStates(ctx context.Context, input *GetRoleStatesInput) (*GetRoleStatesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	roleStates := make([]*models.GameRoleState, 0, len(session.RoleStateIDs))
	for _, id := range session.RoleStateIDs {
		roleState, err := r.GetRoleState(ctx, &GetRoleStateInput{RoleStateID: id})
		if err != nil {
			return nil, err
		}
		roleStates = append(roleStates, roleState)
	}

	return &GetRoleStatesOutput{RoleStates: roleStates}, nil
}

// SaveRoleState persists an updated role state
func (r *redisRepository) SaveRoleState(ctx context.Context, input *SaveRoleStateInput) error {
	if input == nil || input.RoleState == nil {
		return errors.New("input and role state cannot be nil")
	}

	roleJSON, err := json.Marshal(input.RoleState)
	if err != nil {
		return fmt.Errorf("failed to marshal role state: %w", err)
	}

	if err := r.client.Set(ctx, roleStateKeyPrefix+input.RoleState.ID, roleJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save role state: %w", err)
	}

	return nil
}

// GetItemState retrieves an item state from Redis by ID
func (r *redisRepository) GetItemState(ctx context.Context, input *GetItemStateInput) (*models.GameItemState, error) {
	if input == nil || input.ItemStateID == "" {
		return nil, errors.New("input and item state ID cannot be empty")
	}

	itemJSON, err := r.client.Get(ctx, itemStateKeyPrefix+input.ItemStateID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrItemStateNotFound
		}
		return nil, fmt.Errorf("failed to get item state: %w", err)
	}

	var itemState models.GameItemState
	if err := json.Unmarshal([]byte(itemJSON), &itemState); err != nil {
		return nil, fmt.Errorf("failed to unmarshal item state: %w", err)
	}

	return &itemState, nil
}

// GetItemStateByScenarioItem retrieves the item state instantiating a scenario item
func (r *redisRepository) GetItemStateByScenarioItem(ctx context.Context, input *GetItemStateByScenarioItemInput) (*models.GameItemState, error) {
	if input == nil || input.SessionID == "" || input.ScenarioItemID == "" {
		return nil, errors.New("input, session ID and scenario item ID cannot be empty")
	}

	sessionItemKey := fmt.Sprintf("%s%s:%s", sessionItemKeyPrefix, input.SessionID, input.ScenarioItemID)
	itemStateID, err := r.client.Get(ctx, sessionItemKey).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrItemStateNotFound
		}
		return nil, fmt.Errorf("failed to get item state for scenario item: %w", err)
	}

	return r.GetItemState(ctx, &GetItemStateInput{ItemStateID: itemStateID})
}

// GetItemStates retrieves all item states of a session
func (r *redisRepository) GetItemStates(ctx context.Context, input *GetItemStatesInput) (*GetItemStatesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	session, err := r.GetSession(ctx, &GetSessionInput{SessionID: input.SessionID})
	if err != nil {
		return nil, err
	}

	itemStates := make([]*models.GameItemState, 0, len(session.ItemStateIDs))
	for _, id := range session.ItemStateIDs {
		itemState, err := r.GetItemState(ctx, &GetItemStateInput{ItemStateID: id})
		if err != nil {
			return nil, err
		}
		itemStates = append(itemStates, itemState)
	}

	return &GetItemStatesOutput{ItemStates: itemStates}, nil
}

// SaveItemState persists an updated item state
func (r *redisRepository) SaveItemState(ctx context.Context, input *SaveItemStateInput) error {
	if input == nil || input.ItemState == nil {
		return errors.New("input and item state cannot be nil")
	}

	itemJSON, err := json.Marshal(input.ItemState)
	if err != nil {
		return fmt.Errorf("failed to marshal item state: %w", err)
	}

	if err := r.client.Set(ctx, itemStateKeyPrefix+input.ItemState.ID, itemJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to save item state: %w", err)
	}

	return nil
}

// AppendActionLog appends an action log entry and indexes it by session and
// performer, scored by timestamp so reads come back in time order.
func (r *redisRepository) AppendActionLog(ctx context.Context, input *AppendActionLogInput) error {
	if input == nil || input.Log == nil {
		return errors.New("input and log cannot be nil")
	}

	logJSON, err := json.Marshal(input.Log)
	if err != nil {
		return fmt.Errorf("failed to marshal action log: %w", err)
	}

	score := float64(input.Log.Timestamp.UnixNano())

	pipe := r.client.Pipeline()
	pipe.Set(ctx, actionLogKeyPrefix+input.Log.ID, logJSON, 0)
	pipe.ZAdd(ctx, sessionLogsKeyPrefix+input.Log.GameSessionID, redis.Z{
		Score:  score,
		Member: input.Log.ID,
	})

	roleLogsKey := fmt.Sprintf("%s%s:%s", roleLogsKeyPrefix, input.Log.GameSessionID, input.Log.PerformerRoleStateID)
	pipe.ZAdd(ctx, roleLogsKey, redis.Z{
		Score:  score,
		Member: input.Log.ID,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append action log: %w", err)
	}

	return nil
}

// GetActionLogs retrieves a session's action log, newest first
func (r *redisRepository) GetActionLogs(ctx context.Context, input *GetActionLogsInput) (*GetActionLogsOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, errors.New("input and session ID cannot be empty")
	}

	return r.getLogsFromIndex(ctx, sessionLogsKeyPrefix+input.SessionID)
}

// GetActionLogsByPerformer retrieves one performer's slice of the action log, newest first
func (r *redisRepository) GetActionLogsByPerformer(ctx context.Context, input *GetActionLogsByPerformerInput) (*GetActionLogsOutput, error) {
	if input == nil || input.SessionID == "" || input.RoleStateID == "" {
		return nil, errors.New("input, session ID and role state ID cannot be empty")
	}

	roleLogsKey := fmt.Sprintf("%s%s:%s", roleLogsKeyPrefix, input.SessionID, input.RoleStateID)
	return r.getLogsFromIndex(ctx, roleLogsKey)
}

func (r *redisRepository) getLogsFromIndex(ctx context.Context, indexKey string) (*GetActionLogsOutput, error) {
	ids, err := r.client.ZRevRange(ctx, indexKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read action log index: %w", err)
	}

	logs := make([]*models.GameActionLog, 0, len(ids))
	for _, id := range ids {
		logJSON, err := r.client.Get(ctx, actionLogKeyPrefix+id).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to get action log %s: %w", id, err)
		}

		var logEntry models.GameActionLog
		if err := json.Unmarshal([]byte(logJSON), &logEntry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal action log %s: %w", id, err)
		}
		logs = append(logs, &logEntry)
	}

	return &GetActionLogsOutput{Logs: logs}, nil
}
