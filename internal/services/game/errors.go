package game

// GameError is a custom error type for game-related errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrSessionNotFound      GameError = "game session not found"
	ErrSessionExists        GameError = "event already has a game session"
	ErrSessionArchived      GameError = "game session is already archived"
	ErrScenarioNotFound     GameError = "scenario not found"
	ErrScenarioRoleNotFound GameError = "scenario role not found"
	ErrRoleStateNotFound    GameError = "game role state not found"
	ErrItemNotFound         GameError = "scenario item not found"
	ErrActionNotFound       GameError = "action not found"
	ErrNilConfig            GameError = "config cannot be nil"
	ErrNilSessionRepo       GameError = "session repository cannot be nil"
	ErrNilScenarioRepo      GameError = "scenario repository cannot be nil"
	ErrNilTagRepo           GameError = "tag repository cannot be nil"
	ErrNilResolver          GameError = "identity resolver cannot be nil"
	ErrNilNotifier          GameError = "notifier cannot be nil"
	ErrNilClock             GameError = "clock cannot be nil"
	ErrNilUUIDGenerator     GameError = "UUID generator cannot be nil"
)
