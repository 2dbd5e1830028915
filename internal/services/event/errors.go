package event

// EventError is a custom error type for event-related errors
type EventError string

// Error implements the error interface
func (e EventError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrEventNotFound       EventError = "event not found"
	ErrScenarioNotFound    EventError = "scenario not found"
	ErrIllegalTransition   EventError = "event status could not be changed"
	ErrDuplicateAssignment EventError = "an email is assigned to more than one role"
	ErrIdentityUnresolved  EventError = "an assigned email has no matching account"
	ErrEventNotEditable    EventError = "event can only be edited while upcoming"
	ErrEventHasSession     EventError = "event cannot be deleted once a game session exists"
	ErrNilConfig           EventError = "config cannot be nil"
	ErrNilEventRepo        EventError = "event repository cannot be nil"
	ErrNilScenarioRepo     EventError = "scenario repository cannot be nil"
	ErrNilGameService      EventError = "game service cannot be nil"
	ErrNilResolver         EventError = "identity resolver cannot be nil"
	ErrNilClock            EventError = "clock cannot be nil"
	ErrNilUUIDGenerator    EventError = "UUID generator cannot be nil"
)
