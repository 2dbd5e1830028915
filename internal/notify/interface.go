package notify

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/larpwright/larpwright/internal/notify Notifier

// Notifier emits real-time game events. Emission is fire-and-forget: calls
// never block on delivery and delivery is not retried.
type Notifier interface {
	// SessionUpdated announces to everyone watching a session that an action
	// occurred in it
	SessionUpdated(sessionID string)

	// RoleStateChanged tells one user that their role's applied-tag set changed
	RoleStateChanged(sessionID, userID string)
}
