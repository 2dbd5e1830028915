package identity

//go:generate mockgen -package=mocks -destination=mocks/mock_resolver.go github.com/larpwright/larpwright/internal/identity Resolver

import "context"

// Resolver resolves player emails to account user IDs. An email with no
// matching account resolves to the empty string rather than an error; callers
// decide whether an unresolved email is fatal.
type Resolver interface {
	// ResolveUserIDs resolves a batch of emails to user IDs
	ResolveUserIDs(ctx context.Context, input *ResolveUserIDsInput) (*ResolveUserIDsOutput, error)
}

type ResolveUserIDsInput struct {
	Emails []string
}

type ResolveUserIDsOutput struct {
	// UserIDs maps each requested email to its user ID, or "" if unresolved
	UserIDs map[string]string
}
