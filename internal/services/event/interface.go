package event

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/larpwright/larpwright/internal/services/event Service

import "context"

// Service defines the interface for event operations
type Service interface {
	// CreateEvent creates a new upcoming event for a scenario
	CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error)

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error)

	// ListEvents retrieves all events, optionally filtered by status
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// UpdateEvent edits an upcoming event's details and role assignments
	UpdateEvent(ctx context.Context, input *UpdateEventInput) (*UpdateEventOutput, error)

	// DeleteEvent removes an event that never went live
	DeleteEvent(ctx context.Context, input *DeleteEventInput) (*DeleteEventOutput, error)

	// UpdateEventStatus transitions an event between lifecycle states
	UpdateEventStatus(ctx context.Context, input *UpdateEventStatusInput) (*UpdateEventStatusOutput, error)
}
