package event

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/larpwright/larpwright/internal/repositories/event Repository

import (
	"context"

	"github.com/larpwright/larpwright/internal/models"
)

// Repository defines the interface for event persistence
type Repository interface {
	// SaveEvent persists an event with its assigned roles
	SaveEvent(ctx context.Context, input *SaveEventInput) error

	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, input *GetEventInput) (*models.Event, error)

	// DeleteEvent removes an event
	DeleteEvent(ctx context.Context, input *DeleteEventInput) error

	// ListEvents retrieves all events
	ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error)

	// ListEventsByStatus retrieves all events in a given lifecycle status
	ListEventsByStatus(ctx context.Context, input *ListEventsByStatusInput) (*ListEventsByStatusOutput, error)
}
