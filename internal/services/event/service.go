package event

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/larpwright/larpwright/internal/common/clock"
	"github.com/larpwright/larpwright/internal/common/uuid"
	"github.com/larpwright/larpwright/internal/identity"
	"github.com/larpwright/larpwright/internal/models"
	eventRepo "github.com/larpwright/larpwright/internal/repositories/event"
	scenarioRepo "github.com/larpwright/larpwright/internal/repositories/scenario"
	gameService "github.com/larpwright/larpwright/internal/services/game"
)

// service implements the Service interface
type service struct {
	eventRepo     eventRepo.Repository
	scenarioRepo  scenarioRepo.Repository
	gameService   gameService.Service
	identity      identity.Resolver
	clock         clock.Clock
	uuidGenerator uuid.UUID
}

// New creates a new event service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}
	if cfg.ScenarioRepo == nil {
		return nil, ErrNilScenarioRepo
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.Identity == nil {
		return nil, ErrNilResolver
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	return &service{
		eventRepo:     cfg.EventRepo,
		scenarioRepo:  cfg.ScenarioRepo,
		gameService:   cfg.GameService,
		identity:      cfg.Identity,
		clock:         cfg.Clock,
		uuidGenerator: cfg.UUIDGenerator,
	}, nil
}

// CreateEvent creates a new upcoming event for a scenario
func (s *service) CreateEvent(ctx context.Context, input *CreateEventInput) (*CreateEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if err := checkForDuplicateEmails(input.AssignedRoles); err != nil {
		return nil, err
	}

	_, err := s.scenarioRepo.GetScenario(ctx, &scenarioRepo.GetScenarioInput{
		ScenarioID: input.ScenarioID,
	})
	if err != nil {
		if errors.Is(err, scenarioRepo.ErrScenarioNotFound) {
			return nil, ErrScenarioNotFound
		}
		return nil, err
	}

	now := s.clock.Now()

	event := &models.Event{
		ID:          s.uuidGenerator.NewUUID(),
		Name:        input.Name,
		Description: input.Description,
		Date:        input.Date,
		Status:      models.EventStatusUpcoming,
		ScenarioID:  input.ScenarioID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for _, assignedRole := range input.AssignedRoles {
		event.AssignedRoles = append(event.AssignedRoles, models.AssignedRole{
			ID:             s.uuidGenerator.NewUUID(),
			ScenarioRoleID: assignedRole.ScenarioRoleID,
			AssignedEmail:  assignedRole.AssignedEmail,
		})
	}

	err = s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	return &CreateEventOutput{Event: event}, nil
}

// GetEvent retrieves an event by ID
func (s *service) GetEvent(ctx context.Context, input *GetEventInput) (*GetEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	return &GetEventOutput{Event: event}, nil
}

// ListEvents retrieves all events, optionally filtered by status
func (s *service) ListEvents(ctx context.Context, input *ListEventsInput) (*ListEventsOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	if input.Status != "" {
		out, err := s.eventRepo.ListEventsByStatus(ctx, &eventRepo.ListEventsByStatusInput{
			Status: input.Status,
		})
		if err != nil {
			return nil, err
		}
		return &ListEventsOutput{Events: out.Events}, nil
	}

	out, err := s.eventRepo.ListEvents(ctx, &eventRepo.ListEventsInput{})
	if err != nil {
		return nil, err
	}

	return &ListEventsOutput{Events: out.Events}, nil
}

// UpdateEvent edits an upcoming event's details and role assignments.
// Assignments present in the request update or extend the current set;
// assignments missing from the request are dropped.
func (s *service) UpdateEvent(ctx context.Context, input *UpdateEventInput) (*UpdateEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if event.Status != models.EventStatusUpcoming {
		return nil, fmt.Errorf("%w: status is %s", ErrEventNotEditable, event.Status)
	}

	if err := checkForDuplicateEmails(input.AssignedRoles); err != nil {
		return nil, err
	}

	event.Name = input.Name
	event.Description = input.Description
	event.Date = input.Date
	event.UpdatedAt = s.clock.Now()

	current := make(map[string]*models.AssignedRole, len(event.AssignedRoles))
	for i := range event.AssignedRoles {
		current[event.AssignedRoles[i].ID] = &event.AssignedRoles[i]
	}

	updated := make([]models.AssignedRole, 0, len(input.AssignedRoles))
	for _, requested := range input.AssignedRoles {
		if existing, ok := current[requested.ID]; ok {
			existing.AssignedEmail = requested.AssignedEmail
			updated = append(updated, *existing)
			continue
		}

		updated = append(updated, models.AssignedRole{
			ID:             s.uuidGenerator.NewUUID(),
			ScenarioRoleID: requested.ScenarioRoleID,
			AssignedEmail:  requested.AssignedEmail,
		})
	}
	event.AssignedRoles = updated

	err = s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateEventOutput{Event: event}, nil
}

// DeleteEvent removes an event that never went live
func (s *service) DeleteEvent(ctx context.Context, input *DeleteEventInput) (*DeleteEventOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if event.GameSessionID != "" {
		return nil, fmt.Errorf("%w: session %s", ErrEventHasSession, event.GameSessionID)
	}

	err = s.eventRepo.DeleteEvent(ctx, &eventRepo.DeleteEventInput{
		EventID: event.ID,
	})
	if err != nil {
		return nil, err
	}

	return &DeleteEventOutput{Success: true}, nil
}

// UpdateEventStatus transitions an event between lifecycle states per the
// transition table: Upcoming -> Active (creates the game session) and
// Active -> Historic (archives it). Everything else, including
// self-transitions, is rejected with no side effects.
func (s *service) UpdateEventStatus(ctx context.Context, input *UpdateEventStatusInput) (*UpdateEventStatusOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	event, err := s.getEvent(ctx, input.EventID)
	if err != nil {
		return nil, err
	}

	if event.Status == input.Status {
		return nil, fmt.Errorf("%w: event status is already %s", ErrIllegalTransition, event.Status)
	}

	switch event.Status {
	case models.EventStatusUpcoming:
		if input.Status != models.EventStatusActive {
			return nil, transitionError(event.Status, input.Status)
		}
		return s.activateEvent(ctx, event)
	case models.EventStatusActive:
		if input.Status != models.EventStatusHistoric {
			return nil, transitionError(event.Status, input.Status)
		}
		return s.closeEvent(ctx, event)
	default:
		return nil, transitionError(event.Status, input.Status)
	}
}

// activateEvent takes an upcoming event live: every assigned role must carry
// an email that resolves to an account, then the session snapshot is created.
func (s *service) activateEvent(ctx context.Context, event *models.Event) (*UpdateEventStatusOutput, error) {
	for _, assignedRole := range event.AssignedRoles {
		if assignedRole.AssignedEmail == "" {
			return nil, fmt.Errorf("%w: every role needs an assigned email before activation", ErrIdentityUnresolved)
		}
	}

	resolved, err := s.identity.ResolveUserIDs(ctx, &identity.ResolveUserIDsInput{
		Emails: event.AssignedEmails(),
	})
	if err != nil {
		return nil, err
	}

	for email, userID := range resolved.UserIDs {
		if userID == "" {
			return nil, fmt.Errorf("%w: %s", ErrIdentityUnresolved, email)
		}
	}

	sessionOut, err := s.gameService.CreateSession(ctx, &gameService.CreateSessionInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	event.Status = models.EventStatusActive
	event.GameSessionID = sessionOut.Session.ID
	event.UpdatedAt = s.clock.Now()

	err = s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateEventStatusOutput{Event: event}, nil
}

// closeEvent archives the live session and marks the event historic
func (s *service) closeEvent(ctx context.Context, event *models.Event) (*UpdateEventStatusOutput, error) {
	_, err := s.gameService.ArchiveSession(ctx, &gameService.ArchiveSessionInput{
		SessionID: event.GameSessionID,
	})
	if err != nil {
		return nil, err
	}

	event.Status = models.EventStatusHistoric
	event.UpdatedAt = s.clock.Now()

	err = s.eventRepo.SaveEvent(ctx, &eventRepo.SaveEventInput{
		Event: event,
	})
	if err != nil {
		return nil, err
	}

	return &UpdateEventStatusOutput{Event: event}, nil
}

func (s *service) getEvent(ctx context.Context, eventID string) (*models.Event, error) {
	event, err := s.eventRepo.GetEvent(ctx, &eventRepo.GetEventInput{
		EventID: eventID,
	})
	if err != nil {
		if errors.Is(err, eventRepo.ErrEventNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

func transitionError(current, requested models.EventStatus) error {
	return fmt.Errorf("%w: cannot change event status from %s to %s", ErrIllegalTransition, current, requested)
}

// checkForDuplicateEmails rejects a request assigning one email to several
// roles. Multiple empty emails are fine; the same email on different events
// is fine too.
func checkForDuplicateEmails(assignedRoles []AssignedRoleInput) error {
	counts := make(map[string]int)
	for _, assignedRole := range assignedRoles {
		if assignedRole.AssignedEmail == "" {
			continue
		}
		counts[assignedRole.AssignedEmail]++
	}

	var duplicates []string
	for email, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, email)
		}
	}

	if len(duplicates) > 0 {
		return fmt.Errorf("%w: %s", ErrDuplicateAssignment, strings.Join(duplicates, ", "))
	}

	return nil
}
