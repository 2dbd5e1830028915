package event

import "github.com/larpwright/larpwright/internal/models"

type SaveEventInput struct {
	Event *models.Event
}

type GetEventInput struct {
	EventID string
}

type DeleteEventInput struct {
	EventID string
}

type ListEventsInput struct {
}

type ListEventsOutput struct {
	Events []*models.Event
}

type ListEventsByStatusInput struct {
	Status models.EventStatus
}

type ListEventsByStatusOutput struct {
	Events []*models.Event
}
