package service

import (
	"context"
	"time"
)

// PlantEventType names a change to a plant.
type PlantEventType string

const (
	PlantCreated PlantEventType = "plant.created"
	PlantUpdated PlantEventType = "plant.updated"
	PlantDeleted PlantEventType = "plant.deleted"
)

// PlantEvent is emitted after a plant write commits.
type PlantEvent struct {
	RequestID  string         `json:"request_id,omitempty"` // For distributed tracing
	EventID    string         `json:"event_id"`
	Type       PlantEventType `json:"type"`
	PlantID    string         `json:"plant_id"`
	OwnerID    string         `json:"owner_id"`
	OccurredAt time.Time      `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPlantEvent publishes a plant change event
	PublishPlantEvent(ctx context.Context, event *PlantEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
