package service

import (
	"context"
	"time"
)

// PartyRegisteredEvent is published after a party record has been stored.
type PartyRegisteredEvent struct {
	RequestID    string    `json:"request_id,omitempty"` // For distributed tracing
	EventID      string    `json:"event_id"`
	Kind         string    `json:"kind"`
	TaxID        string    `json:"tax_id"`
	DisplayName  string    `json:"display_name"`
	Email        string    `json:"email"`
	PostalCode   string    `json:"postal_code"`
	Latitude     *float64  `json:"latitude,omitempty"`
	Longitude    *float64  `json:"longitude,omitempty"`
	RegisteredAt time.Time `json:"registered_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishPartyRegistered publishes a registration event for downstream consumers
	PublishPartyRegistered(ctx context.Context, event *PartyRegisteredEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
