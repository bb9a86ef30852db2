// Package pubsub provides a generic publish/subscribe event system used to
// fan log entries, theme changes and export results out to the UI.
package pubsub

import (
	"context"
	"time"
)

// EventType represents the type of event being published.
type EventType string

const (
	// LoggedEvent carries a formatted log entry.
	LoggedEvent EventType = "logged"
	// ChangedEvent signals that a watched value changed, locally or in
	// another process.
	ChangedEvent EventType = "changed"
	// ExportedEvent carries the path of a freshly written PNG.
	ExportedEvent EventType = "exported"
	// FailedEvent carries an error description.
	FailedEvent EventType = "failed"
)

// Event represents a published event with a typed payload.
type Event[T any] struct {
	Type      EventType
	Payload   T
	Timestamp time.Time
}

// Subscriber provides a subscription channel for events.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher allows publishing events with a typed payload.
type Publisher[T any] interface {
	Publish(eventType EventType, payload T)
}
