package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

// Subjects published by the service.
const (
	SubjectContentCreated = "brainvault.content.created"
	SubjectContentDeleted = "brainvault.content.deleted"
	SubjectBrainShared    = "brainvault.brain.shared"
	SubjectBrainUnshared  = "brainvault.brain.unshared"
)

// Event is the JSON payload of every published message.
type Event struct {
	UserID    string    `json:"user_id"`
	ContentID string    `json:"content_id,omitempty"`
	Type      string    `json:"type,omitempty"`
	Hash      string    `json:"hash,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher delivers domain events.
type Publisher interface {
	Publish(ctx context.Context, subject string, event Event) error
	Close()
}

// NATSPublisher publishes events on a NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

// NewNATSPublisher connects to the NATS server at url.
func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("brainvault"),
		nats.MaxReconnects(-1),
		nats.Timeout(2*time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("connect nats: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

// Publish sends event on subject.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := p.conn.Publish(subject, payload); err != nil {
		return fmt.Errorf("publish %s: %w", subject, err)
	}
	return nil
}

// Close flushes pending messages and closes the connection.
func (p *NATSPublisher) Close() {
	if p.conn != nil && !p.conn.IsClosed() {
		_ = p.conn.Drain()
	}
}

// NopPublisher drops every event. Used when NATS is not configured.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, string, Event) error { return nil }

func (NopPublisher) Close() {}
