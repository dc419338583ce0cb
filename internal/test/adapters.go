package test

import (
	"context"
	"sync"

	domainErrors "github.com/polkiloo/tigercart/internal/domain/errors"
	"github.com/polkiloo/tigercart/internal/domain/model"
)

// SampleCatalog returns a small catalog covering two categories.
func SampleCatalog() model.Catalog {
	return model.Catalog{
		"1": {ID: "1", Name: "Chips", Price: 2.50, Category: "SNACKS"},
		"2": {ID: "2", Name: "Soda", Price: 1.25, Category: "COLD_DRINKS"},
		"3": {ID: "3", Name: "Cookies", Price: 3.00, Category: "SNACKS"},
	}
}

// CatalogStub serves a fixed catalog.
type CatalogStub struct {
	Catalog model.Catalog
	Err     error
}

// Items returns the configured catalog or error.
func (s CatalogStub) Items(ctx context.Context) (model.Catalog, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Catalog, nil
}

// CASStub simulates ticket validation.
type CASStub struct {
	LoginURLFn func(string) string
	ValidateFn func(context.Context, string, string) (string, error)
}

// LoginURL returns a predictable login URL.
func (s CASStub) LoginURL(service string) string {
	if s.LoginURLFn != nil {
		return s.LoginURLFn(service)
	}
	return "https://cas.example/login?service=" + service
}

// Validate accepts tickets of the form "ST-<netid>".
func (s CASStub) Validate(ctx context.Context, service, ticket string) (string, error) {
	if s.ValidateFn != nil {
		return s.ValidateFn(ctx, service, ticket)
	}
	const prefix = "ST-"
	if len(ticket) <= len(prefix) || ticket[:len(prefix)] != prefix {
		return "", domainErrors.ErrInvalidTicket
	}
	return ticket[len(prefix):], nil
}

// EventSinkStub collects enqueued events.
type EventSinkStub struct {
	Reject bool

	mu     sync.Mutex
	events []model.OrderEvent
}

// Enqueue records the event unless rejection is configured.
func (s *EventSinkStub) Enqueue(event model.OrderEvent) bool {
	if s.Reject {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return true
}

// Events returns a copy of recorded events.
func (s *EventSinkStub) Events() []model.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderEvent(nil), s.events...)
}

// Types returns recorded event types in order.
func (s *EventSinkStub) Types() []model.EventType {
	events := s.Events()
	types := make([]model.EventType, len(events))
	for i, e := range events {
		types[i] = e.Type
	}
	return types
}

// PublisherStub records published events.
type PublisherStub struct {
	PublishFn func(context.Context, model.OrderEvent) error

	mu        sync.Mutex
	published []model.OrderEvent
}

// Publish stores the event or delegates to the override.
func (s *PublisherStub) Publish(ctx context.Context, event model.OrderEvent) error {
	if s.PublishFn != nil {
		if err := s.PublishFn(ctx, event); err != nil {
			return err
		}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.published = append(s.published, event)
	return nil
}

// Published returns a copy of delivered events.
func (s *PublisherStub) Published() []model.OrderEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.OrderEvent(nil), s.published...)
}

// RecorderStub counts dispatcher outcomes.
type RecorderStub struct {
	mu       sync.Mutex
	Queued   map[model.EventType]int
	Failures int
	Dropped  int
}

// OrderEvent counts an accepted event.
func (s *RecorderStub) OrderEvent(eventType model.EventType) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Queued == nil {
		s.Queued = make(map[model.EventType]int)
	}
	s.Queued[eventType]++
}

// PublishFailed counts a failed publish.
func (s *RecorderStub) PublishFailed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Failures++
}

// EventDropped counts a dropped event.
func (s *RecorderStub) EventDropped() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Dropped++
}

// Snapshot returns the counters under lock.
func (s *RecorderStub) Snapshot() (queued, failures, dropped int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.Queued {
		queued += n
	}
	return queued, s.Failures, s.Dropped
}
