package usecase

import (
	"context"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

// CatalogProvider returns the live item catalog.
type CatalogProvider interface {
	Items(ctx context.Context) (model.Catalog, error)
}

// TicketValidator exchanges CAS service tickets for usernames.
type TicketValidator interface {
	LoginURL(service string) string
	Validate(ctx context.Context, service, ticket string) (string, error)
}

// EventSink accepts order events for asynchronous delivery.
type EventSink interface {
	Enqueue(event model.OrderEvent) bool
}
