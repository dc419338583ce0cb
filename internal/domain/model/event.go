package model

import "time"

// EventType names an order lifecycle notification.
type EventType string

const (
	EventOrderPlaced      EventType = "order.placed"
	EventOrderClaimed     EventType = "order.claimed"
	EventOrderDeclined    EventType = "order.declined"
	EventOrderCancelled   EventType = "order.cancelled"
	EventOrderStepUpdated EventType = "order.step_updated"
	EventOrderRated       EventType = "order.rated"
	EventOrderFulfilled   EventType = "order.fulfilled"
	EventOrdersReset      EventType = "orders.reset"
)

// OrderEvent is published after a lifecycle change has been persisted.
type OrderEvent struct {
	ID         string            `json:"id"`
	Type       EventType         `json:"type"`
	OrderID    int64             `json:"order_id"`
	UserID     string            `json:"user_id,omitempty"`
	ActorID    string            `json:"actor_id,omitempty"`
	Status     OrderStatus       `json:"status,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
