package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/tigercart/internal/domain/model"
)

const publishTimeout = 5 * time.Second

// Publisher is the sink events are handed to.
type Publisher interface {
	Publish(ctx context.Context, event model.OrderEvent) error
}

// Recorder counts dispatcher outcomes.
type Recorder interface {
	OrderEvent(eventType model.EventType)
	PublishFailed()
	EventDropped()
}

// EventDispatcher publishes order events in the background so request
// handling never waits on the broker.
type EventDispatcher struct {
	publisher Publisher
	recorder  Recorder
	workers   int
	logger    *slog.Logger

	jobs   chan model.OrderEvent
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewEventDispatcher constructs the dispatcher worker pool.
func NewEventDispatcher(publisher Publisher, recorder Recorder, workers, buffer int, logger *slog.Logger) *EventDispatcher {
	if workers <= 0 {
		workers = 1
	}
	if buffer <= 0 {
		buffer = 1
	}
	return &EventDispatcher{
		publisher: publisher,
		recorder:  recorder,
		workers:   workers,
		logger:    logger,
		jobs:      make(chan model.OrderEvent, buffer),
	}
}

// Enqueue queues the event without blocking. It reports false when the
// queue is full and the event was dropped.
func (d *EventDispatcher) Enqueue(event model.OrderEvent) bool {
	select {
	case d.jobs <- event:
		d.recorder.OrderEvent(event.Type)
		return true
	default:
		d.recorder.EventDropped()
		d.logger.Warn("event queue full, dropping event",
			slog.String("event_type", string(event.Type)),
			slog.Int64("order_id", event.OrderID),
		)
		return false
	}
}

// Start launches background publishing.
func (d *EventDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.cancel != nil {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}
}

// Stop halts the workers and flushes whatever is still queued. A publish that
// is already running when Stop is called completes under its own deadline.
func (d *EventDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
	d.flush()
}

func (d *EventDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-d.jobs:
			d.publish(context.WithoutCancel(ctx), event)
		}
	}
}

func (d *EventDispatcher) flush() {
	for {
		select {
		case event := <-d.jobs:
			d.publish(context.Background(), event)
		default:
			return
		}
	}
}

func (d *EventDispatcher) publish(ctx context.Context, event model.OrderEvent) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := d.publisher.Publish(ctx, event); err != nil {
		d.recorder.PublishFailed()
		d.logger.Error("event publish failed",
			slog.String("event_type", string(event.Type)),
			slog.Int64("order_id", event.OrderID),
			slog.String("error", err.Error()),
		)
	}
}
