// Package eventbus delivers committed order events to in-process subscribers.
package eventbus

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
)

// Broker fans events out to subscriber channels. Publishing never blocks: a
// subscriber whose buffer is full misses the event and a warning is logged.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]chan order.Event
	nextID int
	buffer int
	logger *slog.Logger
}

func NewBroker(buffer int, logger *slog.Logger) *Broker {
	if buffer < 1 {
		buffer = 1
	}
	return &Broker{
		subs:   make(map[int]chan order.Event),
		buffer: buffer,
		logger: logger.With("component", "event_broker"),
	}
}

// Subscribe registers a new subscriber. The returned cancel function closes the
// channel and may be called more than once.
func (b *Broker) Subscribe() (<-chan order.Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan order.Event, b.buffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *Broker) Publish(ctx context.Context, events []order.Event) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for _, e := range events {
		for id, ch := range b.subs {
			select {
			case ch <- e:
			default:
				b.logger.WarnContext(ctx, "subscriber is lagging, event dropped",
					"subscriber", id,
					"kind", e.Kind,
					"order_id", e.OrderID.String(),
				)
			}
		}
	}
	return nil
}

// Fanout publishes to every publisher in turn and joins their errors.
type Fanout struct {
	publishers []ports.EventPublisher
}

func NewFanout(publishers ...ports.EventPublisher) Fanout {
	return Fanout{publishers: publishers}
}

func (f Fanout) Publish(ctx context.Context, events []order.Event) error {
	var errs []error
	for _, p := range f.publishers {
		if err := p.Publish(ctx, events); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
