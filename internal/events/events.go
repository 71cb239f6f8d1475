package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Skotchmaster/qa_api/internal/logging"
)

const publishTimeout = 5 * time.Second

type Event struct {
	ID       string    `json:"event_id"`
	Type     string    `json:"type"`
	Entity   string    `json:"entity"`
	EntityID uint      `json:"id"`
	At       time.Time `json:"at"`
	Data     any       `json:"data,omitempty"`
}

func New(typ, entity string, id uint, data any) Event {
	return Event{
		ID:       uuid.NewString(),
		Type:     typ,
		Entity:   entity,
		EntityID: id,
		At:       time.Now().UTC(),
		Data:     data,
	}
}

type Publisher interface {
	Publish(ctx context.Context, ev Event) error
	Close() error
}

// Notify publishes ev and only logs a failure; events never fail a request.
func Notify(ctx context.Context, p Publisher, ev Event) {
	if p == nil {
		return
	}
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := p.Publish(ctx, ev); err != nil {
		logging.FromContext(ctx).Error("event_publish_failed", "type", ev.Type, "id", ev.EntityID, "error", err)
	}
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
func (NopPublisher) Close() error                         { return nil }

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
	Err    error
}

func (r *Recorder) Publish(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.events = append(r.events, ev)
	return nil
}

func (r *Recorder) Close() error { return nil }

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func (r *Recorder) Types() []string {
	evs := r.Events()
	out := make([]string, len(evs))
	for i, ev := range evs {
		out[i] = ev.Type
	}
	return out
}
