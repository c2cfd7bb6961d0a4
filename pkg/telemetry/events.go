package telemetry

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Event represents a solver lifecycle event.
type Event struct {
	// ID is the unique identifier for this event.
	ID string `json:"id"`

	// Timestamp is when the event occurred.
	Timestamp time.Time `json:"timestamp"`

	// Type is the event type.
	Type string `json:"type"`

	// Source identifies where the event originated.
	Source string `json:"source"`

	// Message is a human-readable event message.
	Message string `json:"message"`

	// Data contains additional event-specific data.
	Data map[string]interface{} `json:"data,omitempty"`
}

// Event type constants.
const (
	EventTypeSearchStarted    = "search.started"
	EventTypeSearchCompleted  = "search.completed"
	EventTypeSearchUnsolvable = "search.unsolvable"
	EventTypePuzzleRejected   = "puzzle.rejected"
)

// NewEvent builds an event with a fresh id and timestamp.
func NewEvent(eventType, source, message string, data map[string]interface{}) Event {
	return Event{
		ID:        uuid.New().String(),
		Timestamp: time.Now(),
		Type:      eventType,
		Source:    source,
		Message:   message,
		Data:      data,
	}
}

// EventSubscriber is a function that handles events.
type EventSubscriber func(event Event)

// EventPublisher fans solver events out to subscribers through a
// buffered channel drained by a single background goroutine.
type EventPublisher struct {
	config      EventsConfig
	buffer      chan Event
	subscribers []EventSubscriber
	mu          sync.RWMutex
	done        chan struct{}
	closed      bool
	closeOnce   sync.Once
}

// NewEventPublisher creates an event publisher. A disabled configuration
// yields a no-op publisher.
func NewEventPublisher(cfg EventsConfig) (*EventPublisher, error) {
	p := &EventPublisher{config: cfg}
	if !cfg.Enabled {
		return p, nil
	}

	size := cfg.BufferSize
	if size <= 0 {
		size = 256
	}
	p.buffer = make(chan Event, size)
	p.done = make(chan struct{})
	go p.drain()
	return p, nil
}

// Subscribe registers a subscriber for all events.
func (p *EventPublisher) Subscribe(sub EventSubscriber) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subscribers = append(p.subscribers, sub)
}

// Publish enqueues an event. Events are dropped when the publisher is
// disabled, closed, or the buffer is full; publishing never blocks a
// search.
func (p *EventPublisher) Publish(event Event) {
	if p.buffer == nil {
		return
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return
	}
	select {
	case p.buffer <- event:
	default:
	}
}

func (p *EventPublisher) drain() {
	defer close(p.done)
	for event := range p.buffer {
		p.mu.RLock()
		subs := make([]EventSubscriber, len(p.subscribers))
		copy(subs, p.subscribers)
		p.mu.RUnlock()
		for _, sub := range subs {
			sub(event)
		}
	}
}

// Close stops the publisher after flushing buffered events.
func (p *EventPublisher) Close() error {
	if p.buffer == nil {
		return nil
	}
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()
		close(p.buffer)
		<-p.done
	})
	return nil
}
