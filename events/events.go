package events

import (
	"context"
	"sync"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/domain/entities"

	log "github.com/sirupsen/logrus"
)

// EventType represents different types of events in the system
type EventType string

const (
	EventTypeDrawImported  EventType = "draw_imported"
	EventTypeDataQuality   EventType = "data_quality"
	EventTypeTicketChecked EventType = "ticket_checked"
)

// Event is the base interface for all events
type Event interface {
	Type() EventType
}

// Publisher publishes domain events to whatever transport is configured.
// The NATS publisher, the in-process bus and the no-op publisher all
// satisfy this.
type Publisher interface {
	Publish(event Event) error
}

// DrawImportedEvent fires when ingestion persists a new official draw
type DrawImportedEvent struct {
	DrawID      int64
	GameType    entities.GameType
	DrawNumber  int64
	DrawDate    time.Time
	NumberCount int
	HasBonus    bool
}

func (e DrawImportedEvent) Type() EventType {
	return EventTypeDrawImported
}

// DataQualityEvent records a non-fatal data-quality finding (short winning
// set, missing division row, duplicate-date collision) for diagnostics
type DataQualityEvent struct {
	GameType   entities.GameType
	DrawNumber int64
	Finding    string
}

func (e DataQualityEvent) Type() EventType {
	return EventTypeDataQuality
}

// TicketCheckedEvent fires after a scanned ticket has been evaluated
type TicketCheckedEvent struct {
	ScanID     string
	GameType   entities.GameType
	Outcome    entities.PrizeOutcome
	Division   int
	MatchCount int
}

func (e TicketCheckedEvent) Type() EventType {
	return EventTypeTicketChecked
}

// Handler is a function that handles events
type Handler func(ctx context.Context, event Event)

// Bus manages in-process event subscriptions and dispatching
type Bus struct {
	mu       sync.RWMutex
	handlers map[EventType][]Handler
}

// NewBus creates a new event bus
func NewBus() *Bus {
	return &Bus{
		handlers: make(map[EventType][]Handler),
	}
}

// Subscribe adds a handler for a specific event type
func (b *Bus) Subscribe(eventType EventType, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.handlers[eventType] == nil {
		b.handlers[eventType] = make([]Handler, 0)
	}
	b.handlers[eventType] = append(b.handlers[eventType], handler)

	log.WithFields(log.Fields{
		"eventType":    eventType,
		"handlerCount": len(b.handlers[eventType]),
	}).Debug("Subscribed handler to event type")
}

// Publish dispatches an event to all subscribed handlers synchronously.
// Bus satisfies the Publisher interface so it can back services directly
// in tests and single-process deployments.
func (b *Bus) Publish(event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type()]
	b.mu.RUnlock()

	ctx := context.Background()
	for _, handler := range handlers {
		handler(ctx, event)
	}
	return nil
}
