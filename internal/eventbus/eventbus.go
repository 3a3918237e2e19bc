package eventbus

import (
	"io"
	"runtime/debug"
	"sync"

	"github.com/sirupsen/logrus"

	"pageview/internal/domain"
)

// Re-export domain types for convenience
type DomainEvent = domain.DomainEvent
type EventType = domain.EventType

// Event type constants
const (
	EventPageChanged      = domain.EventPageChanged
	EventThresholdCrossed = domain.EventThresholdCrossed
	EventDragStarted      = domain.EventDragStarted
	EventDragEnded        = domain.EventDragEnded
	EventFeedback         = domain.EventFeedback
	EventError            = domain.EventError
	EventConfigLoaded     = domain.EventConfigLoaded
	EventConfigSaved      = domain.EventConfigSaved
)

// Re-export domain event types
type PageChangedEvent = domain.PageChangedEvent
type ThresholdCrossedEvent = domain.ThresholdCrossedEvent
type DragStartedEvent = domain.DragStartedEvent
type DragEndedEvent = domain.DragEndedEvent
type FeedbackEvent = domain.FeedbackEvent
type ErrorEvent = domain.ErrorEvent
type ConfigLoadedEvent = domain.ConfigLoadedEvent
type ConfigSavedEvent = domain.ConfigSavedEvent

// EventHandler is a function that handles domain events
type EventHandler func(DomainEvent)

// EventBus is the interface for the event bus
type EventBus interface {
	Publish(event DomainEvent)
	Subscribe(eventType EventType, handler EventHandler) func()
	Close()
}

const queueSize = 1000

type subscription struct {
	id      int
	handler EventHandler
}

// bus is the concrete implementation of EventBus
type bus struct {
	mu        sync.RWMutex
	handlers  map[EventType][]subscription
	lastSubID int
	eventChan chan DomainEvent
	log       logrus.FieldLogger
	wg        sync.WaitGroup
	closeOnce sync.Once
	quit      chan struct{}
}

// New creates a new event bus. A nil logger discards bus diagnostics.
func New(log logrus.FieldLogger) EventBus {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	b := &bus{
		handlers:  make(map[EventType][]subscription),
		eventChan: make(chan DomainEvent, queueSize),
		log:       log.WithField("component", "eventbus"),
		quit:      make(chan struct{}),
	}

	b.wg.Add(1)
	go b.dispatch()

	return b
}

// Publish publishes an event to all subscribers
func (b *bus) Publish(event DomainEvent) {
	// Threshold edges fire on every drag, keep them out of the debug log
	if event.Type() != EventThresholdCrossed {
		b.log.WithField("event", event.Type()).Debug("publishing event")
	}

	select {
	case <-b.quit:
		return
	default:
	}

	select {
	case b.eventChan <- event:
	default:
		b.log.WithField("event", event.Type()).Warn("event bus channel full, dropping event")
	}
}

// Subscribe subscribes to events of a specific type
// Returns an unsubscribe function
func (b *bus) Subscribe(eventType EventType, handler EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastSubID++
	id := b.lastSubID
	b.handlers[eventType] = append(b.handlers[eventType], subscription{id: id, handler: handler})

	return func() {
		b.mu.Lock()
		defer b.mu.Unlock()

		subs := b.handlers[eventType]
		for i, s := range subs {
			if s.id == id {
				b.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				break
			}
		}
	}
}

// Close stops dispatching and waits for the dispatcher to exit.
// Events still queued are dropped.
func (b *bus) Close() {
	b.closeOnce.Do(func() {
		close(b.quit)
		b.wg.Wait()
	})
}

// dispatch handles event distribution to subscribers
func (b *bus) dispatch() {
	defer b.wg.Done()

	for {
		select {
		case event := <-b.eventChan:
			b.mu.RLock()
			subs := make([]subscription, len(b.handlers[event.Type()]))
			copy(subs, b.handlers[event.Type()])
			b.mu.RUnlock()

			// Handlers run in order so subscribers see events as published
			for _, s := range subs {
				b.call(s.handler, event)
			}

		case <-b.quit:
			for {
				select {
				case <-b.eventChan:
				default:
					return
				}
			}
		}
	}
}

func (b *bus) call(h EventHandler, event DomainEvent) {
	defer func() {
		if r := recover(); r != nil {
			b.log.WithFields(logrus.Fields{
				"event": event.Type(),
				"panic": r,
				"stack": string(debug.Stack()),
			}).Error("event handler panic")
		}
	}()
	h(event)
}
