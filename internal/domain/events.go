package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventPageChanged      EventType = "PageChanged"
	EventThresholdCrossed EventType = "ThresholdCrossed"
	EventDragStarted      EventType = "DragStarted"
	EventDragEnded        EventType = "DragEnded"
	EventFeedback         EventType = "Feedback"
	EventError            EventType = "Error"
	EventConfigLoaded     EventType = "ConfigLoaded"
	EventConfigSaved      EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// PageChangedEvent is emitted when a swipe commits a new selection
type PageChangedEvent struct {
	Mode Mode
	From string
	To   string
}

func (e PageChangedEvent) Type() EventType { return EventPageChanged }

// ThresholdCrossedEvent is emitted on each commit-distance edge.
// Target is empty when the threshold is un-crossed.
type ThresholdCrossedEvent struct {
	Mode   Mode
	Target string
	Active bool
}

func (e ThresholdCrossedEvent) Type() EventType { return EventThresholdCrossed }

// DragStartedEvent is emitted when a gesture becomes a drag
type DragStartedEvent struct {
	Mode Mode
	From string
}

func (e DragStartedEvent) Type() EventType { return EventDragStarted }

// DragEndedEvent is emitted once the settle animation finishes
type DragEndedEvent struct {
	Mode     Mode
	Selected string
}

func (e DragEndedEvent) Type() EventType { return EventDragEnded }

// FeedbackEvent is emitted for each enabled gesture milestone
type FeedbackEvent struct {
	Impact string
}

func (e FeedbackEvent) Type() EventType { return EventFeedback }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
	Mode Mode
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
