package pipeline

import "time"

// EventType represents different lifecycle phases in a recode run
type EventType string

const (
	EventCompileStart EventType = "compile_start"
	EventCompileEnd   EventType = "compile_end"
	EventRecodeStart  EventType = "recode_start"
	EventRecodeEnd    EventType = "recode_end"
)

// Event represents a lifecycle event in a recode run
type Event struct {
	Type      EventType // Type of event
	RunID     string    // Run ID for tracing
	Timestamp time.Time // When the event occurred
	Data      any       // Phase-specific data (e.g., table name, rule count, cell counts)
}

// Observer interface for event subscribers
// Observers receive events at major run phases
type Observer interface {
	OnEvent(event Event)
}
