package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Run is the tracing context for one compile/recode pass.
type Run struct {
	ID        string    // Unique run identifier
	Active    bool      // Whether the run is still in progress
	StartTime time.Time // When the run began
}

// NewRun creates a new run with a unique ID.
func NewRun() *Run {
	return &Run{
		ID:        uuid.New().String(),
		Active:    true,
		StartTime: time.Now(),
	}
}

// Close marks the run as finished.
func (r *Run) Close() {
	r.Active = false
}

// Elapsed returns how long the run has been going.
func (r *Run) Elapsed() time.Duration {
	return time.Since(r.StartTime)
}
