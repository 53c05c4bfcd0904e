package pipeline

import (
	"fmt"
	"time"

	"github.com/anyamemensah/recode-cols/internal/codebook"
	"github.com/anyamemensah/recode-cols/internal/domain/data"
	"github.com/anyamemensah/recode-cols/internal/recode"
)

// Pipeline is the main entry point for recoding a dataset. It compiles a
// codebook, applies it, and notifies observers at each phase.
type Pipeline struct {
	fields     codebook.FieldSpec
	recodeOpts []recode.Option
	observers  []Observer // Observers for lifecycle events
}

// New creates a new Pipeline instance
func New(fields codebook.FieldSpec, opts ...recode.Option) *Pipeline {
	return &Pipeline{
		fields:     fields,
		recodeOpts: opts,
		observers:  make([]Observer, 0),
	}
}

// Run compiles a codebook table and applies it to the dataset.
func (p *Pipeline) Run(table, ds *data.Dataset) (*recode.Result, error) {
	run := NewRun()
	defer run.Close()

	// 1. Compile
	p.notify(Event{Type: EventCompileStart, RunID: run.ID, Data: table.Name})
	cb, err := codebook.Compile(table, p.fields)
	if err != nil {
		return nil, fmt.Errorf("compile error: %w", err)
	}
	p.notify(Event{Type: EventCompileEnd, RunID: run.ID, Data: cb.Len()})

	// 2. Recode
	return p.apply(run, cb, ds)
}

// RunCompiled applies an already-compiled codebook, e.g. one loaded from a
// YAML document or inverted for a reverse pass.
func (p *Pipeline) RunCompiled(cb *codebook.Codebook, ds *data.Dataset) (*recode.Result, error) {
	run := NewRun()
	defer run.Close()

	return p.apply(run, cb, ds)
}

func (p *Pipeline) apply(run *Run, cb *codebook.Codebook, ds *data.Dataset) (*recode.Result, error) {
	p.notify(Event{Type: EventRecodeStart, RunID: run.ID, Data: ds.Name})
	result, err := recode.Recode(ds, cb, p.recodeOpts...)
	if err != nil {
		return nil, fmt.Errorf("recode error: %w", err)
	}
	p.notify(Event{Type: EventRecodeEnd, RunID: run.ID, Data: map[string]any{
		"cells_replaced":  result.Replaced,
		"columns_skipped": len(result.Skipped),
		"elapsed":         run.Elapsed().String(),
	}})

	return result, nil
}

// AddObserver registers an observer to receive lifecycle events
func (p *Pipeline) AddObserver(observer Observer) {
	p.observers = append(p.observers, observer)
}

// RemoveObserver unregisters an observer
func (p *Pipeline) RemoveObserver(observer Observer) {
	for i, o := range p.observers {
		if o == observer {
			p.observers = append(p.observers[:i], p.observers[i+1:]...)
			return
		}
	}
}

// notify sends an event to all registered observers
func (p *Pipeline) notify(event Event) {
	event.Timestamp = time.Now()
	for _, observer := range p.observers {
		observer.OnEvent(event)
	}
}
