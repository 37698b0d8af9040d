package stages

import (
	"github.com/google/uuid"

	"github.com/ib-77/mon/pkg/mon"
)

// Event is delivered to the trace callback after each stage.
type Event struct {
	PipelineID uuid.UUID
	Pipeline   string
	Stage      string
	Index      int
	Kind       mon.Kind
	Populated  bool
}

type Option func(*Pipeline)

// WithTrace registers a callback receiving one Event per executed stage.
func WithTrace(trace func(Event)) Option {
	return func(p *Pipeline) {
		p.trace = trace
	}
}

func WithName(name string) Option {
	return func(p *Pipeline) {
		p.name = name
	}
}

// WithID overrides the generated pipeline ID.
func WithID(id uuid.UUID) Option {
	return func(p *Pipeline) {
		p.id = id
	}
}
