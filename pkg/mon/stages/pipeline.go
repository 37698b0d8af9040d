package stages

import (
	"context"
	"reflect"

	"github.com/eapache/queue"
	"github.com/google/uuid"

	"github.com/ib-77/mon/pkg/mon"
)

type Pipeline struct {
	id      uuid.UUID
	name    string
	pending *queue.Queue
	stages  []Stage
	trace   func(Event)
	err     error
}

func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		id:      uuid.New(),
		pending: queue.New(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Add appends stages in execution order. Each stage is linked to its
// predecessor as it leaves the pending queue; the first mismatch is kept
// and reported by Build and Run.
func (p *Pipeline) Add(stages ...Stage) *Pipeline {
	for _, s := range stages {
		p.pending.Add(s)
	}

	for p.pending.Length() > 0 {
		s := p.pending.Peek().(Stage)
		if p.err == nil {
			p.err = p.link(s)
		}
		p.stages = append(p.stages, s)
		p.pending.Remove()
	}
	return p
}

func (p *Pipeline) link(s Stage) error {
	n := len(p.stages)
	if n == 0 {
		return nil
	}

	prev := p.stages[n-1]
	if prev.next.AssignableTo(s.in) {
		return nil
	}
	// interface outputs are checked against the dynamic value in Run
	if prev.next.Kind() == reflect.Interface {
		return nil
	}
	return &StageError{Index: n, Stage: s.name, Want: s.in, Got: prev.next}
}

func (p *Pipeline) Len() int {
	return len(p.stages)
}

func (p *Pipeline) ID() uuid.UUID {
	return p.id
}

func (p *Pipeline) Name() string {
	return p.name
}

// Build reports whether every stage accepts what its predecessor produces.
func (p *Pipeline) Build() error {
	if len(p.stages) == 0 {
		return ErrEmptyPipeline
	}
	return p.err
}

// Run pipes input through every stage. A variant input starts the run with
// its continuing value. The run stops early at the first unpopulated result,
// which is returned, or when ctx is done.
func (p *Pipeline) Run(ctx context.Context, input any) (mon.Variant, error) {
	if err := p.Build(); err != nil {
		return nil, err
	}

	var cur mon.Erased
	value := input
	if e, ok := input.(mon.Erased); ok {
		cur = e
		v, populated := e.Continue()
		if !populated {
			return e, nil
		}
		value = v
	}

	for i, st := range p.stages {
		if err := ctx.Err(); err != nil {
			return cur, err
		}

		arg, ok := st.convert(value)
		if !ok {
			return cur, &StageError{Index: i, Stage: st.name, Want: st.in, Got: reflect.TypeOf(value)}
		}
		res, ok := st.fn(arg)
		if !ok {
			return cur, &StageError{Index: i, Stage: st.name, Want: st.in, Got: reflect.TypeOf(value)}
		}

		cur = res
		p.emit(st, i, cur)

		v, populated := cur.Continue()
		if !populated {
			return cur, nil
		}
		value = v
	}

	return cur, nil
}

func (p *Pipeline) emit(st Stage, i int, res mon.Erased) {
	if p.trace == nil {
		return
	}
	p.trace(Event{
		PipelineID: p.id,
		Pipeline:   p.name,
		Stage:      st.name,
		Index:      i,
		Kind:       res.Kind(),
		Populated:  res.Populated(),
	})
}
