package summarize

import (
	"context"
	"errors"
)

var ErrModelLoading = errors.New("model is still loading")

// Model is the opaque inference capability: prompt in, completion out.
type Model interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Gate tracks the single background model load. The load publishes its
// result exactly once: model and err are written before done is closed and
// never touched again, so every reader that sees the gate ready sees the
// same outcome forever.
type Gate struct {
	done  chan struct{}
	model Model
	err   error
}

// NewGate starts load in the background and returns immediately. No caller
// ever waits on the load; they poll through Model.
func NewGate(load func() (Model, error)) *Gate {
	g := &Gate{done: make(chan struct{})}
	go func() {
		g.model, g.err = load()
		close(g.done)
	}()
	return g
}

// ReadyGate returns a gate already holding m. Meant for tests.
func ReadyGate(m Model) *Gate {
	g := &Gate{done: make(chan struct{}), model: m}
	close(g.done)
	return g
}

// FailedGate returns a gate whose load has already failed. Meant for tests.
func FailedGate(err error) *Gate {
	g := &Gate{done: make(chan struct{}), err: err}
	close(g.done)
	return g
}

// Model reports the gate state without blocking: ErrModelLoading while the
// load is in flight, the load failure once published, or the model.
func (g *Gate) Model() (Model, error) {
	select {
	case <-g.done:
		if g.err != nil {
			return nil, g.err
		}
		return g.model, nil
	default:
		return nil, ErrModelLoading
	}
}
