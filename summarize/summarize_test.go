package summarize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	lastPrompt string
	out        string
	err        error
	block      bool
}

func (f *fakeModel) Complete(ctx context.Context, prompt string) (string, error) {
	f.lastPrompt = prompt
	if f.block {
		<-ctx.Done()
		return "", ctx.Err()
	}
	return f.out, f.err
}

func TestSummarizeWhileLoading(t *testing.T) {
	release := make(chan struct{})
	gate := NewGate(func() (Model, error) {
		<-release
		return &fakeModel{out: "done"}, nil
	})
	svc := NewService(gate, time.Second)

	_, err := svc.Summarize(context.Background(), "some text")
	require.ErrorIs(t, err, ErrModelLoading)

	close(release)
	require.Eventually(t, func() bool {
		_, err := gate.Model()
		return err == nil
	}, time.Second, 10*time.Millisecond)

	// the gate never regresses once ready
	out, err := svc.Summarize(context.Background(), "some text")
	require.NoError(t, err)
	assert.Equal(t, "done", out)
}

func TestSummarizeAfterFailedLoad(t *testing.T) {
	loadErr := errors.New("weights missing")
	svc := NewService(FailedGate(loadErr), time.Second)

	_, err := svc.Summarize(context.Background(), "some text")
	require.ErrorIs(t, err, ErrInference)
	assert.Contains(t, err.Error(), "weights missing")
}

func TestSummarizeEmptyText(t *testing.T) {
	svc := NewService(ReadyGate(&fakeModel{out: "x"}), time.Second)

	for _, text := range []string{"", "   ", "\n\t"} {
		_, err := svc.Summarize(context.Background(), text)
		require.ErrorIs(t, err, ErrEmptyText)
	}
}

func TestSummarizePromptAndTrim(t *testing.T) {
	m := &fakeModel{out: "  a tidy summary \n"}
	svc := NewService(ReadyGate(m), time.Second)

	out, err := svc.Summarize(context.Background(), "long rambling input")
	require.NoError(t, err)
	assert.Equal(t, "a tidy summary", out)
	assert.Contains(t, m.lastPrompt, "Please summarize the following text concisely:")
	assert.Contains(t, m.lastPrompt, "long rambling input")
	assert.Contains(t, m.lastPrompt, "Summary:")
}

func TestSummarizeModelError(t *testing.T) {
	m := &fakeModel{err: errors.New("oom")}
	svc := NewService(ReadyGate(m), time.Second)

	_, err := svc.Summarize(context.Background(), "text")
	require.ErrorIs(t, err, ErrInference)
}

func TestSummarizeTimeout(t *testing.T) {
	m := &fakeModel{block: true}
	svc := NewService(ReadyGate(m), 20*time.Millisecond)

	start := time.Now()
	_, err := svc.Summarize(context.Background(), "text")
	require.ErrorIs(t, err, ErrInference)
	assert.Less(t, time.Since(start), time.Second)

	// a timed-out call leaves the gate usable
	_, err = svc.gate.Model()
	require.NoError(t, err)
}
