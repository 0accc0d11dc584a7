// Package summarize produces short summaries of arbitrary text with a
// locally served language model. The model loads once in the background;
// requests arriving before it is ready are told to retry, never queued.
package summarize

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrEmptyText = errors.New("no text provided")
	ErrInference = errors.New("inference failed")
)

const promptTemplate = "Please summarize the following text concisely:\n\n%s\n\nSummary:"

type Service struct {
	gate    *Gate
	timeout time.Duration
}

func NewService(gate *Gate, timeout time.Duration) *Service {
	return &Service{gate: gate, timeout: timeout}
}

// Summarize runs the model over text with a fixed prompt template and
// returns the trimmed completion. While the model is loading the error is
// ErrModelLoading; a failed load, a model error, or a timeout all surface
// as ErrInference.
func (s *Service) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyText
	}

	model, err := s.gate.Model()
	if err != nil {
		if errors.Is(err, ErrModelLoading) {
			return "", err
		}
		return "", fmt.Errorf("%w: %v", ErrInference, err)
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	out, err := model.Complete(ctx, fmt.Sprintf(promptTemplate, text))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInference, err)
	}
	return strings.TrimSpace(out), nil
}
