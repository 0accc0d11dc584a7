package summarize

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Options bound the completion: output length and sampling configuration.
type Options struct {
	MaxTokens   int
	Temperature float64
	TopP        float64
}

// Client talks to a local llama.cpp-style completion server.
type Client struct {
	baseURL string
	http    *http.Client
	opts    Options
}

func NewClient(baseURL string, opts Options) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		opts:    opts,
	}
}

type completionRequest struct {
	Prompt      string  `json:"prompt"`
	NPredict    int     `json:"n_predict"`
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"top_p"`
}

type completionResponse struct {
	Content string `json:"content"`
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(completionRequest{
		Prompt:      prompt,
		NPredict:    c.opts.MaxTokens,
		Temperature: c.opts.Temperature,
		TopP:        c.opts.TopP,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/completion", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("model runtime returned %d: %s", resp.StatusCode, snippet)
	}

	var cr completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return "", err
	}
	return cr.Content, nil
}

// Load waits for the local model runtime to finish loading its weights and
// returns a client bound to it. The runtime answers /health with a non-200
// status until the model is in memory, which is the heavyweight part of
// startup; giving up after timeout puts the gate into its failed state.
func Load(baseURL string, opts Options, timeout time.Duration) (Model, error) {
	client := NewClient(baseURL, opts)
	deadline := time.Now().Add(timeout)
	for {
		resp, err := http.Get(baseURL + "/health")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return client, nil
			}
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("model runtime at %s not ready after %s", baseURL, timeout)
		}
		time.Sleep(2 * time.Second)
	}
}
