package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/halcyon-labs/scribe-cli/internal/core/ports/driven"
)

// fakeEmbedder produces deterministic vectors from character
// frequencies so similar texts land near each other.
type fakeEmbedder struct {
	mu      sync.Mutex
	calls   int
	failErr error
	// gate, when set, is received from before each Embed call.
	gate chan struct{}
}

func (f *fakeEmbedder) Embed(_ context.Context, text string) ([]float32, error) {
	f.mu.Lock()
	f.calls++
	gate := f.gate
	failErr := f.failErr
	f.mu.Unlock()

	if gate != nil {
		<-gate
	}
	if failErr != nil {
		return nil, failErr
	}

	vec := make([]float32, 8)
	for _, r := range text {
		vec[int(r)%8]++
	}
	vec[7] = 1 // never the zero vector
	return vec, nil
}

func (f *fakeEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		vec, err := f.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = vec
	}
	return out, nil
}

func (f *fakeEmbedder) ModelName() string { return "fake-embed" }

func (f *fakeEmbedder) Ping(context.Context) error { return nil }

func (f *fakeEmbedder) Close() error { return nil }

func (f *fakeEmbedder) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeLLM echoes a canned response and records prompts.
type fakeLLM struct {
	mu       sync.Mutex
	response string
	failErr  error
	prompts  []string
}

func (f *fakeLLM) Generate(_ context.Context, prompt string, _ driven.GenerateOptions) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.prompts = append(f.prompts, prompt)
	if f.failErr != nil {
		return "", f.failErr
	}
	if f.response == "" {
		return "a canned answer", nil
	}
	return f.response, nil
}

func (f *fakeLLM) ModelName() string { return "fake-llm" }

func (f *fakeLLM) Ping(context.Context) error { return nil }

func (f *fakeLLM) Close() error { return nil }

func (f *fakeLLM) lastPrompt() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.prompts) == 0 {
		return ""
	}
	return f.prompts[len(f.prompts)-1]
}

func (f *fakeLLM) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.prompts)
}

var errBoom = fmt.Errorf("boom")
