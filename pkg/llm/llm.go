// Package llm hides the language-model vendor behind ChatCompleter.
package llm

import (
	"context"
	"errors"
)

const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

var ErrEmptyCompletion = errors.New("llm: provider returned no content")

type Message struct {
	Role    string
	Content string
}

type CompletionRequest struct {
	Model       string
	Messages    []Message
	MaxTokens   int
	Temperature float32
}

type ChatCompleter interface {
	Complete(ctx context.Context, req CompletionRequest) (string, error)
	// Name identifies the backend in logs and exchange metadata.
	Name() string
}
