package llm

import (
	"context"
)

// Client is an opaque text-generation capability: a system instruction
// and a user message in, generated text out. Any failure (timeout,
// auth, quota, malformed response) is reported as an error and treated
// uniformly as "unavailable" by callers.
type Client interface {
	Chat(ctx context.Context, system, user string) (string, error)
}

// Options bound the generation call.
type Options struct {
	MaxTokens   int
	Temperature float64
}

func (o Options) maxTokensOr(def int) int {
	if o.MaxTokens > 0 {
		return o.MaxTokens
	}
	return def
}
