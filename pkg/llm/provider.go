package llm

import "context"

// Provider produces a single text completion from a system instruction and
// a user prompt. Implementations wrap one upstream API each.
type Provider interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
