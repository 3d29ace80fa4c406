package ai

import "context"

// Provider is a text-completion backend. Implementations issue one synchronous
// upstream call per Complete invocation; cancellation comes from ctx.
type Provider interface {
	Complete(ctx context.Context, model string, prompt string) (string, error)
}
