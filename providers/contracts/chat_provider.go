package contracts

import "context"

// ChatProvider is the remote generation boundary: one prompt in, the raw
// completion text out. Implementations must bound the call with the configured
// timeout and return a models.GenerationFailure on every failure path.
type ChatProvider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
