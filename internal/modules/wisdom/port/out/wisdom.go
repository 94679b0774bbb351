package out

import "context"

type Generator interface {
	// Configured reports whether Generate can be attempted at all.
	Configured() bool
	Generate(ctx context.Context, prompt string) (string, error)
}

type Cache interface {
	Get(key string) (string, bool)
	Set(key, value string)
}
