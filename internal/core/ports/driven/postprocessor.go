package driven

import "context"

// TokenProcessor transforms a token sequence.
// Processors are chained in a pipeline (e.g., alphabetic filter, dedupe).
type TokenProcessor interface {
	// Name returns the processor name for logging and configuration.
	Name() string

	// Process returns the transformed tokens. Order must be preserved for
	// tokens that are kept.
	Process(ctx context.Context, tokens []string) ([]string, error)
}

// TokenPipeline chains multiple TokenProcessors.
type TokenPipeline interface {
	// Process runs the tokens through all processors in order.
	Process(ctx context.Context, tokens []string) ([]string, error)
}
