package triage

import "fmt"

// Error taxonomy for the triage pipeline. Internal stages return these typed
// errors; the pipeline boundary collapses any of them into the documented
// fallback result, so none of them ever reach the ticket management caller.

// EmbeddingError wraps a failure of the embedding provider.
type EmbeddingError struct {
	Err error
}

func (e *EmbeddingError) Error() string {
	return fmt.Sprintf("embedding failed: %v", e.Err)
}

func (e *EmbeddingError) Unwrap() error { return e.Err }

// StoreError wraps a knowledge store failure (persistence unavailable,
// dimension mismatch).
type StoreError struct {
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("knowledge store failed: %v", e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// GenerationError wraps a failed model invocation. It is distinct from an
// empty-but-successful completion.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation failed: %v", e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// ParseError reports model output that could not be coerced into the expected
// shape. Raw carries the offending text for diagnostics.
type ParseError struct {
	Raw string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("unparseable model output: %v (raw: %.200s)", e.Err, e.Raw)
}

func (e *ParseError) Unwrap() error { return e.Err }
