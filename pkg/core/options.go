package core

import "time"

// IngestOption configures Ingest operations using the functional options
// pattern.
type IngestOption func(*IngestOptions)

// IngestOptions contains configuration for one Ingest call.
type IngestOptions struct {
	// SourceTag labels the episodic records created from this text.
	SourceTag string
}

// WithSourceTag sets the context tag for records created by this call.
//
// Example:
//
//	_ = client.Ingest("athena", text, core.WithSourceTag("corpus/plato.txt"))
func WithSourceTag(tag string) IngestOption {
	return func(opts *IngestOptions) {
		opts.SourceTag = tag
	}
}

// ConsolidateOption configures Consolidate operations.
type ConsolidateOption func(*ConsolidateOptions)

// ConsolidateOptions contains configuration for one Consolidate call.
type ConsolidateOptions struct {
	// Now fixes the clock used by the recency factor. Zero means wall time.
	Now time.Time

	// Resonance overrides the sigel's contextual alignment scalar.
	Resonance *float64
}

// WithNow fixes the scoring clock, letting tests pin the recency factor.
//
// Example:
//
//	report, _ := client.Consolidate("athena", core.WithNow(fixedTime))
func WithNow(now time.Time) ConsolidateOption {
	return func(opts *ConsolidateOptions) {
		opts.Now = now
	}
}

// WithResonance overrides the contextual alignment scalar for this pass.
//
// Example:
//
//	report, _ := client.Consolidate("athena", core.WithResonance(0.9))
func WithResonance(r float64) ConsolidateOption {
	return func(opts *ConsolidateOptions) {
		opts.Resonance = &r
	}
}
