// Package diag defines the diagnostic model shared by all expansion phases.
//
// Diagnostic is the central record: Severity (Info/Warning/Error), a compact
// numeric Code with a stable string form, a short human message, the primary
// source.Span the finding is attributed to, and optional Notes adding
// secondary context.
//
// Producers emit through a diag.Reporter so that storage and formatting stay
// decoupled; BagReporter aggregates into a Bag, which supports sorting and
// deduplication for deterministic output. Rendering lives in
// internal/diagfmt, orchestration in internal/driver.
//
// All splice-engine failures are compile-time errors: they are collected
// eagerly, attributed to the most specific span available, and the engine
// never emits a partially rewritten stream alongside them.
package diag
