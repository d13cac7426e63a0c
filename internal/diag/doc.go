// Package diag defines the diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: a Severity, a compact numeric Code with a
// stable string form, a human message, a primary source.Span, and optional
// Notes. Phases emit diagnostics through the Reporter interface so producers
// never couple to concrete storage; BagReporter aggregates into a Bag, which
// supports sorting, deduplication, and merging.
//
// The package performs no formatting or IO. Rendering lives in
// internal/diagfmt; per-file collection and phase ordering live in
// internal/driver. Diagnostics are plain values — they are collected, never
// thrown, and a declaration that produced an error still participates in every
// later phase.
//
// Phase attribution matters to consumers: declaration-phase (parse + bind)
// diagnostics and emit-phase diagnostics are collected in separate Bags, and
// the driver concatenates them in phase order. Tests key on which bag a given
// code appears in, so producers must not move a code between phases without
// updating both.
package diag
