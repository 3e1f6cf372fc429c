// Package orchestrator wires the definition loader, group resolution,
// transformers, markup sanitising and the encoders into a single pipeline
// for callers that want one entry point.
package orchestrator
