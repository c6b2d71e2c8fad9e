// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The answer pipeline is built from three stages:
//
//   - Flattener: renders a block tree to bounded plain text
//   - DocumentSelector: searches, scope-filters and renders candidates
//   - Synthesizer: assembles the context and calls the language model
//
// Services hold no state between queries.
package services
