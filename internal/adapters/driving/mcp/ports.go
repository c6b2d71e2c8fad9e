package mcp

import (
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Answer runs the question answering pipeline.
	Answer driving.AnswerService

	// Documents renders single documents. Optional.
	Documents driving.DocumentReader
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Answer == nil {
		return ErrMissingAnswerService
	}
	return nil
}
