// Package mcp provides an MCP (Model Context Protocol) server adapter for Sercha Assist.
// It lets AI assistants ask questions answered from the team's Notion workspace.
package mcp

import "errors"

// ErrMissingAnswerService is returned when the answer service is not provided.
var ErrMissingAnswerService = errors.New("mcp: answer service is required")
