package mcp

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// AskInput is the input schema for the ask tool.
type AskInput struct {
	Question string `json:"question" jsonschema:"the question to answer from the workspace"`
}

// AskOutput is the output schema for the ask tool.
type AskOutput struct {
	Answer string `json:"answer"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "ask",
		Description: "Answer a question from the Notion workspace, citing the pages used",
	}, s.handleAsk)
}

// handleAsk handles the ask tool invocation.
// Pipeline faults are logged and reported with a generic message.
func (s *Server) handleAsk(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AskInput,
) (*mcp.CallToolResult, AskOutput, error) {
	answer, err := s.ports.Answer.Answer(ctx, input.Question)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return nil, AskOutput{}, err
		}
		logger.Error("mcp ask failed: %v", err)
		return nil, AskOutput{}, errors.New(domain.GenericFailureMessage)
	}

	return nil, AskOutput{Answer: answer}, nil
}
