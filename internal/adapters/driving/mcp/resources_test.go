package mcp

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

func TestExtractDocumentID(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
	}{
		{
			name:     "valid document URI",
			uri:      "sercha-assist://documents/doc-456",
			expected: "doc-456",
		},
		{
			name:     "invalid prefix",
			uri:      "sercha://documents/doc-456",
			expected: "",
		},
		{
			name:     "nested path",
			uri:      "sercha-assist://documents/doc-456/children",
			expected: "",
		},
		{
			name:     "empty URI",
			uri:      "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractDocumentID(tt.uri))
		})
	}
}

func makeReadResourceRequest(uri string) *mcp.ReadResourceRequest {
	return &mcp.ReadResourceRequest{
		Params: &mcp.ReadResourceParams{
			URI: uri,
		},
	}
}

func TestServer_handleDocumentContentResource(t *testing.T) {
	ctx := context.Background()

	t.Run("nil document reader returns not found", func(t *testing.T) {
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("sercha-assist://documents/doc-123"))

		require.Error(t, err)
	})

	t.Run("invalid URI returns not found", func(t *testing.T) {
		reader := &mockDocumentReader{}
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}, Documents: reader})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("sercha-assist://invalid/uri"))

		require.Error(t, err)
		assert.Empty(t, reader.id)
	})

	t.Run("returns content successfully", func(t *testing.T) {
		reader := &mockDocumentReader{content: "# Onboarding\n• Get a laptop"}
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}, Documents: reader})
		require.NoError(t, err)

		result, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest("sercha-assist://documents/doc-123"))

		require.NoError(t, err)
		assert.Equal(t, "doc-123", reader.id)
		require.Len(t, result.Contents, 1)
		assert.Equal(t, "# Onboarding\n• Get a laptop", result.Contents[0].Text)
		assert.Equal(t, "text/plain", result.Contents[0].MIMEType)
	})

	t.Run("unknown or out of scope document returns not found", func(t *testing.T) {
		reader := &mockDocumentReader{err: fmt.Errorf("%w: document secret", domain.ErrNotFound)}
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}, Documents: reader})
		require.NoError(t, err)

		uri := "sercha-assist://documents/secret"
		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest(uri))

		require.Error(t, err)
		assert.EqualError(t, err, mcp.ResourceNotFoundError(uri).Error())
	})

	t.Run("empty document returns not found", func(t *testing.T) {
		reader := &mockDocumentReader{content: " \n "}
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}, Documents: reader})
		require.NoError(t, err)

		uri := "sercha-assist://documents/blank"
		result, err := server.handleDocumentContentResource(ctx, makeReadResourceRequest(uri))

		require.Error(t, err)
		assert.Nil(t, result)
		assert.EqualError(t, err, mcp.ResourceNotFoundError(uri).Error())
	})

	t.Run("returns error on read failure", func(t *testing.T) {
		reader := &mockDocumentReader{err: errors.New("notion: 500")}
		server, err := NewServer(&Ports{Answer: &mockAnswerService{}, Documents: reader})
		require.NoError(t, err)

		_, err = server.handleDocumentContentResource(ctx, makeReadResourceRequest("sercha-assist://documents/doc-123"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading document")
	})
}
