package mcp

import (
	"context"
)

// mockAnswerService is a mock implementation of driving.AnswerService.
type mockAnswerService struct {
	answer   string
	err      error
	question string
}

func (m *mockAnswerService) Answer(_ context.Context, query string) (string, error) {
	m.question = query
	return m.answer, m.err
}

// mockDocumentReader is a mock implementation of driving.DocumentReader.
type mockDocumentReader struct {
	content string
	err     error
	id      string
}

func (m *mockDocumentReader) Read(_ context.Context, documentID string) (string, error) {
	m.id = documentID
	return m.content, m.err
}
