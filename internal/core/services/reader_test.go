package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

func TestDocumentReader_Read(t *testing.T) {
	store := newMockStore()
	store.page("page-1", "Guide", "wiki-db", para("p", "body"))

	text, err := NewDocumentReader(store, "wiki-db").Read(context.Background(), " page-1 ")

	require.NoError(t, err)
	assert.Equal(t, "body", text)
}

func TestDocumentReader_RejectsOutOfScope(t *testing.T) {
	store := newMockStore()
	store.page("wiki", "Guide", "wiki-db", para("p1", "public"))
	store.page("secret", "Payroll", "hr-db", para("p2", "CEO salary is 1M"))

	reader := NewDocumentReader(store, "wiki-db")
	text, err := reader.Read(context.Background(), "secret")

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, text)
	assert.NotContains(t, store.fetches, "secret")
}

func TestDocumentReader_ScopeIgnoresSeparators(t *testing.T) {
	store := newMockStore()
	store.page("page-1", "Guide", "abc-123", para("p", "body"))

	text, err := NewDocumentReader(store, "ABC123").Read(context.Background(), "page-1")

	require.NoError(t, err)
	assert.Equal(t, "body", text)
}

func TestDocumentReader_NoScopeReadsAnyPage(t *testing.T) {
	store := newMockStore()
	store.page("page-1", "Guide", "", para("p", "body"))

	text, err := NewDocumentReader(store, "").Read(context.Background(), "page-1")

	require.NoError(t, err)
	assert.Equal(t, "body", text)
}

func TestDocumentReader_UnknownDocument(t *testing.T) {
	_, err := NewDocumentReader(newMockStore(), "").Read(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDocumentReader_RejectsEmptyID(t *testing.T) {
	_, err := NewDocumentReader(newMockStore(), "").Read(context.Background(), "  ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
