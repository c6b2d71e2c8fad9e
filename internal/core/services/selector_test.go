package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

func titles(docs []domain.RenderedDocument) []string {
	out := make([]string, len(docs))
	for i := range docs {
		out[i] = docs[i].Title
	}
	return out
}

func TestDocumentSelector_Select_RequestsOverfetchedResults(t *testing.T) {
	store := newMockStore()

	_, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, domain.MaxCandidates*domain.SearchOverfetch, store.searchLimit)
}

func TestDocumentSelector_Select_RendersInSearchOrder(t *testing.T) {
	store := newMockStore()
	store.page("p1", "First", "", para("a", "alpha"))
	store.page("p2", "Second", "", para("b", "beta"))

	docs, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, domain.RenderedDocument{
		ID: "p1", Title: "First", URL: "https://notion.so/p1", Text: "alpha",
	}, docs[0])
	assert.Equal(t, "Second", docs[1].Title)
}

func TestDocumentSelector_Select_CapsCandidates(t *testing.T) {
	store := newMockStore()
	for i := range 8 {
		store.page(fmt.Sprintf("p%d", i), fmt.Sprintf("Doc %d", i), "", para("x", "text"))
	}

	docs, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.NoError(t, err)
	assert.Len(t, docs, domain.MaxCandidates)
	assert.Equal(t, "Doc 4", docs[4].Title)
}

func TestDocumentSelector_Select_ScopeFilter(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Outside", "other-db", para("a", "nope"))
	store.page("p2", "Inside", "abc123", para("b", "yes"))
	store.page("p3", "No parent", "", para("c", "nope"))
	store.page("p4", "Also inside", "ABC-123", para("d", "yes"))

	docs, err := NewDocumentSelector(store, "abc-123").Select(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, []string{"Inside", "Also inside"}, titles(docs))
}

func TestDocumentSelector_Select_CapAppliesAfterFilter(t *testing.T) {
	store := newMockStore()
	for i := range 6 {
		store.page(fmt.Sprintf("out%d", i), "out", "other", para("x", "x"))
	}
	for i := range 6 {
		store.page(fmt.Sprintf("in%d", i), fmt.Sprintf("In %d", i), "scope", para("x", "x"))
	}

	docs, err := NewDocumentSelector(store, "scope").Select(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, []string{"In 0", "In 1", "In 2", "In 3", "In 4"}, titles(docs))
}

func TestDocumentSelector_Select_DropsWhitespaceDocuments(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Blank", "", para("a", "   "), para("b", "\n\t"))

	docs, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestDocumentSelector_Select_TruncatesPerDocument(t *testing.T) {
	store := newMockStore()
	long := strings.Repeat("é", domain.MaxDocumentChars+500)
	store.page("p1", "Long", "", para("a", long))

	docs, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, domain.MaxDocumentChars, utf8.RuneCountInString(docs[0].Text))
	assert.True(t, utf8.ValidString(docs[0].Text))
}

func TestDocumentSelector_Select_IsolatesCandidateFailures(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Broken", "", withChildren(para("a", "partial")))
	store.childErrs["a"] = errors.New("fetch failed")
	store.page("p2", "Healthy", "", para("b", "fine"))

	docs, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Healthy", docs[0].Title)
	assert.Equal(t, "fine", docs[0].Text)
}

func TestDocumentSelector_Select_SearchErrorPropagates(t *testing.T) {
	store := newMockStore()
	store.searchErr = domain.ErrRateLimited

	docs, err := NewDocumentSelector(store, "").Select(context.Background(), "q")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrRateLimited)
	assert.Nil(t, docs)
}

func TestDocumentSelector_Select_CancelledContextPropagates(t *testing.T) {
	for _, concurrency := range []int{1, 3} {
		store := newMockStore()
		store.page("p1", "One", "", para("a", "first"))
		store.page("p2", "Two", "", para("b", "second"))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		selector := NewDocumentSelector(store, "")
		selector.SetConcurrency(concurrency)
		docs, err := selector.Select(ctx, "q")

		assert.ErrorIs(t, err, context.Canceled, "concurrency %d", concurrency)
		assert.Nil(t, docs)
	}
}

func TestDocumentSelector_Select_ParallelPreservesOrder(t *testing.T) {
	store := newMockStore()
	for i := range 5 {
		store.page(fmt.Sprintf("p%d", i), fmt.Sprintf("Doc %d", i), "", para("x", fmt.Sprintf("body %d", i)))
	}
	store.childErrs["p2"] = errors.New("gone")

	selector := NewDocumentSelector(store, "")
	selector.SetConcurrency(4)
	docs, err := selector.Select(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, []string{"Doc 0", "Doc 1", "Doc 3", "Doc 4"}, titles(docs))
}

func TestDocumentSelector_Select_Deterministic(t *testing.T) {
	store := newMockStore()
	store.page("p1", "One", "", para("a", "a"))
	store.page("p2", "Two", "", para("b", "b"))
	selector := NewDocumentSelector(store, "")

	first, err := selector.Select(context.Background(), "q")
	require.NoError(t, err)
	second, err := selector.Select(context.Background(), "q")
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDocumentSelector_SetConcurrency_Floor(t *testing.T) {
	selector := NewDocumentSelector(newMockStore(), "")
	selector.SetConcurrency(0)
	assert.Equal(t, 1, selector.concurrency)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 5))
	assert.Equal(t, "ab", truncate("abc", 2))
	assert.Equal(t, "", truncate("abc", 0))
	assert.Equal(t, "日本", truncate("日本語", 2))
}
