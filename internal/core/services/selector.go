package services

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// DocumentSelector finds and renders the documents used to answer a query.
type DocumentSelector struct {
	store       driven.DocumentStore
	flattener   *Flattener
	inScope     domain.ScopeFilter
	concurrency int
}

// NewDocumentSelector creates a selector. A blank scopeID disables scope filtering.
func NewDocumentSelector(store driven.DocumentStore, scopeID string) *DocumentSelector {
	return &DocumentSelector{
		store:       store,
		flattener:   NewFlattener(store),
		inScope:     domain.NewScopeFilter(scopeID),
		concurrency: domain.DefaultConcurrency,
	}
}

// SetConcurrency sets how many candidates are rendered in parallel.
// Values below 1 are treated as 1.
func (s *DocumentSelector) SetConcurrency(n int) {
	if n < 1 {
		n = 1
	}
	s.concurrency = n
}

// Select searches the store and renders up to domain.MaxCandidates in-scope
// documents, in search order. A search failure or a cancelled ctx is
// returned; a failure while rendering one candidate is logged and that
// candidate is skipped.
func (s *DocumentSelector) Select(ctx context.Context, query string) ([]domain.RenderedDocument, error) {
	log := logger.FromContext(ctx)

	refs, err := s.store.Search(ctx, query, domain.SearchLimit())
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	log.Debug("search returned %d candidates", len(refs))

	candidates := make([]domain.DocumentRef, 0, domain.MaxCandidates)
	for i := range refs {
		if !s.inScope(refs[i]) {
			log.Debug("out of scope: %s (parent %q)", refs[i].ID, refs[i].ParentID)
			continue
		}
		candidates = append(candidates, refs[i])
		if len(candidates) == domain.MaxCandidates {
			break
		}
	}

	rendered := make([]*domain.RenderedDocument, len(candidates))
	if s.concurrency <= 1 {
		for i := range candidates {
			rendered[i] = s.render(ctx, candidates[i])
		}
	} else {
		var g errgroup.Group
		g.SetLimit(s.concurrency)
		for i := range candidates {
			g.Go(func() error {
				rendered[i] = s.render(ctx, candidates[i])
				return nil
			})
		}
		_ = g.Wait()
	}

	// Cancellation is a fault of the whole query, not of single documents.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	docs := make([]domain.RenderedDocument, 0, len(rendered))
	for _, doc := range rendered {
		if doc != nil {
			docs = append(docs, *doc)
		}
	}
	log.Info("selected %d of %d candidates", len(docs), len(candidates))
	return docs, nil
}

// render flattens and truncates one candidate. It returns nil when the
// document is empty or could not be fetched.
func (s *DocumentSelector) render(ctx context.Context, ref domain.DocumentRef) *domain.RenderedDocument {
	log := logger.FromContext(ctx)

	text, err := s.flattener.Flatten(ctx, ref.ID, 0)
	if err != nil {
		log.Warn("skipping document %s: %v", ref.ID, err)
		return nil
	}

	text = strings.TrimSpace(truncate(text, domain.MaxDocumentChars))
	if text == "" {
		log.Debug("skipping empty document %s", ref.ID)
		return nil
	}

	return &domain.RenderedDocument{
		ID:    ref.ID,
		Title: ref.Title(),
		URL:   ref.URL,
		Text:  text,
	}
}

// truncate cuts s to at most n characters without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
