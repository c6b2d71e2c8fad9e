package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// Ensure DocumentReader implements the interface.
var _ driving.DocumentReader = (*DocumentReader)(nil)

// DocumentReader renders single documents by ID, restricted to the same
// scope the selector answers from.
type DocumentReader struct {
	store     driven.DocumentStore
	flattener *Flattener
	inScope   domain.ScopeFilter
}

// NewDocumentReader creates a reader. A blank scopeID disables scope filtering.
func NewDocumentReader(store driven.DocumentStore, scopeID string) *DocumentReader {
	return &DocumentReader{
		store:     store,
		flattener: NewFlattener(store),
		inScope:   domain.NewScopeFilter(scopeID),
	}
}

// Read flattens a whole document from its root block.
func (r *DocumentReader) Read(ctx context.Context, documentID string) (string, error) {
	documentID = strings.TrimSpace(documentID)
	if documentID == "" {
		return "", fmt.Errorf("%w: empty document id", domain.ErrInvalidInput)
	}

	ref, err := r.store.GetDocument(ctx, documentID)
	if err != nil {
		return "", fmt.Errorf("get document %s: %w", documentID, err)
	}
	if !r.inScope(ref) {
		logger.FromContext(ctx).Warn("refused out of scope document %s (parent %q)", documentID, ref.ParentID)
		return "", fmt.Errorf("%w: document %s", domain.ErrNotFound, documentID)
	}

	return r.flattener.Flatten(ctx, ref.ID, 0)
}
