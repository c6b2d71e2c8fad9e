package driven

import (
	"context"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

// DocumentStore is the hierarchical document store the assistant reads from.
// Implementations own authentication, throttling and transport retries.
type DocumentStore interface {
	// Search returns page candidates matching query, most recently edited
	// first, at most limit of them.
	Search(ctx context.Context, query string, limit int) ([]domain.DocumentRef, error)

	// GetDocument returns the reference of a single page.
	// An unknown page yields domain.ErrNotFound.
	GetDocument(ctx context.Context, documentID string) (domain.DocumentRef, error)

	// GetChildren returns the first page of blockID's direct children,
	// in store order. At most pageSize blocks are returned.
	GetChildren(ctx context.Context, blockID string, pageSize int) ([]domain.ContentBlock, error)

	// Ping validates the store is reachable with the configured credentials.
	Ping(ctx context.Context) error
}
