package notion

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// Config holds configuration for the Notion document store.
type Config struct {
	// Token is the integration secret (required).
	Token string

	// RequestsPerSecond throttles API calls (default: domain.DefaultRequestsPerSecond).
	RequestsPerSecond float64

	// Timeout is the request timeout (default: 30s).
	Timeout time.Duration

	// Transport is the underlying round tripper (default: http.DefaultTransport).
	Transport http.RoundTripper
}

// Store reads pages and blocks through the Notion API.
type Store struct {
	client  *notionapi.Client
	limiter *RateLimiter
}

// NewStore creates a new Notion document store.
func NewStore(cfg Config) (*Store, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("%w: notion token is required", domain.ErrNotConfigured)
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = domain.DefaultRequestsPerSecond
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.Transport == nil {
		cfg.Transport = http.DefaultTransport
	}

	limiter := NewRateLimiter(cfg.RequestsPerSecond)
	httpClient := &http.Client{
		Timeout:   cfg.Timeout,
		Transport: &transport{base: cfg.Transport, limiter: limiter},
	}

	return &Store{
		client:  notionapi.NewClient(notionapi.Token(cfg.Token), notionapi.WithHTTPClient(httpClient)),
		limiter: limiter,
	}, nil
}

// Search returns pages matching query, most recently edited first.
// Non-page results are skipped.
func (s *Store) Search(ctx context.Context, query string, limit int) ([]domain.DocumentRef, error) {
	seen := s.limiter.RateLimited()
	resp, err := s.client.Search.Do(ctx, &notionapi.SearchRequest{
		Query: query,
		Filter: notionapi.SearchFilter{
			Value:    "page",
			Property: "object",
		},
		Sort: &notionapi.SortObject{
			Direction: notionapi.SortOrderDESC,
			Timestamp: notionapi.TimestampLastEdited,
		},
		PageSize: limit,
	})
	if err != nil {
		return nil, s.mapError(err, seen)
	}

	refs := make([]domain.DocumentRef, 0, len(resp.Results))
	for _, obj := range resp.Results {
		page, ok := obj.(*notionapi.Page)
		if !ok || page == nil {
			continue
		}
		refs = append(refs, toDocumentRef(page))
	}

	logger.FromContext(ctx).Debug("notion search %q returned %d pages", query, len(refs))
	return refs, nil
}

// GetDocument returns the reference of a single page.
func (s *Store) GetDocument(ctx context.Context, documentID string) (domain.DocumentRef, error) {
	seen := s.limiter.RateLimited()
	page, err := s.client.Page.Get(ctx, notionapi.PageID(documentID))
	if err != nil {
		return domain.DocumentRef{}, s.mapError(err, seen)
	}
	return toDocumentRef(page), nil
}

// GetChildren returns the first page of a block's children.
func (s *Store) GetChildren(ctx context.Context, blockID string, pageSize int) ([]domain.ContentBlock, error) {
	seen := s.limiter.RateLimited()
	resp, err := s.client.Block.GetChildren(ctx, notionapi.BlockID(blockID), &notionapi.Pagination{
		PageSize: pageSize,
	})
	if err != nil {
		return nil, s.mapError(err, seen)
	}

	blocks := make([]domain.ContentBlock, 0, len(resp.Results))
	for _, b := range resp.Results {
		if b == nil {
			continue
		}
		blocks = append(blocks, toContentBlock(b))
	}
	return blocks, nil
}

// Ping runs a one-result search to validate the token.
func (s *Store) Ping(ctx context.Context) error {
	seen := s.limiter.RateLimited()
	if _, err := s.client.Search.Do(ctx, &notionapi.SearchRequest{PageSize: 1}); err != nil {
		return fmt.Errorf("notion: ping failed: %w", s.mapError(err, seen))
	}
	return nil
}

// mapError translates API errors into domain errors. seen is the limiter's
// 429 count when the call started; the client gives up on repeated 429s
// with its own error type, so a rise in the count marks rate limiting.
func (s *Store) mapError(err error, seen int) error {
	var apiErr *notionapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Status {
		case http.StatusTooManyRequests:
			return fmt.Errorf("%w: %s", domain.ErrRateLimited, apiErr.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return fmt.Errorf("%w: %s", domain.ErrAuthInvalid, apiErr.Message)
		case http.StatusNotFound:
			return fmt.Errorf("%w: %s", domain.ErrNotFound, apiErr.Message)
		}
	}
	if s.limiter.RateLimited() > seen {
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	}
	return fmt.Errorf("%w: %w", domain.ErrStoreUnavailable, err)
}
