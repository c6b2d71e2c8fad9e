package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
)

// mockDocumentStore implements driven.DocumentStore for testing.
type mockDocumentStore struct {
	mu          sync.Mutex
	refs        []domain.DocumentRef
	searchErr   error
	children    map[string][]domain.ContentBlock
	childErrs   map[string]error
	searchLimit int
	fetches     []string
}

func newMockStore() *mockDocumentStore {
	return &mockDocumentStore{
		children:  make(map[string][]domain.ContentBlock),
		childErrs: make(map[string]error),
	}
}

func (m *mockDocumentStore) Search(_ context.Context, _ string, limit int) ([]domain.DocumentRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searchLimit = limit
	if m.searchErr != nil {
		return nil, m.searchErr
	}
	return m.refs, nil
}

func (m *mockDocumentStore) GetDocument(_ context.Context, documentID string) (domain.DocumentRef, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, ref := range m.refs {
		if ref.ID == documentID {
			return ref, nil
		}
	}
	return domain.DocumentRef{}, domain.ErrNotFound
}

func (m *mockDocumentStore) GetChildren(ctx context.Context, blockID string, _ int) ([]domain.ContentBlock, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, blockID)
	if err := m.childErrs[blockID]; err != nil {
		return nil, err
	}
	return m.children[blockID], nil
}

func (m *mockDocumentStore) Ping(_ context.Context) error {
	return m.searchErr
}

func (m *mockDocumentStore) fetchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.fetches)
}

// page registers a document whose root has the given blocks.
func (m *mockDocumentStore) page(id, title, parentID string, blocks ...domain.ContentBlock) {
	m.refs = append(m.refs, domain.DocumentRef{
		ID:         id,
		URL:        "https://notion.so/" + id,
		ParentID:   parentID,
		Properties: []domain.Property{{Name: "Name", Type: domain.PropertyTitle, Text: title}},
	})
	m.children[id] = blocks
}

// mockLLMService implements driven.LLMService for testing.
type mockLLMService struct {
	completion *driven.Completion
	err        error
	requests   []driven.CompletionRequest
}

func textCompletion(text string) *driven.Completion {
	return &driven.Completion{Segments: []driven.Segment{{Type: driven.SegmentText, Text: text}}}
}

func (m *mockLLMService) Complete(_ context.Context, req driven.CompletionRequest) (*driven.Completion, error) {
	m.requests = append(m.requests, req)
	if m.err != nil {
		return nil, m.err
	}
	return m.completion, nil
}

func (m *mockLLMService) ModelName() string {
	return "mock-model"
}

func (m *mockLLMService) Ping(_ context.Context) error {
	return m.err
}

func (m *mockLLMService) Close() error {
	return nil
}

// mockPromptStore implements driven.PromptStore for testing.
type mockPromptStore struct {
	prompts map[string]string
}

func (m *mockPromptStore) Load(name string) (string, error) {
	if p, ok := m.prompts[name]; ok {
		return p, nil
	}
	return "", domain.ErrInvalidInput
}

func (m *mockPromptStore) Reload() {}

func para(id, text string) domain.ContentBlock {
	return domain.ContentBlock{ID: id, Kind: domain.BlockParagraph, Spans: []domain.RichSpan{{PlainText: text}}}
}

func bullet(id, text string) domain.ContentBlock {
	return domain.ContentBlock{ID: id, Kind: domain.BlockBulletedItem, Spans: []domain.RichSpan{{PlainText: text}}}
}

func withChildren(b domain.ContentBlock) domain.ContentBlock {
	b.HasChildren = true
	return b
}
