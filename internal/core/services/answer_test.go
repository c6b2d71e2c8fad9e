package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

func newTestAnswerService(store *mockDocumentStore, llm *mockLLMService, scopeID string) *AnswerService {
	return NewAnswerService(NewDocumentSelector(store, scopeID), NewSynthesizer(llm, "English"))
}

func TestAnswerService_Answer(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Wiki", "", para("a", "The VPN host is vpn.example.com."))
	llm := &mockLLMService{completion: textCompletion("Use vpn.example.com.\nSources: <https://notion.so/p1|Wiki>")}

	answer, err := newTestAnswerService(store, llm, "").Answer(context.Background(), "  vpn host?  ")

	require.NoError(t, err)
	assert.Contains(t, answer, "vpn.example.com")
	require.Len(t, llm.requests, 1)
	assert.Contains(t, llm.requests[0].User, "Question: vpn host?")
}

func TestAnswerService_Answer_EmptyQuery(t *testing.T) {
	llm := &mockLLMService{}

	_, err := newTestAnswerService(newMockStore(), llm, "").Answer(context.Background(), "   ")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Empty(t, llm.requests)
}

func TestAnswerService_Answer_WhitespaceDocumentYieldsNoInformation(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Blank", "", para("a", "  \n "))
	llm := &mockLLMService{completion: textCompletion("unused")}

	answer, err := newTestAnswerService(store, llm, "").Answer(context.Background(), "q")

	require.NoError(t, err)
	assert.Equal(t, domain.NoInformationMessage, answer)
	assert.Empty(t, llm.requests)
}

func TestAnswerService_Answer_SearchFailure(t *testing.T) {
	store := newMockStore()
	store.searchErr = errors.New("401 unauthorized")

	_, err := newTestAnswerService(store, &mockLLMService{}, "").Answer(context.Background(), "q")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "select documents")
}

func TestAnswerService_Answer_DeadlineIsNotNoInformation(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Wiki", "", para("a", "text"))
	llm := &mockLLMService{completion: textCompletion("unused")}

	ctx, cancel := context.WithTimeout(context.Background(), -time.Second)
	defer cancel()
	answer, err := newTestAnswerService(store, llm, "").Answer(ctx, "q")

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, answer)
	assert.Empty(t, llm.requests)
}

func TestAnswerService_Answer_ModelFailure(t *testing.T) {
	store := newMockStore()
	store.page("p1", "Wiki", "", para("a", "text"))
	llm := &mockLLMService{err: errors.New("timeout")}

	_, err := newTestAnswerService(store, llm, "").Answer(context.Background(), "q")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "synthesize")
}

func TestAnswerService_Answer_Deterministic(t *testing.T) {
	store := newMockStore()
	store.page("p1", "One", "", para("a", "a"))
	store.page("p2", "Two", "", para("b", "b"))
	llm := &mockLLMService{completion: textCompletion("ok")}
	service := newTestAnswerService(store, llm, "")

	_, err := service.Answer(context.Background(), "q")
	require.NoError(t, err)
	_, err = service.Answer(context.Background(), "q")
	require.NoError(t, err)

	require.Len(t, llm.requests, 2)
	assert.Equal(t, llm.requests[0], llm.requests[1])
}
