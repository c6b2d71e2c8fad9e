package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// Ensure AnswerService implements the interface.
var _ driving.AnswerService = (*AnswerService)(nil)

// AnswerService runs the retrieval-and-synthesis pipeline for one query.
type AnswerService struct {
	selector    *DocumentSelector
	synthesizer *Synthesizer
}

// NewAnswerService creates an answer service.
func NewAnswerService(selector *DocumentSelector, synthesizer *Synthesizer) *AnswerService {
	return &AnswerService{
		selector:    selector,
		synthesizer: synthesizer,
	}
}

// Answer selects documents for query and synthesizes an answer from them.
func (s *AnswerService) Answer(ctx context.Context, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", fmt.Errorf("%w: empty question", domain.ErrInvalidInput)
	}

	log := logger.With("request_id", uuid.NewString())
	ctx = logger.NewContext(ctx, log)
	start := time.Now()
	log.Info("answering %q", query)

	docs, err := s.selector.Select(ctx, query)
	if err != nil {
		log.Error("document selection failed: %v", err)
		return "", fmt.Errorf("select documents: %w", err)
	}

	answer, err := s.synthesizer.Synthesize(ctx, query, docs)
	if err != nil {
		log.Error("synthesis failed: %v", err)
		return "", fmt.Errorf("synthesize: %w", err)
	}

	log.Info("answered in %s from %d documents", time.Since(start).Round(time.Millisecond), len(docs))
	return answer, nil
}
