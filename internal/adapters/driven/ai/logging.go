package ai

import (
	"context"
	"time"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// loggingLLM logs each completion with the request's logger.
type loggingLLM struct {
	driven.LLMService
	provider domain.AIProvider
}

// WithLogging wraps svc so every Complete call logs its latency and
// outcome under the logger carried by the request context.
func WithLogging(provider domain.AIProvider, svc driven.LLMService) driven.LLMService {
	return &loggingLLM{LLMService: svc, provider: provider}
}

func (l *loggingLLM) Complete(ctx context.Context, req driven.CompletionRequest) (*driven.Completion, error) {
	log := logger.FromContext(ctx)
	start := time.Now()

	completion, err := l.LLMService.Complete(ctx, req)
	elapsed := time.Since(start).Round(time.Millisecond)
	if err != nil {
		log.Warn("%s/%s failed after %s: %v", l.provider, l.ModelName(), elapsed, err)
		return nil, err
	}

	log.Debug("%s/%s replied in %s with %d segments (stop: %q)",
		l.provider, l.ModelName(), elapsed, len(completion.Segments), completion.StopReason)
	return completion, nil
}
