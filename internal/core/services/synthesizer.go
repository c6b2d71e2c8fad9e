package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// contextDivider separates documents in the assembled context.
// No block rendering produces it.
const contextDivider = "\n\n=====\n\n"

// Synthesizer turns selected documents into an answer using the language model.
type Synthesizer struct {
	llm         driven.LLMService
	promptStore driven.PromptStore
	language    string
}

// NewSynthesizer creates a synthesizer answering in language.
// An empty language selects domain.DefaultLanguage.
func NewSynthesizer(llm driven.LLMService, language string) *Synthesizer {
	if strings.TrimSpace(language) == "" {
		language = domain.DefaultLanguage
	}
	return &Synthesizer{llm: llm, language: language}
}

// SetPromptStore sets the prompt store for loading a customised system prompt.
// If not set, domain.AnswerSystemPrompt is used.
func (s *Synthesizer) SetPromptStore(store driven.PromptStore) {
	s.promptStore = store
}

// Synthesize answers query from docs. With no documents it returns
// domain.NoInformationMessage without calling the model. A reply without
// text returns domain.CouldNotGenerateMessage.
func (s *Synthesizer) Synthesize(ctx context.Context, query string, docs []domain.RenderedDocument) (string, error) {
	log := logger.FromContext(ctx)

	if len(docs) == 0 {
		log.Info("no documents selected, skipping model call")
		return domain.NoInformationMessage, nil
	}

	req := driven.CompletionRequest{
		System:    s.SystemPrompt(),
		User:      AssembleContext(docs) + "\n\nQuestion: " + query,
		MaxTokens: domain.MaxAnswerTokens,
	}
	log.Debug("calling %s with %d documents (%d chars of context)",
		s.llm.ModelName(), len(docs), len(req.User))

	completion, err := s.llm.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("complete: %w", err)
	}

	text, ok := completion.FirstText()
	if !ok || strings.TrimSpace(text) == "" {
		log.Warn("model returned no text")
		return domain.CouldNotGenerateMessage, nil
	}
	return text, nil
}

// SystemPrompt returns the system instruction for the configured language.
func (s *Synthesizer) SystemPrompt() string {
	tmpl := domain.AnswerSystemPrompt
	if s.promptStore != nil {
		if custom, err := s.promptStore.Load(driven.PromptAnswerSystem); err == nil && custom != "" {
			tmpl = custom
		}
	}
	return strings.Replace(tmpl, "%s", s.language, 1)
}

// AssembleContext renders docs in order, each headed by its 1-based index,
// title and URL, separated by a divider.
func AssembleContext(docs []domain.RenderedDocument) string {
	parts := make([]string, len(docs))
	for i := range docs {
		var sb strings.Builder
		sb.WriteString("[Document ")
		sb.WriteString(strconv.Itoa(i + 1))
		sb.WriteString("] ")
		sb.WriteString(docs[i].Title)
		sb.WriteString("\nURL: ")
		sb.WriteString(docs[i].URL)
		sb.WriteString("\n\n")
		sb.WriteString(docs[i].Text)
		parts[i] = sb.String()
	}
	return strings.Join(parts, contextDivider)
}
