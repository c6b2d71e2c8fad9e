package driven

import "context"

// LLMService provides single-shot language model completion.
//
// Implementations may include:
//   - Anthropic (Claude)
//   - OpenAI and OpenAI-compatible servers
//   - Ollama (local)
//   - Google Gemini
type LLMService interface {
	// Complete sends one system/user exchange and returns the raw content
	// segments of the reply. No retries are performed.
	Complete(ctx context.Context, req CompletionRequest) (*Completion, error)

	// ModelName returns the name of the LLM model being used.
	ModelName() string

	// Ping validates the service is reachable by making a lightweight test request.
	Ping(ctx context.Context) error

	// Close releases resources.
	Close() error
}

// CompletionRequest is a single system/user exchange.
type CompletionRequest struct {
	// System is the instruction prompt.
	System string

	// User is the user turn.
	User string

	// MaxTokens is the maximum number of tokens to generate.
	MaxTokens int
}

// SegmentType tags a content segment of a completion.
type SegmentType string

// Segment types.
const (
	SegmentText  SegmentType = "text"
	SegmentOther SegmentType = "other"
)

// Segment is one piece of model output.
type Segment struct {
	Type SegmentType
	Text string
}

// Completion is the model's reply.
type Completion struct {
	Segments []Segment

	// StopReason is the provider's reason for ending generation, if reported.
	StopReason string
}

// FirstText returns the text of the first text segment.
// The boolean is false if the completion has no text segment.
func (c *Completion) FirstText() (string, bool) {
	if c == nil {
		return "", false
	}
	for _, s := range c.Segments {
		if s.Type == SegmentText {
			return s.Text, true
		}
	}
	return "", false
}
