package driving

import (
	"context"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

// AnswerService answers natural-language questions from the document store.
type AnswerService interface {
	// Answer returns a synthesized, cited answer or a sentinel message.
	// Expected conditions (nothing found, unusable model output) are not
	// errors. Store and model faults are returned for the caller to convert
	// into domain.GenericFailureMessage.
	Answer(ctx context.Context, query string) (string, error)
}

// SettingsService exposes the effective application settings.
type SettingsService interface {
	// Get returns settings merged from defaults, the config file and the environment.
	Get() (domain.AppSettings, error)

	// Set persists a single setting to the config file.
	Set(key string, value any) error
}

// DocumentReader renders a single document as plain text.
type DocumentReader interface {
	// Read flattens the content of the document with the given ID. Documents
	// that are unknown or outside the configured scope yield domain.ErrNotFound.
	Read(ctx context.Context, documentID string) (string, error)
}
