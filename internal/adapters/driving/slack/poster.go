package slack

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	slackapi "github.com/slack-go/slack"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

// DefaultAPIBaseURL is the Slack Web API root.
const DefaultAPIBaseURL = "https://slack.com/api/"

// Poster sends messages to Slack.
type Poster struct {
	api        *slackapi.Client
	httpClient *http.Client
	botToken   string
}

// NewPoster creates a poster. baseURL defaults to DefaultAPIBaseURL.
func NewPoster(botToken, baseURL string) *Poster {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}

	httpClient := &http.Client{Timeout: 15 * time.Second}
	return &Poster{
		api: slackapi.New(botToken,
			slackapi.OptionHTTPClient(httpClient),
			slackapi.OptionAPIURL(baseURL),
		),
		httpClient: httpClient,
		botToken:   botToken,
	}
}

// PostMessage replies in a channel thread via chat.postMessage.
func (p *Poster) PostMessage(ctx context.Context, channel, threadTS, text string) error {
	if p.botToken == "" {
		return fmt.Errorf("%w: slack bot token", domain.ErrNotConfigured)
	}

	opts := []slackapi.MsgOption{slackapi.MsgOptionText(text, false)}
	if threadTS != "" {
		opts = append(opts, slackapi.MsgOptionTS(threadTS))
	}
	if _, _, err := p.api.PostMessageContext(ctx, channel, opts...); err != nil {
		return fmt.Errorf("chat.postMessage: %w", mapError(err))
	}
	return nil
}

// Respond posts text to a slash command's response_url, visible to the channel.
func (p *Poster) Respond(ctx context.Context, responseURL, text string) error {
	err := slackapi.PostWebhookCustomHTTPContext(ctx, responseURL, p.httpClient, &slackapi.WebhookMessage{
		ResponseType: slackapi.ResponseTypeInChannel,
		Text:         text,
	})
	if err != nil {
		return fmt.Errorf("respond: %w", mapError(err))
	}
	return nil
}

func mapError(err error) error {
	var rateErr *slackapi.RateLimitedError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("%w: retry after %s", domain.ErrRateLimited, rateErr.RetryAfter)
	}
	return err
}
