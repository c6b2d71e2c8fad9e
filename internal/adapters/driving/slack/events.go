package slack

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"regexp"
	"strings"

	"github.com/slack-go/slack/slackevents"

	"github.com/custodia-labs/sercha-assist/internal/logger"
)

var mentionPattern = regexp.MustCompile(`<@[A-Z0-9]+(\|[^>]*)?>`)

// stripMentions removes user mention tokens from text.
func stripMentions(text string) string {
	return strings.TrimSpace(mentionPattern.ReplaceAllString(text, ""))
}

// handleEvent serves the Events API. Mentions are answered in the
// message's thread.
func (s *Server) handleEvent(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		http.Error(w, "read body", http.StatusBadRequest)
		return
	}

	// The request signature replaces the deprecated verification token.
	event, err := slackevents.ParseEvent(json.RawMessage(body), slackevents.OptionNoVerifyToken())
	if err != nil {
		if event.Type == slackevents.CallbackEvent {
			logger.Debug("ignoring event: %v", err)
			w.WriteHeader(http.StatusOK)
			return
		}
		http.Error(w, "invalid event", http.StatusBadRequest)
		return
	}

	switch event.Type {
	case slackevents.URLVerification:
		var challenge slackevents.ChallengeResponse
		if err := json.Unmarshal(body, &challenge); err != nil {
			http.Error(w, "invalid challenge", http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte(challenge.Challenge))
		return
	case slackevents.CallbackEvent:
	default:
		w.WriteHeader(http.StatusOK)
		return
	}

	// Redeliveries are acknowledged; the first delivery is already being answered.
	if r.Header.Get(HeaderRetryNum) != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	mention, ok := event.InnerEvent.Data.(*slackevents.AppMentionEvent)
	if !ok || mention.BotID != "" {
		w.WriteHeader(http.StatusOK)
		return
	}

	threadTS := mention.ThreadTimeStamp
	if threadTS == "" {
		threadTS = mention.TimeStamp
	}
	channel := mention.Channel
	question := stripMentions(mention.Text)

	w.WriteHeader(http.StatusOK)

	s.background(r, func(ctx context.Context) {
		text := UsageMessage
		if question != "" {
			text = s.answerText(ctx, question)
		}
		if err := s.poster.PostMessage(ctx, channel, threadTS, text); err != nil {
			logger.Error("post mention answer: %v", err)
		}
	})
}
