package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	slackapi "github.com/slack-go/slack"

	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// handleCommand serves slash commands. The question is acknowledged at
// once and the answer is posted to the command's response_url.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	cmd, err := slackapi.SlashCommandParse(r)
	if err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	question := strings.TrimSpace(cmd.Text)
	if question == "" {
		respondEphemeral(w, UsageMessage)
		return
	}
	if cmd.ResponseURL == "" {
		http.Error(w, "missing response_url", http.StatusBadRequest)
		return
	}

	respondEphemeral(w, AckMessage)

	s.background(r, func(ctx context.Context) {
		answer := s.answerText(ctx, question)
		if err := s.poster.Respond(ctx, cmd.ResponseURL, answer); err != nil {
			logger.Error("post command answer: %v", err)
		}
	})
}

func respondEphemeral(w http.ResponseWriter, text string) {
	body, _ := json.Marshal(&slackapi.Msg{ResponseType: slackapi.ResponseTypeEphemeral, Text: text})
	writeJSON(w, body)
}
