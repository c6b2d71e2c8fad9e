package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-assist/internal/adapters/driving/slack"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Slack bot",
	Long: `Start the HTTP server for the Slack integration.

Endpoints:
  POST /slack/commands  slash command (e.g. /ask)
  POST /slack/events    Events API (app mentions)
  GET  /healthz         liveness check

Requires slack.signing_secret (SLACK_SIGNING_SECRET). Replying to mentions
also requires slack.bot_token (SLACK_BOT_TOKEN).`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntP("port", "p", 0, "HTTP port (default from settings)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}

	svc, err := answerService()
	if err != nil {
		return err
	}
	if services.Settings == nil {
		return errors.New("settings service not configured")
	}
	settings, err := services.Settings.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	if port <= 0 {
		port = settings.Server.Port
	}

	server, err := slack.NewServer(slack.Config{
		SigningSecret: settings.Slack.SigningSecret,
		BotToken:      settings.Slack.BotToken,
	}, svc)
	if err != nil {
		return err
	}

	watchPrompts(cmd.Context())

	addr := fmt.Sprintf(":%d", port)
	cmd.Printf("Slack bot listening on http://localhost%s\n", addr)
	return server.ListenAndServe(cmd.Context(), addr)
}
