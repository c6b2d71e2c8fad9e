package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

var (
	askRaw  bool
	askJSON bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a question",
	Long: `Searches the Notion workspace for pages relevant to the question, reads
up to five of them and asks the configured model for a cited answer.

The answer is rendered as Markdown when printing to a terminal.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().BoolVar(&askRaw, "raw", false, "print the answer without rendering")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output question and answer as JSON")
	rootCmd.AddCommand(askCmd)
}

// askOutput is the --json output shape.
type askOutput struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func runAsk(cmd *cobra.Command, args []string) error {
	question := strings.TrimSpace(strings.Join(args, " "))

	svc, err := answerService()
	if err != nil {
		return err
	}

	answer, err := svc.Answer(cmd.Context(), question)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return err
		}
		logger.Error("ask failed: %v", err)
		return errors.New(domain.GenericFailureMessage)
	}

	out := cmd.OutOrStdout()
	if askJSON {
		data, err := json.MarshalIndent(askOutput{Question: question, Answer: answer}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal answer: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	if askRaw || !isTerminal(out) {
		fmt.Fprintln(out, answer)
		return nil
	}

	fmt.Fprint(out, renderAnswer(answer))
	return nil
}

// renderAnswer renders an answer as terminal Markdown, falling back to
// the plain text if rendering fails.
func renderAnswer(answer string) string {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return answer + "\n"
	}
	out, err := r.Render(toMarkdown(answer))
	if err != nil {
		return answer + "\n"
	}
	return out
}

var (
	slackLinkPattern = regexp.MustCompile(`<(https?://[^|>]+)\|([^>]+)>`)
	slackBoldPattern = regexp.MustCompile(`(^|[\s(])\*([^*\n]+)\*`)
)

// toMarkdown converts Slack mrkdwn links and bold text to Markdown.
func toMarkdown(mrkdwn string) string {
	md := slackLinkPattern.ReplaceAllString(mrkdwn, "[$2]($1)")
	return slackBoldPattern.ReplaceAllString(md, "$1**$2**")
}
