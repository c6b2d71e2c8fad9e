package cli

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// checkTimeout bounds each connectivity check.
const checkTimeout = 10 * time.Second

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#A6E3A1")).Bold(true)
	failedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F38BA8")).Bold(true)
	detailStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check configuration and connectivity",
	Long: `Validates the settings and checks that the Notion workspace and the
language model can be reached with the configured credentials.`,
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, _ []string) error {
	s, err := loadServices()
	if err != nil {
		return err
	}

	out := cmd.OutOrStderr()
	failed := false
	report := func(name string, err error) {
		if err != nil {
			cmd.Printf("%s: %s\n  %s\n", name, styled(out, failedStyle, "FAILED"), styled(out, detailStyle, err.Error()))
			failed = true
			return
		}
		cmd.Printf("%s: %s\n", name, styled(out, okStyle, "OK"))
	}

	report("Configuration", s.SetupErr)
	for _, check := range s.Checks {
		ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
		err := check.Run(ctx)
		cancel()
		report(check.Name, err)
	}

	if failed {
		return errors.New("one or more checks failed")
	}
	return nil
}

// styled renders text with style only when w is a terminal.
func styled(w io.Writer, style lipgloss.Style, text string) string {
	if !isTerminal(w) {
		return text
	}
	return style.Render(text)
}
