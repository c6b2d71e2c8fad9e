// Package cli provides the command-line interface for Sercha Assist.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/sercha-assist/internal/core/ports/driving"
	"github.com/custodia-labs/sercha-assist/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Check is a named connectivity test run by the check command.
type Check struct {
	Name string
	Run  func(ctx context.Context) error
}

// Services holds the application services the commands drive.
type Services struct {
	Settings  driving.SettingsService
	Answer    driving.AnswerService
	Documents driving.DocumentReader
	Checks    []Check

	// SetupErr explains why Answer is unavailable, if it is.
	SetupErr error

	// WatchPrompts reloads edited prompt files until ctx is done.
	// Long-running commands start it when set.
	WatchPrompts func(ctx context.Context) error

	// Close releases resources held by the services.
	Close func()
}

// Builder constructs Services from the configuration directory.
// An empty directory selects the default location.
type Builder func(configDir string) (*Services, error)

var (
	verbose   bool
	configDir string

	builder  Builder
	services *Services

	termIsTerminal = term.IsTerminal
)

var rootCmd = &cobra.Command{
	Use:   "sercha-assist",
	Short: "Answer questions from your Notion workspace",
	Long: `Sercha Assist searches a Notion workspace, reads the most relevant pages
and asks a language model to answer with citations.

Use it from the terminal, as a Slack bot or as an MCP server.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "configuration directory (default ~/.sercha-assist)")
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// Execute runs the root command. build is called lazily by commands that
// need services.
func Execute(ctx context.Context, build Builder) int {
	builder = build
	defer func() {
		if services != nil && services.Close != nil {
			services.Close()
		}
		logger.Sync()
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

// loadServices builds the services on first use.
func loadServices() (*Services, error) {
	if services != nil {
		return services, nil
	}
	if builder == nil {
		return nil, errors.New("services not configured")
	}
	s, err := builder(configDir)
	if err != nil {
		return nil, err
	}
	services = s
	return services, nil
}

// answerService returns the answer service or the reason it is unavailable.
func answerService() (driving.AnswerService, error) {
	s, err := loadServices()
	if err != nil {
		return nil, err
	}
	if s.Answer == nil {
		if s.SetupErr != nil {
			return nil, s.SetupErr
		}
		return nil, errors.New("answer service not configured")
	}
	return s.Answer, nil
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && termIsTerminal(int(f.Fd()))
}

// watchPrompts reloads prompt files in the background while ctx is live.
func watchPrompts(ctx context.Context) {
	if services == nil || services.WatchPrompts == nil {
		return
	}
	watch := services.WatchPrompts
	go func() {
		if err := watch(ctx); err != nil {
			logger.Warn("prompt reload disabled: %v", err)
		}
	}()
}
