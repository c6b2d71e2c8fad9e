// Sercha Assist answers questions from a Notion workspace.
//
// Usage:
//
//	sercha-assist ask "how do I request leave?"
//	sercha-assist serve          # Slack bot
//	sercha-assist mcp serve      # MCP server (stdio)
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/custodia-labs/sercha-assist/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	cli.SetVersion(version)
	code := cli.Execute(ctx, build)

	stop()
	os.Exit(code)
}
