// Package driving defines what the CLI, the Slack bot and the MCP server
// can ask of the core: an answer for a question, the effective settings,
// and the flattened text of a single document.
package driving
