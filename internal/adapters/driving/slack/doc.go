// Package slack provides the chat transport for Sercha Assist.
//
// It serves a slash command endpoint and an Events API endpoint. Both verify
// Slack's request signature, acknowledge immediately and answer in the
// background: slash commands reply through the command's response_url,
// mentions reply in the message thread via chat.postMessage.
package slack
