// Package notion provides a DocumentStore backed by the Notion API.
//
// Pages are found with the workspace search endpoint and their content is
// read one level of block children at a time. Every request passes through
// a token-bucket RateLimiter, which also honours Retry-After on 429 responses.
package notion
