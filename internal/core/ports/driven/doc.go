// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - DocumentStore: Searches the document store and fetches block trees
//   - LLMService: Single-shot language model completion
//   - ConfigStore: Application configuration
//
// # Optional Interfaces
//
//   - PromptStore: User-customisable prompt templates. Without it, the
//     embedded default prompts are used.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
