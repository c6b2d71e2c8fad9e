// Package domain defines the core business entities for Sercha Assist.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - ContentBlock: One node of a document's block tree
//   - DocumentRef: A search candidate returned by the document store
//   - RenderedDocument: A flattened, truncated document ready for synthesis
//   - AppSettings: Runtime configuration for the answer pipeline
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
