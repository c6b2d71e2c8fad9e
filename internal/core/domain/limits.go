package domain

// Pipeline limits. These are policy values, not tuning knobs.
const (
	// MaxFlattenDepth is the depth at which flattening returns nothing.
	MaxFlattenDepth = 3

	// MaxNestedDepth bounds recursion into a block's children:
	// children are only fetched while depth is below this value.
	MaxNestedDepth = 2

	// BlockPageSize is the number of child blocks fetched per container.
	// Only the first page is rendered.
	BlockPageSize = 50

	// MaxCandidates is the number of documents rendered per query.
	MaxCandidates = 5

	// SearchOverfetch multiplies MaxCandidates when querying the store,
	// compensating for candidates dropped by the scope filter.
	SearchOverfetch = 3

	// MaxDocumentChars caps the rendered text of a single document, in characters.
	MaxDocumentChars = 3000

	// MaxAnswerTokens bounds the model's output length.
	MaxAnswerTokens = 1024
)

// SearchLimit returns the number of results requested from the store.
func SearchLimit() int {
	return MaxCandidates * SearchOverfetch
}
