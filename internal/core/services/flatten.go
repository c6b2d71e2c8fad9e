package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
	"github.com/custodia-labs/sercha-assist/internal/core/ports/driven"
)

// Flattener converts a document's block tree into plain text.
type Flattener struct {
	store driven.DocumentStore
}

// NewFlattener creates a flattener reading blocks from store.
func NewFlattener(store driven.DocumentStore) *Flattener {
	return &Flattener{store: store}
}

// Flatten renders the children of blockID, one line per non-empty block,
// followed by each block's own children while depth is below
// domain.MaxNestedDepth. At depth domain.MaxFlattenDepth or deeper it
// returns nothing without calling the store, which bounds the walk even
// for cyclic trees.
//
// Only the first page of each container's children is rendered.
func (f *Flattener) Flatten(ctx context.Context, blockID string, depth int) (string, error) {
	if depth >= domain.MaxFlattenDepth {
		return "", nil
	}

	blocks, err := f.store.GetChildren(ctx, blockID, domain.BlockPageSize)
	if err != nil {
		return "", fmt.Errorf("get children of %s: %w", blockID, err)
	}

	lines := make([]string, 0, len(blocks))
	for i := range blocks {
		if line := blocks[i].Render(); strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}

		if !blocks[i].HasChildren || depth >= domain.MaxNestedDepth {
			continue
		}
		nested, err := f.Flatten(ctx, blocks[i].ID, depth+1)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(nested) != "" {
			lines = append(lines, nested)
		}
	}

	return strings.Join(lines, "\n"), nil
}
