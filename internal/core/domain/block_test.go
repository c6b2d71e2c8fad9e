package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func spans(texts ...string) []RichSpan {
	out := make([]RichSpan, len(texts))
	for i, t := range texts {
		out[i] = RichSpan{PlainText: t}
	}
	return out
}

func TestContentBlock_Render(t *testing.T) {
	tests := []struct {
		name     string
		block    ContentBlock
		expected string
	}{
		{
			name:     "paragraph is raw text",
			block:    ContentBlock{Kind: BlockParagraph, Spans: spans("Hello ", "world")},
			expected: "Hello world",
		},
		{
			name:     "heading 1",
			block:    ContentBlock{Kind: BlockHeading1, Spans: spans("Title")},
			expected: "# Title",
		},
		{
			name:     "heading 2",
			block:    ContentBlock{Kind: BlockHeading2, Spans: spans("Section")},
			expected: "## Section",
		},
		{
			name:     "heading 3",
			block:    ContentBlock{Kind: BlockHeading3, Spans: spans("Sub")},
			expected: "### Sub",
		},
		{
			name:     "bulleted item",
			block:    ContentBlock{Kind: BlockBulletedItem, Spans: spans("World")},
			expected: "• World",
		},
		{
			name:     "numbered item has no numeral",
			block:    ContentBlock{Kind: BlockNumberedItem, Spans: spans("Step")},
			expected: "Step",
		},
		{
			name:     "checked to_do",
			block:    ContentBlock{Kind: BlockToDo, Spans: spans("Done"), Checked: true},
			expected: "✓ Done",
		},
		{
			name:     "unchecked to_do",
			block:    ContentBlock{Kind: BlockToDo, Spans: spans("Open")},
			expected: "○ Open",
		},
		{
			name:     "toggle is raw text",
			block:    ContentBlock{Kind: BlockToggle, Spans: spans("More")},
			expected: "More",
		},
		{
			name:     "quote",
			block:    ContentBlock{Kind: BlockQuote, Spans: spans("Said")},
			expected: "> Said",
		},
		{
			name:     "callout",
			block:    ContentBlock{Kind: BlockCallout, Spans: spans("Note")},
			expected: "📌 Note",
		},
		{
			name:     "code is fenced with language",
			block:    ContentBlock{Kind: BlockCode, Spans: spans("fmt.Println()"), Language: "go"},
			expected: "```go\nfmt.Println()\n```",
		},
		{
			name: "table row joins cells",
			block: ContentBlock{Kind: BlockTableRow, Cells: [][]RichSpan{
				spans("a"), spans("b", "c"), nil,
			}},
			expected: "a | bc | ",
		},
		{
			name:     "divider",
			block:    ContentBlock{Kind: BlockDivider},
			expected: "---",
		},
		{
			name:     "unsupported renders empty",
			block:    ContentBlock{Kind: BlockUnsupported, Spans: spans("ignored")},
			expected: "",
		},
		{
			name:     "unknown kind renders empty",
			block:    ContentBlock{Kind: BlockKind("synced_block")},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.block.Render())
		})
	}
}

func TestBlockKind_IsValid(t *testing.T) {
	assert.True(t, BlockParagraph.IsValid())
	assert.True(t, BlockDivider.IsValid())
	assert.False(t, BlockUnsupported.IsValid())
	assert.False(t, BlockKind("column_list").IsValid())
}

func TestContentBlock_Text_NoSpans(t *testing.T) {
	assert.Equal(t, "", ContentBlock{Kind: BlockParagraph}.Text())
}
