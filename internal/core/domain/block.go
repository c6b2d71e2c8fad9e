package domain

import "strings"

// BlockKind identifies the variant of a ContentBlock.
type BlockKind string

// Recognised block kinds. Anything the store returns outside this set
// is mapped to BlockUnsupported.
const (
	BlockParagraph    BlockKind = "paragraph"
	BlockHeading1     BlockKind = "heading_1"
	BlockHeading2     BlockKind = "heading_2"
	BlockHeading3     BlockKind = "heading_3"
	BlockBulletedItem BlockKind = "bulleted_list_item"
	BlockNumberedItem BlockKind = "numbered_list_item"
	BlockToDo         BlockKind = "to_do"
	BlockToggle       BlockKind = "toggle"
	BlockQuote        BlockKind = "quote"
	BlockCallout      BlockKind = "callout"
	BlockCode         BlockKind = "code"
	BlockTableRow     BlockKind = "table_row"
	BlockDivider      BlockKind = "divider"
	BlockUnsupported  BlockKind = "unsupported"
)

// Rendering prefixes. These are part of the output format consumed by the
// model and must stay stable.
const (
	bulletPrefix    = "• "
	checkedPrefix   = "✓ "
	uncheckedPrefix = "○ "
	quotePrefix     = "> "
	calloutPrefix   = "📌 "
	cellSeparator   = " | "
	dividerLine     = "---"
	codeFence       = "```"
)

// IsValid returns true if the kind is one of the recognised variants.
func (k BlockKind) IsValid() bool {
	switch k {
	case BlockParagraph, BlockHeading1, BlockHeading2, BlockHeading3,
		BlockBulletedItem, BlockNumberedItem, BlockToDo, BlockToggle,
		BlockQuote, BlockCallout, BlockCode, BlockTableRow, BlockDivider:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k BlockKind) String() string {
	return string(k)
}

// RichSpan is a plain text fragment of a block. Styling is discarded.
type RichSpan struct {
	PlainText string
}

// ContentBlock is one node in a document's content tree.
// Children are not embedded; they are fetched separately by ID.
type ContentBlock struct {
	// ID is the store's unique identifier for the block.
	ID string

	// Kind is the block variant.
	Kind BlockKind

	// Spans holds the block's text fragments.
	Spans []RichSpan

	// HasChildren reports whether the block has nested child blocks.
	HasChildren bool

	// Checked is the state of a to_do block.
	Checked bool

	// Language is the declared language of a code block.
	Language string

	// Cells holds the cell fragments of a table_row block.
	Cells [][]RichSpan
}

// Text concatenates the block's spans.
func (b ContentBlock) Text() string {
	return joinSpans(b.Spans)
}

// Render returns the block's own line of text, without its children.
// Unsupported kinds render as an empty string.
func (b ContentBlock) Render() string {
	switch b.Kind {
	case BlockParagraph, BlockNumberedItem, BlockToggle:
		return b.Text()
	case BlockHeading1:
		return "# " + b.Text()
	case BlockHeading2:
		return "## " + b.Text()
	case BlockHeading3:
		return "### " + b.Text()
	case BlockBulletedItem:
		return bulletPrefix + b.Text()
	case BlockToDo:
		if b.Checked {
			return checkedPrefix + b.Text()
		}
		return uncheckedPrefix + b.Text()
	case BlockQuote:
		return quotePrefix + b.Text()
	case BlockCallout:
		return calloutPrefix + b.Text()
	case BlockCode:
		return codeFence + b.Language + "\n" + b.Text() + "\n" + codeFence
	case BlockTableRow:
		cells := make([]string, len(b.Cells))
		for i, cell := range b.Cells {
			cells[i] = joinSpans(cell)
		}
		return strings.Join(cells, cellSeparator)
	case BlockDivider:
		return dividerLine
	default:
		return ""
	}
}

func joinSpans(spans []RichSpan) string {
	if len(spans) == 1 {
		return spans[0].PlainText
	}
	var sb strings.Builder
	for _, s := range spans {
		sb.WriteString(s.PlainText)
	}
	return sb.String()
}
