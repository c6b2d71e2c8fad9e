package notion

import (
	"sort"
	"strings"

	"github.com/jomei/notionapi"

	"github.com/custodia-labs/sercha-assist/internal/core/domain"
)

// toDocumentRef converts a search result page.
// Properties are emitted in name order so the chosen title is stable.
func toDocumentRef(page *notionapi.Page) domain.DocumentRef {
	ref := domain.DocumentRef{
		ID:       page.ID.String(),
		URL:      page.URL,
		ParentID: parentID(page.Parent),
	}

	names := make([]string, 0, len(page.Properties))
	for name := range page.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		prop := page.Properties[name]
		if prop == nil {
			continue
		}
		ref.Properties = append(ref.Properties, domain.Property{
			Name: name,
			Type: domain.PropertyType(prop.GetType()),
			Text: propertyText(prop),
		})
	}
	return ref
}

// parentID returns the ID of the database, page or block owning a page.
// Workspace-level pages have no parent ID.
func parentID(parent notionapi.Parent) string {
	switch {
	case parent.DatabaseID != "":
		return string(parent.DatabaseID)
	case parent.PageID != "":
		return string(parent.PageID)
	case parent.BlockID != "":
		return string(parent.BlockID)
	default:
		return ""
	}
}

// propertyText reduces text-bearing properties to plain text.
func propertyText(prop notionapi.Property) string {
	switch p := prop.(type) {
	case *notionapi.TitleProperty:
		return plainText(p.Title)
	case *notionapi.RichTextProperty:
		return plainText(p.RichText)
	default:
		return ""
	}
}

func plainText(rich []notionapi.RichText) string {
	var b strings.Builder
	for _, r := range rich {
		b.WriteString(r.PlainText)
	}
	return b.String()
}

func toSpans(rich []notionapi.RichText) []domain.RichSpan {
	if len(rich) == 0 {
		return nil
	}
	spans := make([]domain.RichSpan, len(rich))
	for i, r := range rich {
		spans[i] = domain.RichSpan{PlainText: r.PlainText}
	}
	return spans
}

// toContentBlock converts a Notion block to its domain form.
// Block types without a text rendering become BlockUnsupported but keep
// their ID and child flag so nested content is still reachable.
func toContentBlock(block notionapi.Block) domain.ContentBlock {
	cb := domain.ContentBlock{
		ID:          block.GetID().String(),
		Kind:        domain.BlockUnsupported,
		HasChildren: block.GetHasChildren(),
	}

	switch b := block.(type) {
	case *notionapi.ParagraphBlock:
		cb.Kind = domain.BlockParagraph
		cb.Spans = toSpans(b.Paragraph.RichText)
	case *notionapi.Heading1Block:
		cb.Kind = domain.BlockHeading1
		cb.Spans = toSpans(b.Heading1.RichText)
	case *notionapi.Heading2Block:
		cb.Kind = domain.BlockHeading2
		cb.Spans = toSpans(b.Heading2.RichText)
	case *notionapi.Heading3Block:
		cb.Kind = domain.BlockHeading3
		cb.Spans = toSpans(b.Heading3.RichText)
	case *notionapi.BulletedListItemBlock:
		cb.Kind = domain.BlockBulletedItem
		cb.Spans = toSpans(b.BulletedListItem.RichText)
	case *notionapi.NumberedListItemBlock:
		cb.Kind = domain.BlockNumberedItem
		cb.Spans = toSpans(b.NumberedListItem.RichText)
	case *notionapi.ToDoBlock:
		cb.Kind = domain.BlockToDo
		cb.Spans = toSpans(b.ToDo.RichText)
		cb.Checked = b.ToDo.Checked
	case *notionapi.ToggleBlock:
		cb.Kind = domain.BlockToggle
		cb.Spans = toSpans(b.Toggle.RichText)
	case *notionapi.QuoteBlock:
		cb.Kind = domain.BlockQuote
		cb.Spans = toSpans(b.Quote.RichText)
	case *notionapi.CalloutBlock:
		cb.Kind = domain.BlockCallout
		cb.Spans = toSpans(b.Callout.RichText)
	case *notionapi.CodeBlock:
		cb.Kind = domain.BlockCode
		cb.Spans = toSpans(b.Code.RichText)
		cb.Language = b.Code.Language
	case *notionapi.TableRowBlock:
		cb.Kind = domain.BlockTableRow
		cb.Cells = make([][]domain.RichSpan, len(b.TableRow.Cells))
		for i, cell := range b.TableRow.Cells {
			cb.Cells[i] = toSpans(cell)
		}
	case *notionapi.DividerBlock:
		cb.Kind = domain.BlockDivider
	}
	return cb
}
