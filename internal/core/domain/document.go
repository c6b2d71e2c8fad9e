package domain

import "strings"

// DefaultTitle is used when a document declares no usable title property.
const DefaultTitle = "Untitled"

// PropertyType identifies the type of a document property.
type PropertyType string

// PropertyTitle is the property type holding a page's title.
const PropertyTitle PropertyType = "title"

// Property is a named, typed document property reduced to plain text.
type Property struct {
	Name string
	Type PropertyType
	Text string
}

// DocumentRef is a candidate returned by a document store search.
// It is consumed immediately by the selector and never cached.
type DocumentRef struct {
	// ID is the store identifier of the document; also the root block ID.
	ID string

	// URL is the canonical link to the document.
	URL string

	// ParentID is the identifier of the collection that owns the document.
	// Used for scope filtering. Empty when the document has no such parent.
	ParentID string

	// Properties are the document's declared properties, in store order.
	Properties []Property
}

// Title returns the text of the first title-typed property,
// or DefaultTitle if there is none or it is blank.
func (r DocumentRef) Title() string {
	for _, p := range r.Properties {
		if p.Type != PropertyTitle {
			continue
		}
		if t := strings.TrimSpace(p.Text); t != "" {
			return t
		}
		break
	}
	return DefaultTitle
}

// RenderedDocument is a flattened, truncated document.
// Text is never empty after trimming.
type RenderedDocument struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	URL   string `json:"url"`
	Text  string `json:"text"`
}
