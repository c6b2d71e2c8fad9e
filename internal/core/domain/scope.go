package domain

import "strings"

// NormaliseID canonicalises a store identifier so that cosmetic formatting
// (hyphens, surrounding whitespace, letter case) never affects equality.
func NormaliseID(id string) string {
	id = strings.TrimSpace(id)
	id = strings.ReplaceAll(id, "-", "")
	return strings.ToLower(id)
}

// ScopeFilter decides whether a candidate belongs to the configured scope.
type ScopeFilter func(ref DocumentRef) bool

// NewScopeFilter returns a filter restricted to scopeID.
// A blank scopeID yields a filter that accepts every candidate.
func NewScopeFilter(scopeID string) ScopeFilter {
	want := NormaliseID(scopeID)
	if want == "" {
		return func(DocumentRef) bool { return true }
	}
	return func(ref DocumentRef) bool {
		return NormaliseID(ref.ParentID) == want
	}
}
