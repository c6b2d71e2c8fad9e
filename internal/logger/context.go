package logger

import "context"

type entryKey struct{}

// NewContext returns a copy of ctx carrying e.
func NewContext(ctx context.Context, e Entry) context.Context {
	return context.WithValue(ctx, entryKey{}, e)
}

// FromContext returns the Entry stored in ctx, or an Entry without fields.
func FromContext(ctx context.Context) Entry {
	if e, ok := ctx.Value(entryKey{}).(Entry); ok {
		return e
	}
	return Entry{}
}
