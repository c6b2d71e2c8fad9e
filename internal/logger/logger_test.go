package logger

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(t *testing.T, v bool) *bytes.Buffer {
	t.Helper()
	buf := new(bytes.Buffer)
	SetOutput(buf)
	SetVerbose(v)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return buf
}

func TestDebug_SilentWhenNotVerbose(t *testing.T) {
	buf := capture(t, false)

	Debug("hidden %d", 1)
	Info("hidden too")
	Section("Hidden")

	assert.Empty(t, buf.String())
}

func TestDebug_WrittenWhenVerbose(t *testing.T) {
	buf := capture(t, true)

	Debug("value=%d", 42)
	Section("Retrieval")

	assert.Contains(t, buf.String(), "DEBUG")
	assert.Contains(t, buf.String(), "value=42")
	assert.Contains(t, buf.String(), "=== Retrieval ===")
}

func TestWarn_AlwaysWritten(t *testing.T) {
	buf := capture(t, false)

	Warn("careful: %s", "x")
	Error("broken")

	assert.Contains(t, buf.String(), "WARN")
	assert.Contains(t, buf.String(), "careful: x")
	assert.Contains(t, buf.String(), "ERROR")
}

func TestIsVerbose(t *testing.T) {
	capture(t, true)
	assert.True(t, IsVerbose())
	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestWith_AttachesFields(t *testing.T) {
	buf := capture(t, false)

	With("request_id", "abc").Warn("doc %s failed", "p1")

	assert.Contains(t, buf.String(), "doc p1 failed")
	assert.Contains(t, buf.String(), "request_id")
	assert.Contains(t, buf.String(), "abc")
}

func TestWith_OddFields(t *testing.T) {
	buf := capture(t, false)

	With("dangling").Warn("still logs")

	assert.Contains(t, buf.String(), "still logs")
}

func TestFromContext(t *testing.T) {
	buf := capture(t, false)

	ctx := NewContext(context.Background(), With("request_id", "r-1"))
	FromContext(ctx).Warn("inside")
	FromContext(context.Background()).Warn("outside")

	assert.Contains(t, buf.String(), "r-1")
	assert.Contains(t, buf.String(), "outside")
}
