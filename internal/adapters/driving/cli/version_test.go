package cli

import (
	"bytes"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/sercha-assist/internal/adapters/driving/mcp"
)

func runVersion(t *testing.T, v string, args ...string) string {
	t.Helper()

	original := version
	version = v
	defer func() {
		version = original
		versionShort = false
		rootCmd.SetArgs(nil)
	}()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs(append([]string{"version"}, args...))

	require.NoError(t, rootCmd.Execute())
	return buf.String()
}

func TestVersionCmd_Full(t *testing.T) {
	out := runVersion(t, "1.2.0")

	assert.Contains(t, out, "sercha-assist version 1.2.0")
	assert.Contains(t, out, "mcp server "+mcp.Version)
	assert.Contains(t, out, runtime.Version())
}

func TestVersionCmd_Short(t *testing.T) {
	out := runVersion(t, "1.2.0", "--short")

	assert.Equal(t, "1.2.0\n", out)
}

func TestVersionCmd_DevByDefault(t *testing.T) {
	assert.Equal(t, "dev", version)
}
