package shellkit

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napalu/shellkit/types"
)

func TestRendererMetavar(t *testing.T) {
	shell, _, _ := newTestShell(t)

	assert.Equal(t, "<OUTPUT_FILE>", shell.renderer.Metavar(NewArg("outputFile")))
	assert.Equal(t, "<DRY_RUN>", shell.renderer.Metavar(NewArg("--dry-run")))
	assert.Equal(t, "<PATH>", shell.renderer.Metavar(NewArg("file", WithMetavar("<PATH>"))))
}

func TestRendererCommandUsage(t *testing.T) {
	shell, _, _ := newTestShell(t)
	require.NoError(t, shell.Register("copy", &recordingHandler{},
		WithArguments(
			NewArg("source"),
			NewArg("targets", WithArity(types.ZeroOrMore)),
			NewArg("--force", WithKind(types.Bool)),
			NewArg("--mode"),
		)))

	command, ok := shell.Lookup("copy")
	require.True(t, ok)
	usage := shell.renderer.CommandUsage(command)
	assert.Equal(t, "copy <SOURCE> [<TARGETS> ...] [--force] [--mode <MODE>]", usage)
}

func TestRendererArgumentUsage(t *testing.T) {
	shell, _, _ := newTestShell(t)

	usage := shell.renderer.ArgumentUsage(NewArg("name", WithDescription("who to greet")))
	assert.Equal(t, `<NAME> "who to greet" (required)`, usage)

	usage = shell.renderer.ArgumentUsage(NewArg("--format", WithDefaultValue("json")))
	assert.Equal(t, "--format <FORMAT> (defaults to: json) (optional)", usage)

	usage = shell.renderer.ArgumentUsage(NewArg("--force", WithKind(types.Bool), WithDescription("overwrite")))
	assert.Equal(t, `--force "overwrite" (optional)`, usage)
}

func TestRendererResultAsJSON(t *testing.T) {
	shell, _, _ := newTestShell(t)
	var out bytes.Buffer

	shell.renderer.WriteResult(&out, Result{"state": "ok", "count": 2})
	assert.Contains(t, out.String(), "\"count\": 2")
	assert.Contains(t, out.String(), "\"state\": \"ok\"")
}

func TestRendererResultAsPlainText(t *testing.T) {
	var stdout bytes.Buffer
	shell, err := NewShell(WithStdout(&stdout), WithJSONResults(false))
	require.NoError(t, err)
	var out bytes.Buffer

	shell.renderer.WriteResult(&out, Result{"zeta": 1, "alpha": "x"})
	assert.Equal(t, "alpha: x\nzeta: 1\n", out.String())
}
