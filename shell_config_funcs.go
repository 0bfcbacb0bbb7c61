package shellkit

import (
	"fmt"
	"io"
)

// WithPrompt sets the text shown before each input line
func WithPrompt(prompt string) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		shell.prompt = prompt
	}
}

// WithStdout redirects result and help output
func WithStdout(w io.Writer) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		shell.stdout = w
	}
}

// WithStderr redirects reported command errors
func WithStderr(w io.Writer) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		shell.stderr = w
	}
}

// WithJSONResults controls whether handler results are rendered as indented
// JSON (the default) or as plain key/value lines
func WithJSONResults(enabled bool) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		shell.jsonResults = enabled
	}
}

// WithHistoryLimit bounds the in-session history ring served by the history
// builtin
func WithHistoryLimit(limit int) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		if limit < 1 {
			*err = fmt.Errorf("history limit must be positive, got %d", limit)
			return
		}
		shell.historyLimit = limit
	}
}

// WithHistoryFile persists line-editor history to the given path across
// sessions
func WithHistoryFile(path string) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		shell.historyFile = path
	}
}

// WithSecurePrompter replaces how omitted secure flags are solicited. The
// default reads non-echoed input from the terminal and is disabled when
// stdin is not attached to one. Pass nil to disable soliciting entirely.
func WithSecurePrompter(prompter SecurePromptFunc) ConfigureShellFunc {
	return func(shell *Shell, err *error) {
		shell.securePrompt = prompter
	}
}
