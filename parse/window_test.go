package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindow(t *testing.T) {
	tests := []struct {
		name string
		line string
		pos  int
		want []string
	}{
		{name: "empty line", line: "", pos: 0, want: []string{""}},
		{name: "partial command", line: "gre", pos: 3, want: []string{"gre"}},
		{name: "command with separator", line: "greet ", pos: 6, want: []string{"greet", ""}},
		{name: "partial value", line: "greet al", pos: 8, want: []string{"greet", "al"}},
		{name: "cursor mid line", line: "greet alice", pos: 5, want: []string{"greet"}},
		{name: "cursor on separator", line: "greet alice", pos: 6, want: []string{"greet", ""}},
		{name: "pos beyond line is clamped", line: "greet", pos: 42, want: []string{"greet"}},
		{name: "negative pos is clamped", line: "greet", pos: -1, want: []string{""}},
		{name: "multiple separators", line: "copy  a.txt  ", pos: 13, want: []string{"copy", "a.txt", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Window(tt.line, tt.pos))
		})
	}
}

func TestStateCursor(t *testing.T) {
	state := NewState([]string{"--from", "a.txt", "b.txt"})

	assert.Equal(t, 3, state.Len())
	assert.Equal(t, -1, state.Pos())
	assert.Equal(t, "", state.CurrentArg())
	assert.Equal(t, "--from", state.Peek())

	assert.True(t, state.Advance())
	assert.Equal(t, "--from", state.CurrentArg())
	assert.Equal(t, "a.txt", state.Peek())

	at, err := state.ArgAt(2)
	assert.NoError(t, err)
	assert.Equal(t, "b.txt", at)

	_, err = state.ArgAt(3)
	assert.ErrorIs(t, err, ErrInvalidPosition)

	assert.True(t, state.Advance())
	assert.True(t, state.Advance())
	assert.False(t, state.Advance())
	assert.Equal(t, "b.txt", state.CurrentArg())
	assert.Equal(t, "", state.Peek())
}
