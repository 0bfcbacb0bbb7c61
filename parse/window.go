package parse

import (
	"strings"
	"unicode"
)

// Window slices the input line up to the cursor position into whitespace
// tokens for completion purposes. The last element is always the token
// currently being edited - it is the empty string when the cursor follows a
// separator (or the line is empty), meaning a fresh token is being started.
//
// Completion tokenization is deliberately simpler than Split: a half-typed
// line may contain unbalanced quotes and completion must still answer.
func Window(line string, pos int) []string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(line) {
		pos = len(line)
	}
	head := line[:pos]
	tokens := strings.Fields(head)
	if len(head) == 0 || unicode.IsSpace(rune(head[len(head)-1])) {
		tokens = append(tokens, "")
	}

	return tokens
}
