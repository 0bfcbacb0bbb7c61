// Package completion resolves a partially typed command line to the set of
// valid next-token suggestions: command names, flag names, or flag and
// positional values. Candidate resolution is advisory and never fails -
// anything unresolvable degrades to an empty candidate list.
package completion

import (
	"sort"
	"strings"

	"github.com/napalu/shellkit/types"
)

// Candidate is a single suggested completion for the token being edited
type Candidate struct {
	Text        string
	Description string
}

// Context is an ephemeral snapshot of one completion request. It is created
// per keystroke and never persisted.
type Context struct {
	// Line is the full input buffer
	Line string
	// Pos is the cursor position within Line
	Pos int
	// Tokens is the tokenization of Line up to Pos; the last element is the token being edited
	Tokens []string
	// Index is the index of the token being edited
	Index int
	// Word is the (possibly empty) partially typed token under the cursor
	Word string
}

// ValueCompleter provides completion candidates for a single argument's
// value position. Implementations are supplied by the command author.
type ValueCompleter interface {
	Complete(ctx Context) []Candidate
}

// ValueCompleterFunc adapts a plain function to the ValueCompleter interface
type ValueCompleterFunc func(ctx Context) []Candidate

// Complete calls f(ctx)
func (f ValueCompleterFunc) Complete(ctx Context) []Candidate {
	return f(ctx)
}

// Words returns a ValueCompleter offering a fixed word list. Words matching
// the partially typed token are returned in lexical order.
func Words(words ...string) ValueCompleter {
	sorted := make([]string, len(words))
	copy(sorted, words)
	sort.Strings(sorted)

	return ValueCompleterFunc(func(ctx Context) []Candidate {
		candidates := make([]Candidate, 0, len(sorted))
		for _, word := range sorted {
			if strings.HasPrefix(word, ctx.Word) {
				candidates = append(candidates, Candidate{Text: word})
			}
		}
		return candidates
	})
}

// Arg describes one argument of a command's grammar as seen by completion.
// It is a derived view built at registration time from the command's
// argument spec - the registry remains the source of truth.
type Arg struct {
	Name       string
	Flag       bool // Name carries the flag prefix
	Standalone bool // flag which consumes no value token
	Arity      types.Arity
	Completer  ValueCompleter
}

// Strings reduces candidates to their text, preserving order.
func Strings(candidates []Candidate) []string {
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.Text
	}
	return out
}
