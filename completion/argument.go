package completion

import (
	"sort"
	"strings"

	"github.com/napalu/shellkit/types"
)

// ArgumentCompleter resolves which argument of a single command's grammar is
// being typed and delegates to the matching value completer. The fallback
// completer, when set, serves value positions whose argument has no
// completer of its own.
type ArgumentCompleter struct {
	flags      map[string]Arg
	positional []Arg
	fallback   ValueCompleter
}

// NewArgumentCompleter builds a position-aware completer for one command
// from its argument grammar and an optional fallback value completer.
func NewArgumentCompleter(args []Arg, fallback ValueCompleter) *ArgumentCompleter {
	c := &ArgumentCompleter{
		flags:    make(map[string]Arg, len(args)),
		fallback: fallback,
	}
	for _, arg := range args {
		if arg.Flag {
			c.flags[arg.Name] = arg
		} else {
			c.positional = append(c.positional, arg)
		}
	}

	return c
}

// Complete maps the remaining tokens after the command name to candidates
// for the token being edited. The last element of remaining is the
// (possibly empty) token under the cursor.
func (c *ArgumentCompleter) Complete(remaining []string, ctx Context) []Candidate {
	if len(remaining) == 0 {
		return nil
	}
	word := remaining[len(remaining)-1]
	prior := remaining[:len(remaining)-1]

	seen := make(map[string]bool, len(prior))
	positionals := 0
	pendingFlag := ""
	for i := 0; i < len(prior); i++ {
		token := prior[i]
		if !isFlagToken(token) {
			positionals++
			continue
		}
		seen[token] = true
		if arg, ok := c.flags[token]; ok && !arg.Standalone {
			if i == len(prior)-1 {
				pendingFlag = token
			} else {
				i++ // the next token is the flag's value
			}
		}
	}

	if pendingFlag != "" {
		return c.values(c.flags[pendingFlag], ctx)
	}
	if isFlagToken(word) {
		return c.flagNames(seen, word)
	}
	arg, ok := c.positionalAt(positionals)
	if !ok {
		return nil
	}

	return c.values(arg, ctx)
}

// positionalAt maps a positional slot index to an argument by grammar
// order. Fixed-arity arguments consume one slot each; a trailing variadic
// argument absorbs every remaining slot. Slots past the grammar resolve to
// nothing - the line is already invalid and completion degrades gracefully.
func (c *ArgumentCompleter) positionalAt(slot int) (Arg, bool) {
	if slot < len(c.positional) {
		return c.positional[slot], true
	}
	if last := len(c.positional) - 1; last >= 0 && c.positional[last].Arity == types.ZeroOrMore {
		return c.positional[last], true
	}

	return Arg{}, false
}

func (c *ArgumentCompleter) values(arg Arg, ctx Context) []Candidate {
	completer := arg.Completer
	if completer == nil {
		completer = c.fallback
	}
	if completer == nil {
		return nil
	}

	return narrow(completer.Complete(ctx), ctx.Word)
}

func (c *ArgumentCompleter) flagNames(seen map[string]bool, word string) []Candidate {
	candidates := make([]Candidate, 0, len(c.flags))
	for name := range c.flags {
		if seen[name] || !strings.HasPrefix(name, word) {
			continue
		}
		candidates = append(candidates, Candidate{Text: name})
	}
	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].Text < candidates[j].Text
	})

	return candidates
}

// narrow keeps candidates matching the partial token and fixes the order so
// identical requests yield identical sequences.
func narrow(candidates []Candidate, word string) []Candidate {
	matched := make([]Candidate, 0, len(candidates))
	for _, candidate := range candidates {
		if strings.HasPrefix(candidate.Text, word) {
			matched = append(matched, candidate)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Text < matched[j].Text
	})

	return matched
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "-") && token != "-"
}
