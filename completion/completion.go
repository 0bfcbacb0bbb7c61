package completion

import (
	"sort"
	"strings"

	"github.com/napalu/shellkit/parse"
)

// Engine is the shell-level completer. It owns a name to ArgumentCompleter
// mapping and resolves the first token (the command name) before delegating
// the remaining tokens to the matched command's completer.
//
// The engine holds a derived index over the registry. The index is rebuilt
// into a fresh structure and swapped on every Add so an in-flight Complete
// never observes a partially mutated view.
type Engine struct {
	index *index
}

type index struct {
	names      []string
	completers map[string]*ArgumentCompleter
}

// NewEngine creates an empty completion engine
func NewEngine() *Engine {
	return &Engine{
		index: &index{completers: map[string]*ArgumentCompleter{}},
	}
}

// Add registers the completer for a command name and rebuilds the index.
// Adding the same name again replaces the previous completer. Rebuilding is
// idempotent: adding identical state twice yields an identical index.
func (e *Engine) Add(name string, completer *ArgumentCompleter) {
	next := &index{
		completers: make(map[string]*ArgumentCompleter, len(e.index.completers)+1),
	}
	for k, v := range e.index.completers {
		next.completers[k] = v
	}
	next.completers[name] = completer
	next.names = make([]string, 0, len(next.completers))
	for k := range next.completers {
		next.names = append(next.names, k)
	}
	sort.Strings(next.names)

	e.index = next
}

// Complete resolves the line up to the cursor position to an ordered
// candidate sequence. A line whose first token matches no registered
// command yields an empty sequence - completion is advisory and never
// fails the input.
func (e *Engine) Complete(line string, pos int) []Candidate {
	idx := e.index
	tokens := parse.Window(line, pos)
	word := tokens[len(tokens)-1]

	if len(tokens) == 1 {
		candidates := make([]Candidate, 0, len(idx.names))
		for _, name := range idx.names {
			if strings.HasPrefix(name, word) {
				candidates = append(candidates, Candidate{Text: name})
			}
		}
		return candidates
	}

	completer, ok := idx.completers[tokens[0]]
	if !ok {
		return nil
	}
	ctx := Context{
		Line:   line,
		Pos:    pos,
		Tokens: tokens,
		Index:  len(tokens) - 1,
		Word:   word,
	}

	return completer.Complete(tokens[1:], ctx)
}
