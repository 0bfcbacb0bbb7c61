package shellkit

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/napalu/shellkit/types"
)

// DefaultRenderer formats help and handler results for the presentation
// layer. The dispatch core itself never writes output.
type DefaultRenderer struct {
	shell *Shell
}

// NewRenderer creates a renderer bound to a shell's registry
func NewRenderer(shell *Shell) *DefaultRenderer {
	return &DefaultRenderer{shell: shell}
}

// Metavar returns the display label for an argument's value position.
// Unless overridden it is derived from the argument name, e.g. "outputFile"
// renders as <OUTPUT_FILE>.
func (r *DefaultRenderer) Metavar(a *Argument) string {
	if a.Metavar != "" {
		return a.Metavar
	}

	return "<" + strcase.ToScreamingSnake(strings.TrimLeft(a.Name, "-")) + ">"
}

// ArgumentUsage generates a usage string for a single argument including
// its value label, description and whether it is required.
func (r *DefaultRenderer) ArgumentUsage(a *Argument) string {
	var usage string
	if a.isFlag() {
		usage = a.Name
		if !a.isStandalone() {
			usage += " " + r.Metavar(a)
		}
	} else {
		usage = r.Metavar(a)
	}

	if a.Description != "" {
		usage += " \"" + a.Description + "\""
	}
	if a.DefaultValue != "" {
		usage += fmt.Sprintf(" (defaults to: %s)", a.DefaultValue)
	}

	return usage + " " + a.required()
}

// CommandUsage generates the one-line grammar of a command
func (r *DefaultRenderer) CommandUsage(c *Command) string {
	parts := []string{c.Name}
	for _, argument := range c.Spec {
		part := r.Metavar(argument)
		if argument.isFlag() {
			part = argument.Name
			if !argument.isStandalone() {
				part += " " + r.Metavar(argument)
			}
		}
		switch {
		case argument.Arity == types.ZeroOrMore:
			part = "[" + part + " ...]"
		case argument.Arity == types.Optional:
			part = "[" + part + "]"
		}
		parts = append(parts, part)
	}

	return strings.Join(parts, " ")
}

// WriteHelp prints the full command list in registration order
func (r *DefaultRenderer) WriteHelp(w io.Writer) {
	fmt.Fprintln(w, "Available commands:")
	names := r.shell.Commands()
	width := 0
	for _, name := range names {
		if len(name) > width {
			width = len(name)
		}
	}
	for _, name := range names {
		command, _ := r.shell.Lookup(name)
		fmt.Fprintf(w, "  %-*s  %s\n", width, name, command.Description)
	}
}

// WriteCommandHelp prints one command's grammar help
func (r *DefaultRenderer) WriteCommandHelp(w io.Writer, c *Command) {
	fmt.Fprintf(w, "usage: %s\n", r.CommandUsage(c))
	if c.Description != "" {
		fmt.Fprintf(w, "\n%s\n", c.Description)
	}
	if len(c.Spec) == 0 {
		return
	}
	fmt.Fprintln(w, "\narguments:")
	for _, argument := range c.Spec {
		fmt.Fprintf(w, "  %s\n", r.ArgumentUsage(argument))
	}
}

// WriteResult renders a handler's result payload, as indented JSON by
// default or as sorted key/value lines
func (r *DefaultRenderer) WriteResult(w io.Writer, result Result) {
	if r.shell.jsonResults {
		encoded, err := json.MarshalIndent(result, "", "    ")
		if err != nil {
			fmt.Fprintf(w, "%v\n", result)
			return
		}
		fmt.Fprintf(w, "%s\n", encoded)
		return
	}

	keys := make([]string, 0, len(result))
	for key := range result {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(w, "%s: %v\n", key, result[key])
	}
}
