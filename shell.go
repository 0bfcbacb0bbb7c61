// Copyright 2024-2025, Florent Heyworth. All rights reserved.
// Use of this source code is governed by the MIT licensee
// which can be found in the LICENSE file.

// Package shellkit provides an embeddable engine for interactive,
// line-oriented command shells.
//
// A Shell owns a registry of named commands, each bound to a handler and an
// argument grammar. Submitted lines are tokenized, validated against the
// grammar and dispatched to the matching handler; while typing, the
// completion engine resolves the partial line to command name, flag name or
// value candidates. The built-in help and exit commands are registered
// through the same path as user commands.
package shellkit

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ef-ds/deque"
	"github.com/peterh/liner"
	orderedmap "github.com/wk8/go-ordered-map"

	"github.com/napalu/shellkit/completion"
	"github.com/napalu/shellkit/parse"
	"github.com/napalu/shellkit/types"
	"github.com/napalu/shellkit/util"
)

const defaultHistoryLimit = 100

// Shell is the command registry and dispatcher of one interactive session.
// Registration is expected to happen during setup, before the loop starts
// serving completion queries; each submitted line is then processed
// independently and synchronously.
type Shell struct {
	registry     *orderedmap.OrderedMap
	engine       *completion.Engine
	renderer     *DefaultRenderer
	history      *deque.Deque
	historyLimit int
	historyFile  string
	prompt       string
	stdout       io.Writer
	stderr       io.Writer
	jsonResults  bool
	securePrompt SecurePromptFunc
}

// NewShell creates a shell configured by the given option functions and
// registers the built-in commands. Option errors and malformed built-in
// registration abort construction.
func NewShell(configs ...ConfigureShellFunc) (*Shell, error) {
	s := &Shell{
		registry:     orderedmap.New(),
		engine:       completion.NewEngine(),
		history:      deque.New(),
		historyLimit: defaultHistoryLimit,
		prompt:       "> ",
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		jsonResults:  true,
	}
	s.renderer = NewRenderer(s)
	// secure flags can only be solicited with a terminal attached
	if util.IsInteractive(os.Stdin) {
		s.securePrompt = util.GetSecureString
	}

	var err error
	for _, config := range configs {
		config(s, &err)
		if err != nil {
			return nil, err
		}
	}
	if err := s.registerBuiltins(); err != nil {
		return nil, err
	}

	return s, nil
}

// Register inserts or overwrites the named command and rebuilds the
// completion index. Registering a name twice is last-write-wins. A
// malformed argument grammar fails the call and leaves the registry
// untouched.
func (s *Shell) Register(name string, handler CommandHandler, configs ...ConfigureCommandFunc) error {
	if name == "" {
		return ErrEmptyCommandName
	}
	if handler == nil {
		return fmt.Errorf(FmtErrorWithString, ErrNilHandler, name)
	}

	command := &Command{Name: name, Handler: handler}
	for _, config := range configs {
		config(command)
	}
	if err := command.Spec.validate(); err != nil {
		return err
	}

	s.registry.Set(name, command)
	s.engine.Add(name, s.buildCompleter(command))

	return nil
}

// Lookup returns the registered command for a name
func (s *Shell) Lookup(name string) (*Command, bool) {
	value, ok := s.registry.Get(name)
	if !ok {
		return nil, false
	}
	return value.(*Command), true
}

// Commands returns the registered command names in registration order
func (s *Shell) Commands() []string {
	names := make([]string, 0, s.registry.Len())
	for pair := s.registry.Oldest(); pair != nil; pair = pair.Next() {
		names = append(names, pair.Key.(string))
	}
	return names
}

// Complete resolves the line up to the cursor position to an ordered list
// of candidate strings. Completion is a read-only query against the current
// registry state and never fails.
func (s *Shell) Complete(line string, pos int) []string {
	return completion.Strings(s.engine.Complete(line, pos))
}

// Dispatch processes one submitted line: tokenize, validate against the
// matched command's grammar, then invoke the handler exactly once. Blank
// input is a no-op. All returned errors except ErrExitRequested are
// recoverable; the session loop reports them and continues.
func (s *Shell) Dispatch(line string) (Result, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil, nil
	}

	tokens, err := parse.Split(text)
	if err != nil {
		return nil, fmt.Errorf(FmtErrorWithString, ErrUnparsableLine, err.Error())
	}
	if len(tokens) == 0 {
		return nil, nil
	}

	command, ok := s.Lookup(tokens[0])
	if !ok {
		return nil, fmt.Errorf(FmtErrorWithString, ErrUnknownCommand, tokens[0])
	}

	args, err := s.evalArgs(command, tokens[1:])
	if err != nil {
		return nil, err
	}

	result, err := command.Handler.Handle(args)
	if err != nil {
		if errors.Is(err, ErrExitRequested) {
			return nil, err
		}
		return nil, fmt.Errorf("%s: %w", command.Name, err)
	}

	return result, nil
}

// Run drives the interactive session until exit is dispatched, the input
// source is exhausted, or the line editor is interrupted. Results are
// rendered to stdout, recovered errors reported to stderr.
func (s *Shell) Run() error {
	if !util.IsInteractive(os.Stdin) {
		return s.runPlain(os.Stdin)
	}

	editor := liner.NewLiner()
	defer editor.Close()
	editor.SetCtrlCAborts(true)
	editor.SetWordCompleter(s.wordCompleter)
	s.loadHistory(editor)

	for {
		text, err := editor.Prompt(s.prompt)
		if err != nil {
			// Ctrl-C and EOF are equivalent to dispatching exit
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return s.saveHistory(editor)
			}
			return err
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		editor.AppendHistory(text)

		if done := s.handleLine(text); done {
			return s.saveHistory(editor)
		}
	}
}

// runPlain serves line-at-a-time input without a terminal attached
func (s *Shell) runPlain(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if strings.TrimSpace(scanner.Text()) == "" {
			continue
		}
		if done := s.handleLine(scanner.Text()); done {
			return nil
		}
	}
	return scanner.Err()
}

// handleLine dispatches one line and reports the outcome, returning true
// when the session should end. A failing command never ends the session.
func (s *Shell) handleLine(text string) bool {
	s.remember(text)
	result, err := s.Dispatch(text)
	if err != nil {
		if errors.Is(err, ErrExitRequested) {
			return true
		}
		fmt.Fprintf(s.stderr, "command error: %v\n", err)
		return false
	}
	if result != nil {
		s.renderer.WriteResult(s.stdout, result)
	}
	return false
}

func (s *Shell) registerBuiltins() error {
	if err := s.Register("help", &helpAction{shell: s},
		WithHelp("Print command help"),
		WithArguments(
			NewArg("command",
				WithDescription("command name"),
				WithArity(types.Optional)),
		)); err != nil {
		return err
	}
	if err := s.Register("exit", &exitAction{},
		WithHelp("Exit shell")); err != nil {
		return err
	}

	return s.Register("history", &historyAction{shell: s},
		WithHelp("Show the lines submitted this session"))
}

//
// Builtin handlers
//

type helpAction struct {
	shell *Shell
}

func (h *helpAction) Handle(args *Args) (Result, error) {
	if name, ok := args.Get("command"); ok {
		command, found := h.shell.Lookup(name)
		if !found {
			return nil, fmt.Errorf(FmtErrorWithString, ErrUnknownCommand, name)
		}
		h.shell.renderer.WriteCommandHelp(h.shell.stdout, command)
		return nil, nil
	}

	h.shell.renderer.WriteHelp(h.shell.stdout)
	return nil, nil
}

func (h *helpAction) Completions(ctx completion.Context) []completion.Candidate {
	return completion.Words(h.shell.Commands()...).Complete(ctx)
}

type exitAction struct{}

func (e *exitAction) Handle(_ *Args) (Result, error) {
	return nil, ErrExitRequested
}

func (e *exitAction) Completions(_ completion.Context) []completion.Candidate {
	return nil
}

type historyAction struct {
	shell *Shell
}

func (h *historyAction) Handle(_ *Args) (Result, error) {
	return Result{"history": h.shell.historySnapshot()}, nil
}

func (h *historyAction) Completions(_ completion.Context) []completion.Candidate {
	return nil
}
