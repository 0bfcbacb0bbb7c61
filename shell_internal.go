package shellkit

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"

	"github.com/napalu/shellkit/completion"
	"github.com/napalu/shellkit/internal/convert"
	"github.com/napalu/shellkit/parse"
	"github.com/napalu/shellkit/types"
)

// evalArgs validates the tokens following the command name against the
// command's grammar and produces the typed argument view. Flags may appear
// anywhere; positionals fill declared slots in order, a trailing variadic
// absorbing the rest.
func (s *Shell) evalArgs(command *Command, tokens []string) (*Args, error) {
	args := newArgs(command.Name)
	positionals := command.Spec.positionals()
	slot := 0

	state := parse.NewState(tokens)
	for state.Advance() {
		token := state.CurrentArg()
		if isFlagToken(token) {
			argument := command.Spec.lookup(token)
			if argument == nil {
				return nil, fmt.Errorf(FmtErrorWithString, ErrUnknownFlag, token)
			}
			if argument.isStandalone() {
				args.add(argument.Name, "true")
				continue
			}
			if !state.Advance() {
				return nil, fmt.Errorf(FmtErrorWithString, ErrMissingFlagValue, token)
			}
			if err := s.addChecked(args, argument, state.CurrentArg()); err != nil {
				return nil, err
			}
			continue
		}

		var argument *Argument
		switch {
		case slot < len(positionals):
			argument = positionals[slot]
		case len(positionals) > 0 && positionals[len(positionals)-1].Arity == types.ZeroOrMore:
			argument = positionals[len(positionals)-1]
		default:
			return nil, fmt.Errorf(FmtErrorWithString, ErrTooManyArguments, token)
		}
		if err := s.addChecked(args, argument, token); err != nil {
			return nil, err
		}
		if argument.Arity != types.ZeroOrMore {
			slot++
		}
	}

	return args, s.fillOmitted(command, args)
}

func (s *Shell) addChecked(args *Args, argument *Argument, token string) error {
	if err := convert.Check(token, argument.Kind); err != nil {
		return fmt.Errorf(FmtErrorWithString, ErrInvalidValue, err.Error())
	}
	args.add(argument.Name, token)
	return nil
}

// fillOmitted applies default values, solicits secure flags interactively
// and rejects missing required arguments.
func (s *Shell) fillOmitted(command *Command, args *Args) error {
	for _, argument := range command.Spec {
		if args.Has(argument.Name) {
			continue
		}
		if argument.DefaultValue != "" {
			args.add(argument.Name, argument.DefaultValue)
			continue
		}
		if argument.Secure.IsSecure && s.securePrompt != nil {
			prompt := argument.Secure.Prompt
			if prompt == "" {
				prompt = "password: "
			}
			value, err := s.securePrompt(prompt)
			if err != nil {
				return fmt.Errorf(FmtErrorWithString, ErrMissingArgument, argument.Name)
			}
			args.add(argument.Name, value)
			continue
		}
		if argument.Arity == types.ExactlyOne {
			return fmt.Errorf(FmtErrorWithString, ErrMissingArgument, argument.Name)
		}
	}

	return nil
}

// buildCompleter derives the completion view of one command's grammar. The
// handler itself serves as the fallback value completer for arguments
// without one of their own.
func (s *Shell) buildCompleter(command *Command) *completion.ArgumentCompleter {
	entries := make([]completion.Arg, 0, len(command.Spec))
	for _, argument := range command.Spec {
		entries = append(entries, completion.Arg{
			Name:       argument.Name,
			Flag:       argument.isFlag(),
			Standalone: argument.isStandalone(),
			Arity:      argument.Arity,
			Completer:  argument.Completer,
		})
	}

	return completion.NewArgumentCompleter(entries, handlerValueCompleter{handler: command.Handler})
}

// handlerValueCompleter proxies a CommandHandler as a ValueCompleter
type handlerValueCompleter struct {
	handler CommandHandler
}

func (p handlerValueCompleter) Complete(ctx completion.Context) []completion.Candidate {
	return p.handler.Completions(ctx)
}

// wordCompleter bridges the line editor's completion request to the engine.
// The editor replaces the word under the cursor with the picked candidate.
// The editor reports the cursor as a rune index; slicing needs the byte
// offset.
func (s *Shell) wordCompleter(line string, pos int) (string, []string, string) {
	runes := []rune(line)
	if pos < 0 {
		pos = 0
	}
	if pos > len(runes) {
		pos = len(runes)
	}
	bytePos := len(string(runes[:pos]))

	tokens := parse.Window(line, bytePos)
	word := tokens[len(tokens)-1]

	return line[:bytePos-len(word)], s.Complete(line, bytePos), line[bytePos:]
}

//
// Session history
//

func (s *Shell) remember(line string) {
	s.history.PushBack(line)
	for s.history.Len() > s.historyLimit {
		s.history.PopFront()
	}
}

// historySnapshot lists the remembered lines oldest first
func (s *Shell) historySnapshot() []string {
	count := s.history.Len()
	out := make([]string, 0, count)
	for i := 0; i < count; i++ {
		value, _ := s.history.PopFront()
		out = append(out, value.(string))
		s.history.PushBack(value)
	}

	return out
}

func (s *Shell) loadHistory(editor *liner.State) {
	if s.historyFile == "" {
		return
	}
	f, err := os.Open(s.historyFile)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = editor.ReadHistory(f)
}

func (s *Shell) saveHistory(editor *liner.State) error {
	if s.historyFile == "" {
		return nil
	}
	f, err := os.Create(s.historyFile)
	if err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	defer f.Close()
	if _, err := editor.WriteHistory(f); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}

	return nil
}

func isFlagToken(token string) bool {
	return strings.HasPrefix(token, "-") && token != "-"
}
