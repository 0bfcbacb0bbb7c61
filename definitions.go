package shellkit

import (
	"errors"

	"github.com/napalu/shellkit/completion"
)

// Result is the optional payload a handler may return. When present it is
// handed to the renderer unchanged; the dispatch core never formats output.
type Result map[string]any

// CommandHandler is implemented once per registered command.
//
// Handle receives the validated arguments of one submitted line and is
// invoked exactly once per successful dispatch. Completions provides value
// candidates for argument positions which have no completer of their own -
// return nil when the command has nothing to offer.
type CommandHandler interface {
	Handle(args *Args) (Result, error)
	Completions(ctx completion.Context) []completion.Candidate
}

// HandlerFunc adapts a plain function to the CommandHandler interface. It
// offers no completion candidates.
type HandlerFunc func(args *Args) (Result, error)

// Handle calls f(args)
func (f HandlerFunc) Handle(args *Args) (Result, error) {
	return f(args)
}

// Completions returns no candidates
func (f HandlerFunc) Completions(_ completion.Context) []completion.Candidate {
	return nil
}

// ConfigureShellFunc is used when defining Shell options
type ConfigureShellFunc func(shell *Shell, err *error)

// SecurePromptFunc solicits the value of an omitted secure flag. It receives
// the flag's configured prompt and returns the value entered, or an error
// when no value could be obtained.
type SecurePromptFunc func(prompt string) (string, error)

// ConfigureCommandFunc is used when defining Command options
type ConfigureCommandFunc func(command *Command)

// ConfigureArgumentFunc is used when defining Argument options
type ConfigureArgumentFunc func(argument *Argument, err *error)

// Command binds a unique name to a handler and its argument grammar.
// Commands are created at registration time and immutable thereafter.
type Command struct {
	Name        string
	Description string
	Spec        ArgSpec
	Handler     CommandHandler
}

var (
	// spec errors - programmer-facing, fatal to the Register call which caused them
	ErrEmptyCommandName      = errors.New("empty command name")
	ErrNilHandler            = errors.New("nil command handler")
	ErrEmptyArgumentName     = errors.New("empty argument name")
	ErrDuplicateArgument     = errors.New("duplicate argument name")
	ErrArgumentAfterVariadic = errors.New("positional argument follows a variadic or optional argument")

	// argument errors - user-facing, recovered at the dispatch boundary
	ErrUnknownCommand   = errors.New("unknown command")
	ErrUnparsableLine   = errors.New("unparsable input line")
	ErrUnknownFlag      = errors.New("unknown flag")
	ErrMissingFlagValue = errors.New("missing value for flag")
	ErrMissingArgument  = errors.New("missing required argument")
	ErrTooManyArguments = errors.New("too many arguments")
	ErrInvalidValue     = errors.New("invalid value")

	// ErrExitRequested signals the end of the session. It is the only error
	// which terminates the loop and is never reported as a failure.
	ErrExitRequested = errors.New("exit requested")
)

const (
	FmtErrorWithString = "%w: %s"
)
