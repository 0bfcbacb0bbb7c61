package shellkit

import (
	"github.com/napalu/shellkit/completion"
	"github.com/napalu/shellkit/types"
)

// WithDescription the description will be used in usage output presented to the user
func WithDescription(description string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Description = description
	}
}

// WithArity sets how many value tokens the argument consumes. A flag with
// exactly-one arity must be supplied on the command line.
func WithArity(arity types.Arity) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Arity = arity
	}
}

// WithKind sets the value type the argument accepts. Tokens which do not
// convert to the kind are rejected during validation.
func WithKind(kind types.Kind) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Kind = kind
	}
}

// WithMetavar overrides the display label used for the argument's value in
// help output. When empty the label is derived from the argument name.
func WithMetavar(metavar string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Metavar = metavar
	}
}

// WithDefaultValue fills the argument with the given value when it was not
// supplied on the command line
func WithDefaultValue(value string) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.DefaultValue = value
	}
}

// WithCompleter binds a value completer serving candidates for the
// argument's value position
func WithCompleter(completer completion.ValueCompleter) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Completer = completer
	}
}

// SetSecure marks a flag as secure. A secure flag whose value was not
// supplied is solicited from the terminal without echoing.
func SetSecure(secure types.Secure) ConfigureArgumentFunc {
	return func(argument *Argument, err *error) {
		argument.Secure = secure
	}
}
