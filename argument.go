package shellkit

import (
	"fmt"
	"strings"

	"github.com/napalu/shellkit/completion"
	"github.com/napalu/shellkit/types"
)

// Argument describes one parameter of a command. A name starting with the
// flag prefix ("-") declares a flag; any other name declares a positional
// argument. A Bool-kinded flag is standalone and consumes no value token.
type Argument struct {
	Name         string
	Description  string
	Metavar      string
	Arity        types.Arity
	Kind         types.Kind
	DefaultValue string
	Secure       types.Secure
	Completer    completion.ValueCompleter
}

// NewArgument convenience initialization method to describe arguments.
// Alternatively, use NewArg to configure an Argument using option functions.
func NewArgument(name string, description string, arity types.Arity) *Argument {
	return &Argument{
		Name:        name,
		Description: description,
		Arity:       arity,
	}
}

// NewArg convenience initialization method to configure arguments. Flags
// default to optional arity, positionals to exactly-one.
func NewArg(name string, configs ...ConfigureArgumentFunc) *Argument {
	argument := &Argument{Name: name}
	if argument.isFlag() {
		argument.Arity = types.Optional
	}
	for _, config := range configs {
		config(argument, nil)
	}

	return argument
}

// Set configures the Argument instance with the provided ConfigureArgumentFunc(s),
// and returns an error if a configuration results in an error.
func (a *Argument) Set(configs ...ConfigureArgumentFunc) error {
	var err error
	for _, config := range configs {
		config(a, &err)
		if err != nil {
			return err
		}
	}
	return nil
}

// String returns a string representation of the Argument instance
func (a *Argument) String() string {
	return strings.TrimLeft(fmt.Sprintf("%s %s %s", a.Name, a.description(), a.required()), " ")
}

func (a *Argument) isFlag() bool {
	return strings.HasPrefix(a.Name, "-") && a.Name != "-"
}

// isStandalone reports whether the argument is a boolean flag taking no value token
func (a *Argument) isStandalone() bool {
	return a.isFlag() && a.Kind == types.Bool
}

func (a *Argument) required() string {
	requiredOrOptional := "optional"
	if a.Arity == types.ExactlyOne {
		requiredOrOptional = "required"
	} else if a.Arity == types.ZeroOrMore {
		requiredOrOptional = "zero or more"
	}

	return "(" + requiredOrOptional + ")"
}

func (a *Argument) description() string {
	if a.DefaultValue != "" {
		return fmt.Sprintf("\"%s\" (defaults to: %s)", a.Description, a.DefaultValue)
	}

	return fmt.Sprintf("\"%s\"", a.Description)
}

// ArgSpec is the ordered argument grammar of one command. It is pure data;
// well-formedness is checked once at registration.
type ArgSpec []*Argument

// validate rejects duplicate argument names and any positional declared
// after a variadic or optional positional.
func (s ArgSpec) validate() error {
	seen := make(map[string]bool, len(s))
	open := false
	for _, argument := range s {
		if argument == nil || argument.Name == "" {
			return ErrEmptyArgumentName
		}
		if seen[argument.Name] {
			return fmt.Errorf(FmtErrorWithString, ErrDuplicateArgument, argument.Name)
		}
		seen[argument.Name] = true
		if argument.isFlag() {
			continue
		}
		if open {
			return fmt.Errorf(FmtErrorWithString, ErrArgumentAfterVariadic, argument.Name)
		}
		if argument.Arity != types.ExactlyOne {
			open = true
		}
	}

	return nil
}

// lookup finds an argument by name, nil when undeclared
func (s ArgSpec) lookup(name string) *Argument {
	for _, argument := range s {
		if argument.Name == name {
			return argument
		}
	}
	return nil
}

// positionals returns the positional arguments in declaration order
func (s ArgSpec) positionals() []*Argument {
	out := make([]*Argument, 0, len(s))
	for _, argument := range s {
		if !argument.isFlag() {
			out = append(out, argument)
		}
	}
	return out
}
