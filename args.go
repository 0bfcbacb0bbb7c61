package shellkit

import (
	"fmt"
	"time"

	"github.com/napalu/shellkit/internal/convert"
)

// Args is the validated, strongly-typed view of one submitted command line
// handed to the command's handler.
type Args struct {
	command string
	values  map[string][]string
}

func newArgs(command string) *Args {
	return &Args{
		command: command,
		values:  map[string][]string{},
	}
}

func (a *Args) add(name, value string) {
	a.values[name] = append(a.values[name], value)
}

// Command returns the name of the dispatched command
func (a *Args) Command() string {
	return a.command
}

// Has reports whether the named argument was supplied (or defaulted)
func (a *Args) Has(name string) bool {
	return len(a.values[name]) > 0
}

// Count returns how many values the named argument received
func (a *Args) Count(name string) int {
	return len(a.values[name])
}

// Get returns the first value of the named argument
func (a *Args) Get(name string) (string, bool) {
	values, ok := a.values[name]
	if !ok || len(values) == 0 {
		return "", false
	}
	return values[0], true
}

// GetOrDefault returns the first value of the named argument, or
// defaultValue when it was not supplied
func (a *Args) GetOrDefault(name string, defaultValue string) string {
	if value, ok := a.Get(name); ok {
		return value
	}
	return defaultValue
}

// GetList returns all values a variadic argument absorbed, in input order
func (a *Args) GetList(name string) []string {
	values := a.values[name]
	out := make([]string, len(values))
	copy(out, values)
	return out
}

// GetBool returns the named argument as a bool. A supplied standalone flag
// evaluates to true.
func (a *Args) GetBool(name string) (bool, error) {
	value, ok := a.Get(name)
	if !ok {
		return false, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, name)
	}
	return convert.Bool(value)
}

// GetInt returns the named argument as an int64
func (a *Args) GetInt(name string) (int64, error) {
	value, ok := a.Get(name)
	if !ok {
		return 0, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, name)
	}
	return convert.Int(value)
}

// GetFloat returns the named argument as a float64
func (a *Args) GetFloat(name string) (float64, error) {
	value, ok := a.Get(name)
	if !ok {
		return 0, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, name)
	}
	return convert.Float(value)
}

// GetDuration returns the named argument as a time.Duration
func (a *Args) GetDuration(name string) (time.Duration, error) {
	value, ok := a.Get(name)
	if !ok {
		return 0, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, name)
	}
	return convert.Duration(value)
}

// GetTime returns the named argument as a time.Time accepting most common
// date and time formats
func (a *Args) GetTime(name string) (time.Time, error) {
	value, ok := a.Get(name)
	if !ok {
		return time.Time{}, fmt.Errorf(FmtErrorWithString, ErrMissingArgument, name)
	}
	return convert.Time(value)
}
