package parse

import "errors"

// State represents a cursor over the token list of a submitted command line.
// The validator advances it token by token while matching the argument grammar.
type State interface {
	Pos() int                      // Get the current position
	Args() []string                // Get the entire token list
	CurrentArg() string            // Get the current token
	ArgAt(pos int) (string, error) // Get the token at a specific position
	Peek() string                  // Peek at the next token
	Advance() bool                 // Advance to the next token
	Len() int                      // Gets the length of the token list
}

// ErrInvalidPosition is an error that occurs when an invalid position is accessed
var ErrInvalidPosition = errors.New("invalid position")

// DefaultState is the default implementation of the State interface
type DefaultState struct {
	pos  int
	args []string
}

// NewState creates a new State instance with the given token list
func NewState(args []string) State {
	return &DefaultState{
		pos:  -1,
		args: args,
	}
}

// Pos returns the current position in the token list
func (s *DefaultState) Pos() int {
	return s.pos
}

// Args returns the entire token list
func (s *DefaultState) Args() []string {
	return s.args
}

// CurrentArg returns the current token
func (s *DefaultState) CurrentArg() string {
	if s.pos < 0 || s.pos >= len(s.args) {
		return ""
	}
	return s.args[s.pos]
}

// ArgAt returns the token at a specific position
func (s *DefaultState) ArgAt(pos int) (string, error) {
	if pos < 0 || pos >= len(s.args) {
		return "", ErrInvalidPosition
	}
	return s.args[pos], nil
}

// Peek returns the next token without advancing, or an empty string at the end
func (s *DefaultState) Peek() string {
	if s.pos+1 >= len(s.args) {
		return ""
	}
	return s.args[s.pos+1]
}

// Advance moves to the next token and reports whether one was available
func (s *DefaultState) Advance() bool {
	if s.pos+1 < len(s.args) {
		s.pos++
		return true
	}
	return false
}

// Len gets the length of the token list
func (s *DefaultState) Len() int {
	return len(s.args)
}
