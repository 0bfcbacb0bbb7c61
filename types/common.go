package types

// Arity describes how many value tokens an argument consumes.
type Arity int

// String returns the string representation of an Arity
func (a Arity) String() string {
	switch a {
	case Optional:
		return "optional"
	case ZeroOrMore:
		return "zero-or-more"
	case ExactlyOne:
		fallthrough
	default:
		return "exactly-one"
	}
}

const (
	// ExactlyOne denotes an argument which consumes exactly one token (required)
	ExactlyOne Arity = iota
	// Optional denotes an argument which consumes at most one token
	Optional
	// ZeroOrMore denotes a variadic argument absorbing all remaining tokens
	ZeroOrMore
)

// Kind describes the value type an argument accepts. Tokens are checked
// against their Kind during validation so handlers only ever see
// convertible values.
type Kind int

// String returns the string representation of a Kind
func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	case Duration:
		return "duration"
	case Timestamp:
		return "timestamp"
	case String:
		fallthrough
	default:
		return "string"
	}
}

const (
	// String accepts any token
	String Kind = iota
	// Int accepts whole numbers
	Int
	// Float accepts floating point numbers
	Float
	// Bool accepts boolean tokens - a Bool flag is standalone and consumes no value token
	Bool
	// Duration accepts time.Duration tokens such as "1h30m"
	Duration
	// Timestamp accepts dates and times in most common formats
	Timestamp
)

// Secure set IsSecure to true to solicit non-echoed user input from stdin
// for a flag whose value was not supplied on the command line.
// If Prompt is empty a "password: " prompt will be displayed. Set to the desired value to override.
type Secure struct {
	IsSecure bool
	Prompt   string
}
