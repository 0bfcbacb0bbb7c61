package shellkit

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/napalu/shellkit/completion"
	"github.com/napalu/shellkit/types"
)

func TestArgSpecValidate(t *testing.T) {
	tests := []struct {
		name    string
		spec    ArgSpec
		wantErr error
	}{
		{
			name: "well formed",
			spec: ArgSpec{
				NewArg("source"),
				NewArg("targets", WithArity(types.ZeroOrMore)),
				NewArg("--verbose", WithKind(types.Bool)),
			},
		},
		{
			name: "duplicate names",
			spec: ArgSpec{
				NewArg("name"),
				NewArg("name"),
			},
			wantErr: ErrDuplicateArgument,
		},
		{
			name: "duplicate flag names",
			spec: ArgSpec{
				NewArg("--force", WithKind(types.Bool)),
				NewArg("--force", WithKind(types.Bool)),
			},
			wantErr: ErrDuplicateArgument,
		},
		{
			name: "required positional after variadic",
			spec: ArgSpec{
				NewArg("args", WithArity(types.ZeroOrMore)),
				NewArg("target"),
			},
			wantErr: ErrArgumentAfterVariadic,
		},
		{
			name: "positional after optional",
			spec: ArgSpec{
				NewArg("maybe", WithArity(types.Optional)),
				NewArg("target"),
			},
			wantErr: ErrArgumentAfterVariadic,
		},
		{
			name: "flags after variadic are fine",
			spec: ArgSpec{
				NewArg("args", WithArity(types.ZeroOrMore)),
				NewArg("--dry-run", WithKind(types.Bool)),
			},
		},
		{
			name:    "empty argument name",
			spec:    ArgSpec{NewArg("")},
			wantErr: ErrEmptyArgumentName,
		},
		{
			name:    "nil argument",
			spec:    ArgSpec{nil},
			wantErr: ErrEmptyArgumentName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.spec.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestNewArgDefaults(t *testing.T) {
	positional := NewArg("name")
	assert.Equal(t, types.ExactlyOne, positional.Arity)
	assert.False(t, positional.isFlag())

	flag := NewArg("--format")
	assert.Equal(t, types.Optional, flag.Arity)
	assert.True(t, flag.isFlag())
	assert.False(t, flag.isStandalone())

	standalone := NewArg("--force", WithKind(types.Bool))
	assert.True(t, standalone.isStandalone())
}

func TestArgumentSet(t *testing.T) {
	argument := NewArg("when")
	err := argument.Set(
		WithDescription("start time"),
		WithKind(types.Timestamp),
		WithMetavar("<WHEN>"),
		WithDefaultValue("now"),
		WithCompleter(completion.Words("now", "tomorrow")),
	)
	assert.NoError(t, err)
	assert.Equal(t, "start time", argument.Description)
	assert.Equal(t, types.Timestamp, argument.Kind)
	assert.Equal(t, "<WHEN>", argument.Metavar)
	assert.Equal(t, "now", argument.DefaultValue)
	assert.NotNil(t, argument.Completer)
}

func TestArgumentString(t *testing.T) {
	argument := NewArg("name", WithDescription("who to greet"))
	assert.Equal(t, `name "who to greet" (required)`, argument.String())

	flag := NewArg("--format", WithDescription("output format"), WithDefaultValue("json"))
	assert.Equal(t, `--format "output format" (defaults to: json) (optional)`, flag.String())
}
