package shellkit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestArgsGetters(t *testing.T) {
	args := newArgs("demo")
	args.add("name", "alice")
	args.add("count", "3")
	args.add("ratio", "0.5")
	args.add("--verbose", "true")
	args.add("--timeout", "90s")
	args.add("when", "2024-06-01")
	args.add("labels", "fast")
	args.add("labels", "full")

	assert.Equal(t, "demo", args.Command())
	assert.True(t, args.Has("name"))
	assert.False(t, args.Has("missing"))
	assert.Equal(t, 2, args.Count("labels"))

	name, ok := args.Get("name")
	assert.True(t, ok)
	assert.Equal(t, "alice", name)

	assert.Equal(t, "fallback", args.GetOrDefault("missing", "fallback"))
	assert.Equal(t, []string{"fast", "full"}, args.GetList("labels"))

	count, err := args.GetInt("count")
	assert.NoError(t, err)
	assert.Equal(t, int64(3), count)

	ratio, err := args.GetFloat("ratio")
	assert.NoError(t, err)
	assert.InDelta(t, 0.5, ratio, 0.001)

	verbose, err := args.GetBool("--verbose")
	assert.NoError(t, err)
	assert.True(t, verbose)

	timeout, err := args.GetDuration("--timeout")
	assert.NoError(t, err)
	assert.Equal(t, 90*time.Second, timeout)

	when, err := args.GetTime("when")
	assert.NoError(t, err)
	assert.Equal(t, 2024, when.Year())
}

func TestArgsGettersOnMissingArgument(t *testing.T) {
	args := newArgs("demo")

	_, err := args.GetInt("count")
	assert.ErrorIs(t, err, ErrMissingArgument)
	_, err = args.GetBool("--verbose")
	assert.ErrorIs(t, err, ErrMissingArgument)
	_, err = args.GetTime("when")
	assert.ErrorIs(t, err, ErrMissingArgument)
	assert.Empty(t, args.GetList("labels"))
}

func TestArgsGetListCopies(t *testing.T) {
	args := newArgs("demo")
	args.add("labels", "one")

	list := args.GetList("labels")
	list[0] = "mutated"
	fresh := args.GetList("labels")
	assert.Equal(t, []string{"one"}, fresh)
}
