// Package convert turns raw command-line tokens into the typed values their
// argument kind declares.
package convert

import (
	"fmt"
	"strconv"
	"time"

	"github.com/araddon/dateparse"

	"github.com/napalu/shellkit/types"
)

// Check verifies that a token is convertible to the given kind.
func Check(token string, kind types.Kind) error {
	var err error
	switch kind {
	case types.Int:
		_, err = Int(token)
	case types.Float:
		_, err = Float(token)
	case types.Bool:
		_, err = Bool(token)
	case types.Duration:
		_, err = Duration(token)
	case types.Timestamp:
		_, err = Time(token)
	}

	return err
}

// Int converts a token to an int64
func Int(token string) (int64, error) {
	value, err := strconv.ParseInt(token, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", token)
	}
	return value, nil
}

// Float converts a token to a float64
func Float(token string) (float64, error) {
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, fmt.Errorf("%q is not a number", token)
	}
	return value, nil
}

// Bool converts a token to a bool
func Bool(token string) (bool, error) {
	value, err := strconv.ParseBool(token)
	if err != nil {
		return false, fmt.Errorf("%q is not a boolean", token)
	}
	return value, nil
}

// Duration converts a token to a time.Duration
func Duration(token string) (time.Duration, error) {
	value, err := time.ParseDuration(token)
	if err != nil {
		return 0, fmt.Errorf("%q is not a duration", token)
	}
	return value, nil
}

// Time converts a token to a time.Time accepting most common date and time formats
func Time(token string) (time.Time, error) {
	value, err := dateparse.ParseAny(token)
	if err != nil {
		return time.Time{}, fmt.Errorf("%q is not a date or time", token)
	}
	return value, nil
}
