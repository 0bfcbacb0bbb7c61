package util

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// GetSecureString solicits non-echoed input from stdin. Used for secure
// arguments whose value was not supplied on the command line.
func GetSecureString(prompt string) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", fmt.Errorf("not attached to a terminal. don't know how to get input from stdin")
	}

	fmt.Print(prompt)
	bytes, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return "", err
	}
	if len(bytes) == 0 {
		return "", fmt.Errorf("empty input is invalid")
	}

	return string(bytes), nil
}

// IsInteractive reports whether the given file is attached to a terminal
func IsInteractive(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
