package parse

import "github.com/google/shlex"

// Split tokenizes a submitted command line. Quoted tokens are kept whole.
func Split(s string) ([]string, error) {
	args, err := shlex.Split(s)
	if err != nil {
		return nil, err
	}

	return args, nil
}
