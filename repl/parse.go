package repl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// parse splits an input line into a start symbol and a sentence count.
func parse(in string) (string, int, error) {
	tokens := strings.Fields(in)

	switch len(tokens) {
	case 0:
		return "", 0, errors.New("no start symbol given")
	case 1:
		return tokens[0], 1, nil
	case 2:
		n, err := strconv.Atoi(tokens[1])
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("invalid number of sentences: %s", tokens[1])
		}
		return tokens[0], n, nil
	}

	return "", 0, errors.New("usage: <start symbol> [number of sentences]")
}
