package utils

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
)

func ToInt(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("unable to convert %q to number: %w", s, err)
	}

	return n, nil
}

// Lines yields every line of input together with its 1-based line number.
// A final newline does not start another line, and trailing carriage
// returns are dropped. Blank lines in between are yielded as they are.
func Lines(input string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if input == "" {
			return
		}
		n := 0
		for line := range strings.SplitSeq(strings.TrimSuffix(input, "\n"), "\n") {
			n++
			if !yield(n, strings.TrimSuffix(line, "\r")) {
				return
			}
		}
	}
}
