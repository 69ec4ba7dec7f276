package aoc2023day02

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedLine = errors.New("malformed game record")

// ParseError reports the token the parser expected and the input it was
// unable to consume.
type ParseError struct {
	Expected  string
	Remaining string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("expected %s at %q", e.Expected, e.Remaining)
}

func (e *ParseError) Unwrap() error {
	return ErrMalformedLine
}

func expected(token, input string) error {
	return &ParseError{Expected: token, Remaining: input}
}

// Each parser consumes a prefix of its input and returns what is left.

func tag(input, prefix string) (string, error) {
	rest, ok := strings.CutPrefix(input, prefix)
	if !ok {
		return input, expected(strconv.Quote(prefix), input)
	}
	return rest, nil
}

func number(input string) (int, string, error) {
	end := 0
	for end < len(input) && input[end] >= '0' && input[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, input, expected("digits", input)
	}

	n, err := strconv.Atoi(input[:end])
	if err != nil {
		return 0, input, expected("digits", input)
	}
	return n, input[end:], nil
}

var colors = []Color{Red, Green, Blue}

func color(input string) (Color, string, error) {
	for _, c := range colors {
		if rest, err := tag(input, c.String()); err == nil {
			return c, rest, nil
		}
	}
	return 0, input, expected("color", input)
}

func cube(input string) (Cube, string, error) {
	count, rest, err := number(input)
	if err != nil {
		return Cube{}, input, err
	}
	if rest, err = tag(rest, " "); err != nil {
		return Cube{}, input, err
	}
	c, rest, err := color(rest)
	if err != nil {
		return Cube{}, input, err
	}
	return Cube{Count: count, Color: c}, rest, nil
}

// separated parses one or more elements joined by sep. It stops before a
// separator that is not followed by an element, leaving the separator in
// the remainder.
func separated[T any](input, sep string, element func(string) (T, string, error)) ([]T, string, error) {
	first, rest, err := element(input)
	if err != nil {
		return nil, input, err
	}

	items := []T{first}
	for {
		next, err := tag(rest, sep)
		if err != nil {
			return items, rest, nil
		}
		item, after, err := element(next)
		if err != nil {
			return items, rest, nil
		}
		items = append(items, item)
		rest = after
	}
}

func cubeSet(input string) (Set, string, error) {
	cubes, rest, err := separated(input, ", ", cube)
	return Set(cubes), rest, err
}

func header(input string) (int, string, error) {
	rest, err := tag(input, "Game ")
	if err != nil {
		return 0, input, err
	}
	id, rest, err := number(rest)
	if err != nil {
		return 0, input, err
	}
	if rest, err = tag(rest, ": "); err != nil {
		return 0, input, err
	}
	return id, rest, nil
}

// Parse reads one game record from the start of input and returns it along
// with the unconsumed remainder.
func Parse(input string) (Game, string, error) {
	id, rest, err := header(input)
	if err != nil {
		return Game{}, input, err
	}
	sets, rest, err := separated(rest, "; ", cubeSet)
	if err != nil {
		return Game{}, input, err
	}
	return Game{ID: id, Sets: sets}, rest, nil
}

// ParseGame parses a complete line. Anything left after the last set is an
// error.
func ParseGame(line string) (Game, error) {
	game, rest, err := Parse(line)
	if err != nil {
		return Game{}, err
	}
	if rest != "" {
		return Game{}, expected("end of line", rest)
	}
	return game, nil
}
