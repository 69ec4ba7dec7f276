package aoc2023day01

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/povarna/generative-ai-with-go/adventofcode/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/utils"
)

var (
	//go:embed sample1.txt
	sample1 string
	//go:embed sample2.txt
	sample2 string
)

var ErrNoDigit = errors.New("no digit found in line")

var words = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type Solver struct{}

func NewSolver() *Solver {
	return &Solver{}
}

func (s *Solver) Day() int { return 1 }

func (s *Solver) Part1(input string) (int, error) { return part1(input) }

func (s *Solver) Part2(input string) (int, error) { return part2(input) }

func (s *Solver) Samples() []puzzle.Sample {
	return []puzzle.Sample{
		{Part: 1, Input: sample1, Want: 142},
		{Part: 2, Input: sample2, Want: 281},
	}
}

func part1(input string) (int, error) {
	return sum(input, CalibrationValue)
}

func part2(input string) (int, error) {
	return sum(input, SpelledCalibrationValue)
}

func sum(input string, value func(string) (int, error)) (int, error) {
	result := 0
	for n, line := range utils.Lines(input) {
		v, err := value(line)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", n, err)
		}
		result += v
	}
	return result, nil
}

// CalibrationValue combines the first and last ASCII digits of line into a
// two-digit number.
func CalibrationValue(line string) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		if line[i] < '0' || line[i] > '9' {
			continue
		}
		d := int(line[i] - '0')
		if first == -1 {
			first = d
		}
		last = d
	}
	if first == -1 {
		return 0, fmt.Errorf("%q: %w", line, ErrNoDigit)
	}
	return 10*first + last, nil
}

type match struct {
	index int
	digit int
}

// SpelledCalibrationValue is CalibrationValue with spelled-out digits
// ("zero" to "nine") accepted as well. Matches may overlap, so "oneight"
// yields 18.
func SpelledCalibrationValue(line string) (int, error) {
	matches := []match{}
	for digit := range 10 {
		for _, pattern := range []string{strconv.Itoa(digit), words[digit]} {
			matches = append(matches, occurrences(line, pattern, digit)...)
		}
	}
	if len(matches) == 0 {
		return 0, fmt.Errorf("%q: %w", line, ErrNoDigit)
	}

	slices.SortFunc(matches, func(a, b match) int {
		return a.index - b.index
	})

	return 10*matches[0].digit + matches[len(matches)-1].digit, nil
}

// occurrences returns the first and last match of pattern in line. Only the
// extremes matter, so the occurrences in between are never collected.
func occurrences(line, pattern string, digit int) []match {
	first := strings.Index(line, pattern)
	if first == -1 {
		return nil
	}
	last := strings.LastIndex(line, pattern)
	if last == first {
		return []match{{first, digit}}
	}
	return []match{{first, digit}, {last, digit}}
}
