package aoc2023day02

import (
	_ "embed"
	"fmt"

	"github.com/povarna/generative-ai-with-go/adventofcode/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/utils"
)

//go:embed sample.txt
var sample string

type Solver struct {
	bag Bag
}

func NewSolver(bag Bag) *Solver {
	return &Solver{bag: bag}
}

func (s *Solver) Day() int { return 2 }

func (s *Solver) Part1(input string) (int, error) { return part1(input, s.bag) }

func (s *Solver) Part2(input string) (int, error) { return part2(input) }

// The part 1 sample answer only holds for the bag from the puzzle statement.
func (s *Solver) Samples() []puzzle.Sample {
	if s.bag != DefaultBag {
		return []puzzle.Sample{{Part: 2, Input: sample, Want: 2286}}
	}
	return []puzzle.Sample{
		{Part: 1, Input: sample, Want: 8},
		{Part: 2, Input: sample, Want: 2286},
	}
}

// ParseAll parses one game per line of input. The first malformed
// line aborts the parse.
func ParseAll(input string) ([]Game, error) {
	games := []Game{}
	for n, line := range utils.Lines(input) {
		game, err := ParseGame(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		games = append(games, game)
	}
	return games, nil
}

func part1(input string, bag Bag) (int, error) {
	games, err := ParseAll(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, game := range games {
		if bag.Allows(game) {
			total += game.ID
		}
	}
	return total, nil
}

func part2(input string) (int, error) {
	games, err := ParseAll(input)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, game := range games {
		total += game.MinimumPower()
	}
	return total, nil
}
