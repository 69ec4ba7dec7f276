package puzzle

import (
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

type Runner struct {
	logger *zerolog.Logger
}

func NewRunner(logger *zerolog.Logger) *Runner {
	return &Runner{logger: logger}
}

// Run solves both parts of s against input. The first failing part aborts
// the run and no partial result is returned.
func (r *Runner) Run(s Solver, input string) (Result, error) {
	now := time.Now()
	result := Result{Day: s.Day()}

	part1, err := r.part(s, 1, s.Part1, input)
	if err != nil {
		return Result{}, err
	}
	part2, err := r.part(s, 2, s.Part2, input)
	if err != nil {
		return Result{}, err
	}

	result.Part1 = part1
	result.Part2 = part2
	result.Duration = time.Since(now)

	r.logger.Debug().
		Int("day", result.Day).
		Dur("duration", result.Duration).
		Msg("puzzle solved")

	return result, nil
}

type SampleResult struct {
	Sample
	Got int
}

// Verify solves every sample of s and checks the answers. It stops at the
// first failure.
func (r *Runner) Verify(s Solver) ([]SampleResult, error) {
	results := []SampleResult{}

	for _, sample := range s.Samples() {
		var solve func(string) (int, error)
		switch sample.Part {
		case 1:
			solve = s.Part1
		case 2:
			solve = s.Part2
		default:
			return results, fmt.Errorf("day %d: unknown part %d in sample", s.Day(), sample.Part)
		}

		got, err := r.part(s, sample.Part, solve, sample.Input)
		if err != nil {
			return results, fmt.Errorf("sample: %w", err)
		}
		results = append(results, SampleResult{Sample: sample, Got: got})

		if got != sample.Want {
			return results, fmt.Errorf("day %d part %d: got %d, want %d: %w", s.Day(), sample.Part, got, sample.Want, ErrSampleMismatch)
		}
	}

	r.logger.Debug().
		Int("day", s.Day()).
		Int("samples", len(results)).
		Msg("sample answers match")
	return results, nil
}

func (r *Runner) part(s Solver, n int, solve func(string) (int, error), input string) (int, error) {
	now := time.Now()
	answer, err := solve(input)
	if err != nil {
		r.logger.Error().
			Err(err).
			Int("day", s.Day()).
			Int("part", n).
			Msg("part failed")
		return 0, fmt.Errorf("day %d part %d: %w", s.Day(), n, err)
	}

	r.logger.Debug().
		Int("day", s.Day()).
		Int("part", n).
		Int("answer", answer).
		Dur("duration", time.Since(now)).
		Msg("part solved")
	return answer, nil
}

func Report(w io.Writer, result Result) error {
	if _, err := fmt.Fprintf(w, "AoC2023, Day%d, Part1 solution is: %d\n", result.Day, result.Part1); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "AoC2023, Day%d, Part2 solution is: %d\n", result.Day, result.Part2)
	return err
}

func ReportSamples(w io.Writer, day int, results []SampleResult) error {
	for _, result := range results {
		if _, err := fmt.Fprintf(w, "AoC2023, Day%d, Part%d sample is: %d\n", day, result.Part, result.Got); err != nil {
			return err
		}
	}
	return nil
}
