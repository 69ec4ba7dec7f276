package puzzle

import (
	"errors"
	"fmt"
	"slices"
	"time"
)

//go:generate mockgen -destination=mocks/solver.go -package=mocks . Solver

// Solver is implemented by every puzzle day.
type Solver interface {
	Day() int
	Part1(input string) (int, error)
	Part2(input string) (int, error)
	// Samples returns the examples from the puzzle statement with the
	// answers they are known to produce.
	Samples() []Sample
}

type Sample struct {
	Part  int
	Input string
	Want  int
}

type Result struct {
	Day      int
	Part1    int
	Part2    int
	Duration time.Duration
}

var (
	ErrUnknownDay     = errors.New("puzzle day not registered")
	ErrDuplicateDay   = errors.New("puzzle day already registered")
	ErrSampleMismatch = errors.New("sample answer mismatch")
)

type Registry struct {
	solvers map[int]Solver
}

func NewRegistry() *Registry {
	return &Registry{solvers: map[int]Solver{}}
}

func (r *Registry) Register(solvers ...Solver) error {
	for _, s := range solvers {
		if _, ok := r.solvers[s.Day()]; ok {
			return fmt.Errorf("day %d: %w", s.Day(), ErrDuplicateDay)
		}
		r.solvers[s.Day()] = s
	}
	return nil
}

func (r *Registry) Get(day int) (Solver, error) {
	s, ok := r.solvers[day]
	if !ok {
		return nil, fmt.Errorf("day %d: %w", day, ErrUnknownDay)
	}
	return s, nil
}

// Days returns the registered days in ascending order.
func (r *Registry) Days() []int {
	days := make([]int, 0, len(r.solvers))
	for day := range r.solvers {
		days = append(days, day)
	}
	slices.Sort(days)
	return days
}
