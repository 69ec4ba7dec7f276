package setup

import (
	"fmt"

	aoc2023day01 "github.com/povarna/generative-ai-with-go/adventofcode/aoc/2023/day01"
	aoc2023day02 "github.com/povarna/generative-ai-with-go/adventofcode/aoc/2023/day02"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/config"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/puzzle"
	"github.com/rs/zerolog"
)

type Dependencies struct {
	Registry *puzzle.Registry
	Runner   *puzzle.Runner
	Config   *config.Config
	Logger   *zerolog.Logger
}

func Wire(cfg *config.Config, logger *zerolog.Logger) (*Dependencies, error) {
	bag := aoc2023day02.Bag{
		Red:   cfg.Bag.Red,
		Green: cfg.Bag.Green,
		Blue:  cfg.Bag.Blue,
	}

	registry := puzzle.NewRegistry()
	err := registry.Register(
		aoc2023day01.NewSolver(),
		aoc2023day02.NewSolver(bag),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to register puzzles: %w", err)
	}

	return &Dependencies{
		Registry: registry,
		Runner:   puzzle.NewRunner(logger),
		Config:   cfg,
		Logger:   logger,
	}, nil
}
