package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/povarna/generative-ai-with-go/adventofcode/internal/config"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/puzzle"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/setup"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/setup/logger"
	"github.com/povarna/generative-ai-with-go/adventofcode/internal/utils"
	"github.com/spf13/cobra"
)

type options struct {
	configPath string
	inputPath  string
	sample     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "aoc [day...]",
		Short: "Solve Advent of Code 2023 puzzles",
		Long: `Solves the given days, or every registered day when none is given.
Each day prints its part 1 and part 2 answers on stdout.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := wire(cmd, opts)
			if err != nil {
				return err
			}
			return solve(cmd.OutOrStdout(), deps, args, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the YAML config (default $AOC_CONFIG_PATH or "+config.DefaultPath+")")
	cmd.Flags().StringVar(&opts.inputPath, "input", "", "Input file, only valid when solving a single day")
	cmd.Flags().BoolVar(&opts.sample, "sample", false, "Solve the puzzle statement examples and check their answers")

	cmd.AddCommand(newListCmd(opts))

	return cmd
}

func newListCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the registered days and their input files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := wire(cmd, opts)
			if err != nil {
				return err
			}
			for _, day := range deps.Registry.Days() {
				fmt.Fprintf(cmd.OutOrStdout(), "day %d\t%s\n", day, deps.Config.InputPath(day))
			}
			return nil
		},
	}
}

func wire(cmd *cobra.Command, opts *options) (*setup.Dependencies, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l := logger.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if cfg.Source == "" {
		l.Debug().Msg("No config file found, using defaults")
	} else {
		l.Debug().Str("file", cfg.Source).Msg("Config loaded")
	}

	return setup.Wire(cfg, &l)
}

func solve(out io.Writer, deps *setup.Dependencies, args []string, opts *options) error {
	days, err := parseDays(args)
	if err != nil {
		return err
	}
	if len(days) == 0 {
		days = deps.Registry.Days()
	}
	if opts.inputPath != "" && len(days) != 1 {
		return errors.New("--input requires exactly one day")
	}

	for _, day := range days {
		s, err := deps.Registry.Get(day)
		if err != nil {
			return err
		}

		if opts.sample {
			results, err := deps.Runner.Verify(s)
			if err != nil {
				return err
			}
			if err := puzzle.ReportSamples(out, day, results); err != nil {
				return err
			}
			continue
		}

		path := opts.inputPath
		if path == "" {
			path = deps.Config.InputPath(day)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read input for day %d: %w", day, err)
		}
		deps.Logger.Debug().Int("day", day).Str("file", path).Msg("Reading input file")

		result, err := deps.Runner.Run(s, string(data))
		if err != nil {
			return err
		}
		if err := puzzle.Report(out, result); err != nil {
			return err
		}
	}

	return nil
}

// parseDays accepts "2", "02" and "day2".
func parseDays(args []string) ([]int, error) {
	days := []int{}
	for _, arg := range args {
		day, err := utils.ToInt(strings.TrimPrefix(strings.ToLower(arg), "day"))
		if err != nil {
			return nil, fmt.Errorf("invalid day %q: %w", arg, err)
		}
		days = append(days, day)
	}
	return days, nil
}
