package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/on-the-ground/advent_ive_go/config"
	"github.com/on-the-ground/advent_ive_go/days"
	"github.com/on-the-ground/advent_ive_go/days/day10"
	"github.com/on-the-ground/advent_ive_go/effects"
	"github.com/on-the-ground/advent_ive_go/effects/binding"
	"github.com/on-the-ground/advent_ive_go/effects/concurrency"
	"github.com/on-the-ground/advent_ive_go/effects/configkeys"
	"github.com/on-the-ground/advent_ive_go/effects/log"
	"github.com/on-the-ground/advent_ive_go/puzzle"
	"github.com/on-the-ground/advent_ive_go/puzzle/input"
	"github.com/on-the-ground/advent_ive_go/shared/orderedbuffer"
	"github.com/on-the-ground/advent_ive_go/tribonacci"
	"go.uber.org/multierr"
)

var errInputNeedsDay = errors.New("-input requires -day")

func main() {
	if err := run(context.Background(), os.Stdout, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type options struct {
	day        int
	inputPath  string
	configPath string
	inputDir   string
	logLevel   string
}

func parseFlags(args []string, outW io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("advent", flag.ContinueOnError)
	fs.SetOutput(outW)
	fs.IntVar(&opts.day, "day", 0, "day to solve; 0 solves every registered day")
	fs.StringVar(&opts.inputPath, "input", "", "input file; defaults to <input_dir>/dNN.txt")
	fs.StringVar(&opts.configPath, "config", "", "YAML config file")
	fs.StringVar(&opts.inputDir, "input-dir", "", "overrides puzzle.input_dir")
	fs.StringVar(&opts.logLevel, "log-level", "", "overrides effect.log.level")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.inputPath != "" && opts.day == 0 {
		return opts, errInputNeedsDay
	}
	return opts, nil
}

func run(ctx context.Context, outW io.Writer, args []string) error {
	opts, err := parseFlags(args, outW)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if opts.inputDir != "" {
		cfg.Puzzle.InputDir = opts.inputDir
	}
	if opts.logLevel != "" {
		cfg.Effect.Log.Level = opts.logLevel
	}

	logger, err := log.NewLogger(cfg.Effect.Log.Level)
	if err != nil {
		return fmt.Errorf("log level %q: %w", cfg.Effect.Log.Level, err)
	}
	ctx, endOfLogHandler := log.WithZapEffectHandler(ctx, cfg.Effect.Log.Handler.BufferSize, logger)
	defer endOfLogHandler()

	ctx, endOfBindingHandler := binding.WithEffectHandler(ctx, effects.NewEffectScopeConfig(1, 1), cfg.Bindings())
	defer endOfBindingHandler()

	ways := day10.NewEvaluator()
	ctx, endOfTribonacciHandler := tribonacci.WithEffectHandler(
		ctx,
		effects.NewEffectScopeConfig(
			binding.MustGetFromBindingEffect[int](ctx, configkeys.ConfigEffectTribonacciHandlerBufferSize),
			binding.MustGetFromBindingEffect[int](ctx, configkeys.ConfigEffectTribonacciHandlerNumWorkers),
		),
		ways,
	)
	defer endOfTribonacciHandler()

	registry := puzzle.NewRegistry()
	if err := days.Register(registry, ways); err != nil {
		return err
	}

	selected := registry.Days()
	if opts.day != 0 {
		if _, err := registry.Lookup(opts.day); err != nil {
			return err
		}
		selected = []int{opts.day}
	}

	log.Effect(ctx, log.LogInfo, "starting run", map[string]interface{}{
		"year":      binding.GetOrDefault(ctx, configkeys.ConfigPuzzleYear, 0),
		"input_dir": binding.MustGetFromBindingEffect[string](ctx, configkeys.ConfigPuzzleInputDir),
		"days":      selected,
	})

	reports, err := solveAll(ctx, registry, selected, opts.inputPath)
	for _, r := range reports {
		fmt.Fprintf(outW, "Day %d\n", r.Day)
		for _, line := range r.Lines() {
			fmt.Fprintln(outW, line)
		}
	}

	log.Effect(ctx, log.LogInfo, "finished run", map[string]interface{}{
		"solved": len(reports),
		"failed": len(multierr.Errors(err)),
	})
	return err
}

// solveAll runs the selected days concurrently and returns the successful
// reports ordered by day, along with every failure.
func solveAll(
	ctx context.Context,
	registry *puzzle.Registry,
	selected []int,
	inputPath string,
) ([]puzzle.Report, error) {
	buf := orderedbuffer.NewOrderedBoundedBuffer(len(selected), func(a, b puzzle.Report) int {
		return a.Day - b.Day
	})

	var (
		mu   sync.Mutex
		errs error
	)
	fail := func(err error) {
		mu.Lock()
		errs = multierr.Append(errs, err)
		mu.Unlock()
	}

	fns := make([]func(context.Context), 0, len(selected))
	for _, day := range selected {
		fns = append(fns, func(ctx context.Context) {
			report, err := solveDay(ctx, registry, day, inputPath)
			if err == nil {
				err = buf.Insert(ctx, report)
			}
			if err != nil {
				fail(err)
			}
		})
	}

	ctx, endOfConcurrencyHandler := concurrency.WithEffectHandler(ctx, 1)
	if err := concurrency.Effect(ctx, fns...); err != nil {
		fail(err)
	}
	ctx = endOfConcurrencyHandler()
	buf.Close(ctx)

	reports := make([]puzzle.Report, 0, len(selected))
	for r := range buf.Source() {
		reports = append(reports, r)
	}
	return reports, errs
}

func solveDay(ctx context.Context, registry *puzzle.Registry, day int, inputPath string) (puzzle.Report, error) {
	solver, err := registry.Lookup(day)
	if err != nil {
		return puzzle.Report{}, err
	}
	if inputPath == "" {
		dir := binding.MustGetFromBindingEffect[string](ctx, configkeys.ConfigPuzzleInputDir)
		inputPath = filepath.Join(dir, puzzle.InputName(day))
	}
	lines, err := input.ReadLines(inputPath)
	if err != nil {
		return puzzle.Report{}, fmt.Errorf("day %d: %w", day, err)
	}
	return puzzle.Run(ctx, day, solver, lines)
}
