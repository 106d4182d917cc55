package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BlackVoid/aoc2023/internal/config"
	"github.com/BlackVoid/aoc2023/internal/puzzle"
)

// app is shared by all subcommands; it is filled in by PersistentPreRunE.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

// inputFlags select which file a command reads.
type inputFlags struct {
	day     int
	example bool
	path    string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.day, "day", "d", 5, "puzzle day")
	cmd.Flags().BoolVarP(&f.example, "example", "e", false, "read examples/DD.txt instead of inputs/DD.txt")
	cmd.Flags().StringVarP(&f.path, "input", "i", "", "explicit input file (overrides --day/--example)")
}

func (a *app) readInput(f *inputFlags) (string, error) {
	path := f.path
	if path == "" {
		kind := puzzle.InputPuzzle
		if f.example {
			kind = puzzle.InputExample
		}

		path = puzzle.InputPath(a.cfg.InputsDir, kind, f.day)
	}

	a.logger.Debug("reading input", zap.String("path", path))

	return puzzle.ReadInput(path)
}

func newRootCmd() *cobra.Command {
	a := &app{}

	cmd := &cobra.Command{
		Use:          "almanac",
		Short:        "Daily puzzle solutions",
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}

			a.cfg = cfg

			logCfg := zap.NewProductionConfig()
			logCfg.Level = zap.NewAtomicLevelAt(cfg.Level())

			if a.verbose {
				logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			a.logger, err = logCfg.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath+" if present)")
	cmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	cmd.AddCommand(
		newSolveCmd(a),
		newTraceCmd(a),
		newCheckCmd(a),
		newDumpCmd(a),
		newDaysCmd(),
		newConfigCmd(a),
	)

	return cmd
}
