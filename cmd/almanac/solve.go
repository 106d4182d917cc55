package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/BlackVoid/aoc2023/internal/puzzle"
)

func newSolveCmd(a *app) *cobra.Command {
	var (
		in         inputFlags
		part       string
		workers    int
		chunkSize  uint64
		sequential bool
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve one or both parts of a day",
		Example: `  almanac solve --day 5
  almanac solve --day 5 --part 2 --example
  almanac solve --input my.txt --workers 8`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := puzzle.Lookup(in.day)
			if err != nil {
				return err
			}

			parts := puzzle.Parts
			if part != "" {
				p, err := puzzle.ParsePart(part)
				if err != nil {
					return err
				}

				parts = []puzzle.Part{p}
			}

			input, err := a.readInput(&in)
			if err != nil {
				return err
			}

			rt := puzzle.Runtime{
				Logger:     a.logger,
				Workers:    a.cfg.Workers,
				ChunkSize:  a.cfg.ChunkSize,
				Sequential: sequential,
			}

			if cmd.Flags().Changed("workers") {
				rt.Workers = workers
			}

			if cmd.Flags().Changed("chunk-size") {
				rt.ChunkSize = chunkSize
			}

			for _, p := range parts {
				started := time.Now()

				ans, err := s.Solve(cmd.Context(), rt, p, input)
				if err != nil {
					return fmt.Errorf("day %d part %d: %w", in.day, p.Number(), err)
				}

				a.logger.Info("part solved",
					zap.Int("day", in.day),
					zap.Stringer("part", p),
					zap.Bool("solved", ans.Solved),
					zap.Duration("elapsed", time.Since(started)),
				)

				fmt.Fprintf(cmd.OutOrStdout(), "Part %d: %s\n", p.Number(), ans)
			}

			return nil
		},
	}

	in.register(cmd)
	cmd.Flags().StringVarP(&part, "part", "p", "", "part to solve: 1 or 2 (default both)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "part-two workers (default from config, 0 = GOMAXPROCS)")
	cmd.Flags().Uint64Var(&chunkSize, "chunk-size", 0, "seeds per unit of parallel work (default from config)")
	cmd.Flags().BoolVar(&sequential, "sequential", false, "evaluate part two on a single goroutine")

	return cmd
}
