// Package day05 resolves seeds through the almanac's mapping stages and
// reports the lowest location.
package day05

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/BlackVoid/aoc2023/internal/almanac"
	"github.com/BlackVoid/aoc2023/internal/puzzle"
	"github.com/BlackVoid/aoc2023/internal/solver"
)

// Day is the puzzle day this package solves.
const Day = 5

func init() {
	puzzle.Register(Day, Solver{})
}

// Solver implements puzzle.Solver for day 5.
type Solver struct{}

// Solve parses input and solves the requested part.
func (Solver) Solve(ctx context.Context, rt puzzle.Runtime, part puzzle.Part, input string) (puzzle.Answer, error) {
	log := rt.Log().With(zap.Int("day", Day), zap.Stringer("part", part))

	log.Debug("parsing")

	a, err := almanac.Parse(input)
	if err != nil {
		return puzzle.None(), err
	}

	log.Debug("parsed", zap.Int("seeds", len(a.Seeds)), zap.Int("stages", len(a.Chain())))

	s := solver.New(a,
		solver.WithLogger(log),
		solver.WithWorkers(rt.Workers),
		solver.WithChunkSize(rt.ChunkSize),
	)

	switch part {
	case puzzle.PartOne:
		return PartOne(a, s), nil
	case puzzle.PartTwo:
		return PartTwo(ctx, a, s, rt.Sequential)
	default:
		return puzzle.None(), fmt.Errorf("day %d has no %s", Day, part)
	}
}

// PartOne returns the lowest location over the listed seeds.
func PartOne(a *almanac.Almanac, s *solver.Solver) puzzle.Answer {
	v, ok := s.LowestLocation(a.Seeds)
	if !ok {
		return puzzle.None()
	}

	return puzzle.Some(v)
}

// PartTwo reads the seeds as (start, length) ranges and returns the lowest
// location over every seed they cover.
func PartTwo(ctx context.Context, a *almanac.Almanac, s *solver.Solver, sequential bool) (puzzle.Answer, error) {
	ranges, err := a.SeedRanges()
	if err != nil {
		return puzzle.None(), fmt.Errorf("invalid seed ranges: %w", err)
	}

	var (
		v  uint64
		ok bool
	)

	if sequential {
		v, ok = s.LowestLocationInRangesSequential(ranges)
	} else {
		v, ok, err = s.LowestLocationInRanges(ctx, ranges)
		if err != nil {
			return puzzle.None(), err
		}
	}

	if !ok {
		return puzzle.None(), nil
	}

	return puzzle.Some(v), nil
}
