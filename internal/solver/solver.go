package solver

import (
	"context"
	"fmt"
	"math"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/BlackVoid/aoc2023/internal/almanac"
)

// Solver resolves seeds through one almanac.
type Solver struct {
	almanac   *almanac.Almanac
	workers   int
	chunkSize uint64
	logger    *zap.Logger
}

// New creates a Solver for a.
func New(a *almanac.Almanac, opts ...Option) *Solver {
	s := &Solver{
		almanac:   a,
		workers:   runtime.GOMAXPROCS(0),
		chunkSize: DefaultChunkSize,
		logger:    zap.NewNop(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Workers returns the size of the part-two worker pool.
func (s *Solver) Workers() int {
	return s.workers
}

// LowestLocation resolves every seed and returns the lowest result.
// It returns false when seeds is empty.
func (s *Solver) LowestLocation(seeds []uint64) (uint64, bool) {
	if len(seeds) == 0 {
		return 0, false
	}

	lowest := uint64(math.MaxUint64)
	for _, seed := range seeds {
		lowest = min(lowest, s.almanac.Resolve(seed))
	}

	return lowest, true
}

// LowestLocationInRangesSequential resolves every seed of ranges on the
// calling goroutine. It returns false when the ranges hold no seed.
func (s *Solver) LowestLocationInRangesSequential(ranges []almanac.SeedRange) (uint64, bool) {
	lowest, found := uint64(math.MaxUint64), false

	for _, r := range ranges {
		if r.Len == 0 {
			continue
		}

		lowest = min(lowest, s.lowestIn(span{start: r.Start, end: r.End()}))
		found = true
	}

	if !found {
		return 0, false
	}

	return lowest, true
}

// LowestLocationInRanges resolves every seed of ranges on the worker pool.
// It returns false when the ranges hold no seed. Cancelling ctx stops the
// workers at the next chunk boundary.
func (s *Solver) LowestLocationInRanges(ctx context.Context, ranges []almanac.SeedRange) (uint64, bool, error) {
	log := s.logger.With(zap.String("run_id", uuid.NewString()))
	started := time.Now()

	total, _ := almanac.TotalSeeds(ranges)
	spans := split(ranges, s.chunkSize)

	log.Info("expanded seed ranges",
		zap.Int("ranges", len(ranges)),
		zap.String("seeds", formatCount(total)),
		zap.Int("chunks", len(spans)),
	)

	if len(spans) == 0 {
		return 0, false, nil
	}

	workers := min(s.workers, len(spans))
	results := make([]uint64, len(spans))

	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)

	log.Info("solving", zap.Int("workers", workers))

	for w := range workers {
		g.Go(func() error {
			done := 0

			for {
				i := int(next.Add(1) - 1)
				if i >= len(spans) {
					break
				}

				if err := gctx.Err(); err != nil {
					return err
				}

				results[i] = s.lowestIn(spans[i])
				done++
			}

			log.Debug("worker finished", zap.Int("worker", w), zap.Int("chunks", done))

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, false, fmt.Errorf("failed to resolve seed ranges: %w", err)
	}

	lowest := results[0]
	for _, v := range results[1:] {
		lowest = min(lowest, v)
	}

	log.Info("solved",
		zap.Uint64("lowest", lowest),
		zap.Duration("elapsed", time.Since(started)),
	)

	return lowest, true, nil
}

// lowestIn resolves every seed of a non-empty span.
func (s *Solver) lowestIn(sp span) uint64 {
	lowest := uint64(math.MaxUint64)
	for v := sp.start; v < sp.end; v++ {
		lowest = min(lowest, s.almanac.Resolve(v))
	}

	return lowest
}

func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return strconv.FormatUint(n, 10)
	}

	return humanize.Comma(int64(n))
}
