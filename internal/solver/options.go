package solver

import (
	"runtime"

	"go.uber.org/zap"
)

// DefaultChunkSize is the number of consecutive seeds a worker takes at once.
const DefaultChunkSize uint64 = 1 << 16

// Option configures a Solver.
type Option func(*Solver)

// WithWorkers sets the number of part-two workers.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(s *Solver) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}

		s.workers = n
	}
}

// WithChunkSize sets how many consecutive seeds form one unit of work.
// Zero selects DefaultChunkSize.
func WithChunkSize(n uint64) Option {
	return func(s *Solver) {
		if n == 0 {
			n = DefaultChunkSize
		}

		s.chunkSize = n
	}
}

// WithLogger sets the logger used for progress reporting.
func WithLogger(l *zap.Logger) Option {
	return func(s *Solver) {
		if l == nil {
			l = zap.NewNop()
		}

		s.logger = l
	}
}
