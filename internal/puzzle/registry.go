package puzzle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// ErrUnknownDay is returned by Lookup for days without a registered solver.
var ErrUnknownDay = errors.New("no solver registered for day")

// Runtime carries process-wide settings into a solver.
type Runtime struct {
	Logger *zap.Logger
	// Workers bounds data-parallel work; below 1 means GOMAXPROCS.
	Workers int
	// ChunkSize is the unit of data-parallel work; 0 means the solver default.
	ChunkSize uint64
	// Sequential disables data-parallel evaluation.
	Sequential bool
}

// Log returns the runtime logger, or a no-op logger when unset.
func (rt Runtime) Log() *zap.Logger {
	if rt.Logger == nil {
		return zap.NewNop()
	}

	return rt.Logger
}

// Solver solves one day's puzzle.
type Solver interface {
	Solve(ctx context.Context, rt Runtime, part Part, input string) (Answer, error)
}

// SolverFunc adapts a function to the Solver interface.
type SolverFunc func(ctx context.Context, rt Runtime, part Part, input string) (Answer, error)

// Solve calls f.
func (f SolverFunc) Solve(ctx context.Context, rt Runtime, part Part, input string) (Answer, error) {
	return f(ctx, rt, part, input)
}

var (
	mu       sync.RWMutex
	registry = map[int]Solver{}
)

// Register makes a solver available for day. It panics if day is outside
// 1..25, if s is nil or if the day is already registered.
func Register(day int, s Solver) {
	mu.Lock()
	defer mu.Unlock()

	if day < 1 || day > 25 {
		panic(fmt.Sprintf("puzzle: invalid day %d", day))
	}

	if s == nil {
		panic(fmt.Sprintf("puzzle: nil solver for day %d", day))
	}

	if _, dup := registry[day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}

	registry[day] = s
}

// Lookup returns the solver registered for day.
func Lookup(day int) (Solver, error) {
	mu.RLock()
	defer mu.RUnlock()

	s, ok := registry[day]
	if !ok {
		return nil, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}

	return s, nil
}

// Days returns the registered days in ascending order.
func Days() []int {
	mu.RLock()
	defer mu.RUnlock()

	days := make([]int, 0, len(registry))
	for d := range registry {
		days = append(days, d)
	}

	slices.Sort(days)

	return days
}
