package almanac

import (
	"errors"
	"fmt"
	"sort"
)

// SeedDomain is the domain every resolution starts in.
const SeedDomain = "seed"

// ErrCycle is returned when the stage domains form a loop.
var ErrCycle = errors.New("stage domains form a cycle")

// orderStages returns stage indices in execution order.
//
// Stage i depends on every stage j with stages[j].To == stages[i].From.
// The result is deterministic: when multiple stages are available, the one
// that appeared first in the input is picked. If a cycle exists, ErrCycle is
// returned.
func orderStages(stages []*Stage) ([]int, error) {
	n := len(stages)
	if n == 0 {
		return nil, nil
	}

	producers := make(map[string][]int, n)
	for j, st := range stages {
		producers[st.To] = append(producers[st.To], j)
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i, st := range stages {
		for _, j := range producers[st.From] {
			indeg[i]++
			out[j] = append(out[j], i)
		}
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		var stuck []string

		for i := range n {
			if indeg[i] > 0 {
				stuck = append(stuck, stages[i].Name())
			}
		}

		return nil, fmt.Errorf("%w: %v", ErrCycle, stuck)
	}

	return order, nil
}

// buildChain follows stages from SeedDomain until no stage consumes the
// current domain. byFrom must be acyclic.
func buildChain(byFrom map[string]*Stage) []*Stage {
	var chain []*Stage

	domain := SeedDomain
	for {
		st, ok := byFrom[domain]
		if !ok {
			return chain
		}

		chain = append(chain, st)
		domain = st.To
	}
}
