package solver

import "github.com/BlackVoid/aoc2023/internal/almanac"

// span is the half-open run of seeds [start, end).
type span struct {
	start uint64
	end   uint64
}

func (s span) len() uint64 {
	return s.end - s.start
}

// split cuts ranges into spans of at most size seeds, in input order.
// Empty ranges produce no span.
func split(ranges []almanac.SeedRange, size uint64) []span {
	var out []span

	for _, r := range ranges {
		start, end := r.Start, r.End()
		for start < end {
			n := min(size, end-start)
			out = append(out, span{start: start, end: start + n})
			start += n
		}
	}

	return out
}
