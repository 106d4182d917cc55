package almanac

import (
	"errors"
	"fmt"

	"github.com/BlackVoid/aoc2023/internal/common"
)

// ErrOddSeeds is returned when seeds cannot be grouped into (start, length) pairs.
var ErrOddSeeds = errors.New("seed list has an odd number of values")

// SeedRange is the run of seeds [Start, Start+Len).
type SeedRange struct {
	Start uint64
	Len   uint64
}

// End returns the first seed after the range.
func (r SeedRange) End() uint64 {
	return r.Start + r.Len
}

// String renders the range as "[start,end)".
func (r SeedRange) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End())
}

// SeedRanges groups seeds into (start, length) pairs.
func SeedRanges(seeds []uint64) ([]SeedRange, error) {
	pairs, ok := common.Pairs(seeds)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrOddSeeds, len(seeds))
	}

	ranges := make([]SeedRange, 0, len(pairs))

	for _, p := range pairs {
		if _, ok := common.AddChecked(p[0], p[1]); !ok {
			return nil, fmt.Errorf("seed range %d+%d overflows", p[0], p[1])
		}

		ranges = append(ranges, SeedRange{Start: p[0], Len: p[1]})
	}

	return ranges, nil
}

// TotalSeeds returns the number of seeds covered by ranges.
// The second result is false if the count does not fit in uint64.
func TotalSeeds(ranges []SeedRange) (uint64, bool) {
	var total uint64

	for _, r := range ranges {
		var ok bool

		total, ok = common.AddChecked(total, r.Len)
		if !ok {
			return 0, false
		}
	}

	return total, true
}
