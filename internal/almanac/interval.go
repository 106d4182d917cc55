package almanac

import (
	"fmt"

	"github.com/BlackVoid/aoc2023/internal/common"
)

// Interval maps the half-open source range [Start, End) onto
// [Base, Base+(End-Start)).
type Interval struct {
	Start uint64
	End   uint64
	Base  uint64
}

// Len returns the number of values covered by the interval.
func (iv Interval) Len() uint64 {
	return iv.End - iv.Start
}

// Contains reports whether src lies in [Start, End).
func (iv Interval) Contains(src uint64) bool {
	return common.IsInHalfOpen(iv.Start, src, iv.End)
}

// Map translates src, which must be contained in the interval.
func (iv Interval) Map(src uint64) uint64 {
	return iv.Base + (src - iv.Start)
}

// Overlaps reports whether the two source ranges share at least one value.
func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && other.Start < iv.End
}

// String renders the interval as "[start,end)->base".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d)->%d", iv.Start, iv.End, iv.Base)
}

// compare orders the interval against src for binary search:
// intervals entirely below src sort before it, intervals starting above it after.
func (iv Interval) compare(src uint64) int {
	switch {
	case src < iv.Start:
		return 1
	case src >= iv.End:
		return -1
	default:
		return 0
	}
}
