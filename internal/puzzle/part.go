package puzzle

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=Part -output=part_string.go

// Part selects which half of a daily puzzle to solve.
type Part int

const (
	_ Part = iota // zero value is invalid

	PartOne
	PartTwo
)

// Parts lists every valid part in order.
var Parts = []Part{PartOne, PartTwo}

// IsValid reports whether p is PartOne or PartTwo.
func (p Part) IsValid() bool {
	return p == PartOne || p == PartTwo
}

// Number returns 1 or 2.
func (p Part) Number() int {
	return int(p)
}

// ParsePart accepts "1", "2", "one", "two" or the String form.
func ParsePart(s string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "one", "partone":
		return PartOne, nil
	case "2", "two", "parttwo":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("unknown part %q", s)
	}
}
