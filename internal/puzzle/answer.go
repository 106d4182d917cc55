package puzzle

import "strconv"

// NotSolved is printed for an Answer without a value.
const NotSolved = "✗"

// Answer is an optional puzzle result. The zero value is "not solved".
type Answer struct {
	Value  uint64
	Solved bool
}

// Some returns a solved Answer.
func Some(v uint64) Answer {
	return Answer{Value: v, Solved: true}
}

// None returns an unsolved Answer.
func None() Answer {
	return Answer{}
}

// Get returns the value and whether the answer is solved.
func (a Answer) Get() (uint64, bool) {
	return a.Value, a.Solved
}

func (a Answer) String() string {
	if !a.Solved {
		return NotSolved
	}

	return strconv.FormatUint(a.Value, 10)
}
