package common

// UnknownStr is returned by String methods for out-of-range enum values.
const UnknownStr = "unknown"

// IsEmpty returns true if the slice is empty.
func IsEmpty[S ~[]E, E any](s S) bool {
	return len(s) == 0
}

// First returns the first element of the slice and true, or the zero value and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	if len(s) == 0 {
		var zero E
		return zero, false
	}

	return s[0], true
}

// Pairs groups consecutive elements two by two.
// It returns false when the slice has an odd length.
func Pairs[S ~[]E, E any](s S) ([][2]E, bool) {
	if len(s)%2 != 0 {
		return nil, false
	}

	out := make([][2]E, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		out = append(out, [2]E{s[i], s[i+1]})
	}

	return out, true
}
