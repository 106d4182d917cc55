package common

type unsigned interface {
	~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		unsigned |
		~float32 | ~float64
}

// IsInHalfOpen checks if lo <= value < hi.
func IsInHalfOpen[T number](lo T, value T, hi T) bool {
	return lo <= value && value < hi
}

// AddChecked returns a+b and false if the sum wraps around.
func AddChecked[T unsigned](a, b T) (T, bool) {
	sum := a + b

	return sum, sum >= a
}
