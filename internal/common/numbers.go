package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange reports whether lo <= value <= hi.
func IsInRange[T number](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// ParseIntInRange parses s as a base-10 integer and reports whether it lies
// within [lo, hi].
func ParseIntInRange(s string, lo, hi int) (int, bool) {
	n := 0
	if s == "" {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}

		n = n*10 + int(r-'0')
		if n > hi {
			return n, false
		}
	}

	return n, IsInRange(lo, n, hi)
}
