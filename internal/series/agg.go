package series

// Sum adds the present values. The bool reports whether at least one
// present value contributed; an all-null or empty series sums to
// nothing. Float NaN entries propagate into the total.
func Sum[T Number](s *Series[T]) (T, bool) {
	var total T
	seen := false
	for i := range s.values {
		if s.valid[i] {
			total += s.values[i]
			seen = true
		}
	}
	return total, seen
}

// Min returns the smallest present value, skipping nulls and float
// NaN entries. The bool reports whether any value qualified.
func Min[T Ordered](s *Series[T]) (T, bool) {
	var best T
	seen := false
	for i := range s.values {
		if !s.valid[i] || isNaNElem(s.values[i]) {
			continue
		}
		if !seen || s.values[i] < best {
			best = s.values[i]
		}
		seen = true
	}
	return best, seen
}

// Max returns the largest present value, skipping nulls and float NaN
// entries.
func Max[T Ordered](s *Series[T]) (T, bool) {
	var best T
	seen := false
	for i := range s.values {
		if !s.valid[i] || isNaNElem(s.values[i]) {
			continue
		}
		if !seen || s.values[i] > best {
			best = s.values[i]
		}
		seen = true
	}
	return best, seen
}

// Mean averages the present values as float64. NaN entries participate
// and so poison the average; only nulls are skipped.
func Mean[T Number](s *Series[T]) (float64, bool) {
	var total float64
	count := 0
	for i := range s.values {
		if s.valid[i] {
			total += float64(s.values[i])
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}

// NullCount returns the number of null positions.
func (s *Series[T]) NullCount() int {
	n := 0
	for _, ok := range s.valid {
		if !ok {
			n++
		}
	}
	return n
}
