package motif

// Hamming returns the number of positions at which a and b differ.
// Only the overlap is compared if they differ in length.
func Hamming(a, b string) (dist int) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}

	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			dist++
		}
	}
	return
}

// ApproximateMatches returns the start index of every window in the sequence
// that is within the session's tolerance of the pattern.
//
// found is false if no window is close enough (including when the pattern is
// longer than the sequence).
func (s *Session) ApproximateMatches() (positions []int, found bool) {
	return s.scan(func(window string) bool {
		return Hamming(window, s.pattern) <= s.tolerance
	})
}

// ExactMatches returns the start index of every window that equals the pattern,
// overlapping windows included: "AA" is found twice in "AAA"
func (s *Session) ExactMatches() (positions []int, found bool) {
	return s.scan(func(window string) bool {
		return window == s.pattern
	})
}

// scan slides a pattern-length window across the sequence and accumulates
// the starts of the windows that keep returns true for
func (s *Session) scan(keep func(window string) bool) (positions []int, found bool) {
	l := len(s.pattern)
	for i := 0; i < s.windows(l); i++ {
		if keep(s.seq[i : i+l]) {
			positions = append(positions, i)
		}
	}

	if len(positions) == 0 {
		return nil, false
	}
	return positions, true
}
