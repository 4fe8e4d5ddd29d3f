// Package motif is for finding motifs in a single DNA sequence: approximate
// and exact pattern matches, an intron consensus, and k-mer frequencies.
//
// A Session holds the normalized sequence and pattern. It is never mutated
// after New, so its methods can be called from multiple goroutines.
package motif

import (
	"errors"
	"strings"
)

// ErrInvalidArgument is wrapped by errors from analyses given a nonsensical
// input, like a k-mer length less than one
var ErrInvalidArgument = errors.New("invalid argument")

// Session is a sequence, a pattern to search for in it, and the number
// of mismatches allowed in approximate matches of the pattern
type Session struct {
	// seq is the uppercased sequence being analyzed
	seq string

	// pattern is the uppercased query pattern
	pattern string

	// tolerance is the max hamming distance of an approximate match
	tolerance int
}

// New returns a Session for the sequence and pattern. Both are uppercased,
// nothing else is validated: other characters are compared literally
func New(seq, pattern string, tolerance int) *Session {
	return &Session{
		seq:       strings.ToUpper(seq),
		pattern:   strings.ToUpper(pattern),
		tolerance: tolerance,
	}
}

// Sequence returns the normalized sequence.
func (s *Session) Sequence() string {
	return s.seq
}

// Pattern returns the normalized pattern.
func (s *Session) Pattern() string {
	return s.pattern
}

// Tolerance returns the mismatch tolerance for approximate matches.
func (s *Session) Tolerance() int {
	return s.tolerance
}

// windows returns the number of windows of length l in the sequence
func (s *Session) windows(l int) int {
	if l > len(s.seq) {
		return 0
	}
	return len(s.seq) - l + 1
}
