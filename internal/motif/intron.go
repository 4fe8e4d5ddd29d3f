package motif

import "strings"

// the intron consensus is a donor site, a gap, the branch site,
// another gap, and the acceptor site:
//
//	GT [ACGT]{1,10} TACTAAC [ACGT]{1,10} AC
const (
	intronDonor    = "GT"
	intronBranch   = "TACTAAC"
	intronAcceptor = "AC"

	intronMinGap = 1
	intronMaxGap = 10
)

// intronMinLength is the length of the shortest possible intron match
var intronMinLength = len(intronDonor) + intronMinGap + len(intronBranch) + intronMinGap + len(intronAcceptor)

// Span is a half-open range [Start, End) of the sequence.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// FindIntron returns the start of the leftmost intron consensus in the sequence.
func (s *Session) FindIntron() (start int, found bool) {
	span, found := s.FindIntronSpan()
	return span.Start, found
}

// FindIntronSpan returns the span of the leftmost intron consensus. At each gap
// the shortest length that lets the rest of the consensus match is used
func (s *Session) FindIntronSpan() (Span, bool) {
	for start := 0; start+intronMinLength <= len(s.seq); start++ {
		if end, ok := s.intronAt(start); ok {
			return Span{Start: start, End: end}, true
		}
	}
	return Span{}, false
}

// intronAt returns the end of the shortest intron consensus starting at start
func (s *Session) intronAt(start int) (end int, ok bool) {
	if !strings.HasPrefix(s.seq[start:], intronDonor) {
		return 0, false
	}

	return s.gapThen(start+len(intronDonor), intronBranch, func(afterBranch int) (int, bool) {
		return s.gapThen(afterBranch, intronAcceptor, func(afterAcceptor int) (int, bool) {
			return afterAcceptor, true
		})
	})
}

// gapThen tries gaps of nucleotides starting at i, shortest first, that are
// followed by lit. next is called with the index after lit and the first
// gap it accepts wins
func (s *Session) gapThen(i int, lit string, next func(int) (int, bool)) (int, bool) {
	for gap := intronMinGap; gap <= intronMaxGap; gap++ {
		j := i + gap
		if j > len(s.seq) || !isNucleotide(s.seq[j-1]) {
			break // gaps only hold A, C, G or T
		}

		if strings.HasPrefix(s.seq[j:], lit) {
			if end, ok := next(j + len(lit)); ok {
				return end, true
			}
		}
	}
	return 0, false
}

// isNucleotide returns whether b is one of A, C, G, T
func isNucleotide(b byte) bool {
	switch b {
	case 'A', 'C', 'G', 'T':
		return true
	}
	return false
}
