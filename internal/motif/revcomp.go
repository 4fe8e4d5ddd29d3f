package motif

// ReverseComplement returns the reverse complement of a DNA sequence.
// Anything other than A, C, G, T (in either case) is kept as is.
func ReverseComplement(seq string) string {
	comp := map[byte]byte{
		'A': 'T', 'T': 'A', 'G': 'C', 'C': 'G',
		'a': 't', 't': 'a', 'g': 'c', 'c': 'g',
	}

	rc := make([]byte, len(seq))
	for i := 0; i < len(seq); i++ {
		b := seq[len(seq)-1-i]
		if c, ok := comp[b]; ok {
			b = c
		}
		rc[i] = b
	}
	return string(rc)
}

// ReverseComplement returns a session for the opposite strand, with the
// same pattern and tolerance
func (s *Session) ReverseComplement() *Session {
	return &Session{
		seq:       ReverseComplement(s.seq),
		pattern:   s.pattern,
		tolerance: s.tolerance,
	}
}
