package motif

import (
	"fmt"
	"sort"
	"strings"
)

// CountKmer returns the number of times kmer occurs in the sequence, overlaps
// included. The kmer is uppercased like the session's pattern.
func (s *Session) CountKmer(kmer string) (count int) {
	kmer = strings.ToUpper(kmer)
	l := len(kmer)
	for i := 0; i < s.windows(l); i++ {
		if s.seq[i:i+l] == kmer {
			count++
		}
	}
	return
}

// KmerFrequencies maps every k-mer in the sequence to its number of occurrences,
// sliding the window one base at a time. The map is empty if k exceeds
// the sequence's length
func (s *Session) KmerFrequencies(k int) (map[string]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("k-mer length must be at least 1, got %d: %w", k, ErrInvalidArgument)
	}

	freqs := make(map[string]int)
	for i := 0; i < s.windows(k); i++ {
		freqs[s.seq[i:i+k]]++
	}
	return freqs, nil
}

// MostFrequentKmers returns all the k-mers tied for the most occurrences
// in the sequence, sorted alphabetically.
//
// If k is greater than the sequence's length there are no k-mers and
// an empty slice is returned.
func (s *Session) MostFrequentKmers(k int) ([]string, error) {
	freqs, err := s.KmerFrequencies(k)
	if err != nil {
		return nil, err
	}

	max := 0
	for _, count := range freqs {
		if count > max {
			max = count
		}
	}

	kmers := []string{}
	for kmer, count := range freqs {
		if count == max {
			kmers = append(kmers, kmer)
		}
	}
	sort.Strings(kmers)

	return kmers, nil
}

// KmerCount is a k-mer and its number of occurrences.
type KmerCount struct {
	Kmer  string `json:"kmer"`
	Count int    `json:"count"`
}

// RankKmers orders a frequency table by descending count. Ties are
// broken alphabetically
func RankKmers(freqs map[string]int) []KmerCount {
	ranked := make([]KmerCount, 0, len(freqs))
	for kmer, count := range freqs {
		ranked = append(ranked, KmerCount{Kmer: kmer, Count: count})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Kmer < ranked[j].Kmer
	})
	return ranked
}
