package motif

import (
	"math/rand"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomSeq returns a random DNA sequence of length n
func randomSeq(r *rand.Rand, n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte("ACGT"[r.Intn(4)])
	}
	return b.String()
}

func TestExactMatchesEqualZeroToleranceMatches(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		seq := randomSeq(r, r.Intn(60))
		pattern := randomSeq(r, r.Intn(4))

		exact, exactFound := New(seq, pattern, 0).ExactMatches()
		approx, approxFound := New(seq, pattern, 0).ApproximateMatches()

		assert.Equal(t, approx, exact, "seq=%s pattern=%s", seq, pattern)
		assert.Equal(t, approxFound, exactFound, "seq=%s pattern=%s", seq, pattern)
	}
}

func TestApproximateMatchesMonotonicInTolerance(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	for i := 0; i < 100; i++ {
		seq := randomSeq(r, 10+r.Intn(50))
		pattern := randomSeq(r, 1+r.Intn(6))

		for tol := 0; tol < len(pattern); tol++ {
			lower, _ := New(seq, pattern, tol).ApproximateMatches()
			higher, _ := New(seq, pattern, tol+1).ApproximateMatches()
			assert.Subset(t, higher, lower, "seq=%s pattern=%s tolerance=%d", seq, pattern, tol)
		}
	}
}

func TestResultsIgnoreCase(t *testing.T) {
	upper := New(exampleSeq+"GTATACTAACGAC", "TGT", 1)
	lower := New(strings.ToLower(exampleSeq+"GTATACTAACGAC"), "tgt", 1)

	upperApprox, _ := upper.ApproximateMatches()
	lowerApprox, _ := lower.ApproximateMatches()
	assert.Equal(t, upperApprox, lowerApprox)

	upperExact, _ := upper.ExactMatches()
	lowerExact, _ := lower.ExactMatches()
	assert.Equal(t, upperExact, lowerExact)

	upperIntron, upperFound := upper.FindIntron()
	lowerIntron, lowerFound := lower.FindIntron()
	assert.True(t, upperFound)
	assert.Equal(t, upperFound, lowerFound)
	assert.Equal(t, upperIntron, lowerIntron)

	assert.Equal(t, upper.CountKmer("AA"), lower.CountKmer("aa"))

	upperKmers, err := upper.MostFrequentKmers(3)
	require.NoError(t, err)
	lowerKmers, err := lower.MostFrequentKmers(3)
	require.NoError(t, err)
	assert.Equal(t, upperKmers, lowerKmers)
}

func TestMostFrequentKmersAreMaximal(t *testing.T) {
	s := New(exampleSeq, "", 0)

	freqs, err := s.KmerFrequencies(3)
	require.NoError(t, err)
	top, err := s.MostFrequentKmers(3)
	require.NoError(t, err)
	require.NotEmpty(t, top)

	max := freqs[top[0]]
	for _, kmer := range top {
		assert.Equal(t, max, freqs[kmer])
		assert.Equal(t, max, s.CountKmer(kmer))
	}
	for kmer, count := range freqs {
		if count == max {
			assert.Contains(t, top, kmer)
			continue
		}
		assert.Less(t, count, max, "%s outside the most frequent set", kmer)
		assert.NotContains(t, top, kmer)
	}
}

func TestSessionIsSafeForConcurrentUse(t *testing.T) {
	s := New(exampleSeq, "TGT", 1)
	want, _ := s.ApproximateMatches()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, _ := s.ApproximateMatches()
			assert.Equal(t, want, got)
			_, err := s.MostFrequentKmers(2)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
}
