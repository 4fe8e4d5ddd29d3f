package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const example = "AAAGAAAATGTGCTTCGAAATCGTA"

// run executes the root command with args and decodes its JSON output into v.
// Persistent flags keep their values between executions so each is reset
// before the test's own args
func run(t *testing.T, v interface{}, args ...string) error {
	t.Helper()

	out := filepath.Join(t.TempDir(), "out.json")
	reset := []string{
		"--json=true",
		"--out=" + out,
		"--pattern=",
		"--tolerance=1",
		"--k=3",
		"--kmer=",
		"--in=",
		"--revcomp=false",
	}

	RootCmd.SetArgs(append(reset, args...))
	if err := RootCmd.Execute(); err != nil {
		return err
	}

	written, err := os.ReadFile(out)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(written, v))
	return nil
}

func Test_analyzeCmd(t *testing.T) {
	var reports []struct {
		ApproximateMatches []int       `json:"approximateMatches"`
		ExactMatches       []int       `json:"exactMatches"`
		Intron             interface{} `json:"intron"`
		KmerCount          int         `json:"kmerCount"`
		FrequentKmers      []string    `json:"frequentKmers"`
	}

	err := run(t, &reports, "analyze", example, "-p", "TGT", "--kmer", "AA")
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, []int{8, 10, 21}, reports[0].ApproximateMatches)
	assert.Equal(t, []int{8}, reports[0].ExactMatches)
	assert.Nil(t, reports[0].Intron)
	assert.Equal(t, 7, reports[0].KmerCount)
	assert.Equal(t, []string{"AAA"}, reports[0].FrequentKmers)
}

func Test_findCmd(t *testing.T) {
	type result struct {
		Strand    string `json:"strand"`
		Positions []int  `json:"positions"`
	}

	var exact []result
	require.NoError(t, run(t, &exact, "find", "exact", "AAA", "-p", "aa"))
	assert.Equal(t, []result{{"+", []int{0, 1}}}, exact)

	var approx []result
	require.NoError(t, run(t, &approx, "find", "approx", example, "-p", "TGT", "-r"))
	assert.Equal(t, []result{{"+", []int{8, 10, 21}}, {"-", []int{5, 17, 18, 20, 22}}}, approx)

	in := filepath.Join(t.TempDir(), "intron.fa")
	require.NoError(t, os.WriteFile(in, []byte(">intron\nCCGTATACTAACGACTT\n"), 0644))

	var introns []result
	require.NoError(t, run(t, &introns, "find", "intron", "-i", in))
	assert.Equal(t, []result{{"+", []int{2}}}, introns)
}

func Test_kmersCmd(t *testing.T) {
	var counts []struct {
		Kmer  string `json:"kmer"`
		Count int    `json:"count"`
	}
	require.NoError(t, run(t, &counts, "kmers", "count", "aa", "AAA"))
	require.Len(t, counts, 1)
	assert.Equal(t, "AA", counts[0].Kmer)
	assert.Equal(t, 2, counts[0].Count)

	var freqs []struct {
		Most []string `json:"most"`
	}
	require.NoError(t, run(t, &freqs, "kmers", "frequent", example, "-k", "2"))
	require.Len(t, freqs, 1)
	assert.Equal(t, []string{"AA"}, freqs[0].Most)

	require.NoError(t, run(t, &freqs, "kmers", "frequent", "ACG", "-k", "10"))
	assert.Empty(t, freqs[0].Most)

	var ignored interface{}
	assert.Error(t, run(t, &ignored, "kmers", "frequent", example, "-k", "0"))
	assert.Error(t, run(t, &ignored, "kmers", "count", example))
	assert.Error(t, run(t, &ignored, "find", "approximate", example, "-t", "-1"))
}

func Test_kmersCmd_plot(t *testing.T) {
	t.Cleanup(func() { _ = kmerFrequentCmd.Flags().Set("plot", "") })

	dir := t.TempDir()
	plot := filepath.Join(dir, "kmers.png")

	// both strands are plotted
	var freqs []struct {
		Strand string   `json:"strand"`
		Most   []string `json:"most"`
	}
	require.NoError(t, run(t, &freqs, "kmers", "frequent", example, "-k", "3", "-r", "--plot", plot))
	require.Len(t, freqs, 2)
	assert.FileExists(t, plot)
	assert.FileExists(t, filepath.Join(dir, "kmers.revcomp.png"))

	// k longer than the sequence has no k-mers to plot, and it's not an error
	empty := filepath.Join(dir, "empty.png")
	require.NoError(t, run(t, &freqs, "kmers", "frequent", "ACG", "-k", "10", "--plot", empty))
	require.Len(t, freqs, 1)
	assert.Empty(t, freqs[0].Most)
	assert.NoFileExists(t, empty)
}

func Test_extraArgs(t *testing.T) {
	var ignored interface{}
	for _, args := range [][]string{
		{"analyze", "AA", "AAA"},
		{"find", "exact", "AA", "AAA"},
		{"find", "approximate", "AA", "AAA"},
		{"find", "intron", "AA", "AAA"},
		{"kmers", "frequent", "AA", "AAA"},
		{"kmers", "count", "AA", "AAA", "AAAA"},
	} {
		assert.Error(t, run(t, &ignored, args...), args)
	}

	var counts []struct {
		Count int `json:"count"`
	}
	in := filepath.Join(t.TempDir(), "in.fa")
	require.NoError(t, os.WriteFile(in, []byte(">in\nAAA\n"), 0644))
	require.NoError(t, run(t, &counts, "kmers", "count", "-i", in, "--kmer", "AA"))
	require.Len(t, counts, 1)
	assert.Equal(t, 2, counts[0].Count)
}

func Test_makeDocs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, makeDocs(dir))

	page, err := os.ReadFile(filepath.Join(dir, "seqmotif_find_intron.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(page), "---\nlayout: default\ntitle: intron\nparent: find\ngrand_parent: seqmotif\nnav_order: 2\n---\n"))

	root, err := os.ReadFile(filepath.Join(dir, "seqmotif.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(root), "---\nlayout: default\ntitle: seqmotif\nnav_order: 0\nhas_children: true\npermalink: /\n---\n"))

	kmers, err := os.ReadFile(filepath.Join(dir, "seqmotif_kmers.md"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(kmers), "---\nlayout: default\ntitle: kmers\nparent: seqmotif\nnav_order: 2\nhas_children: true\n---\n"))

	// hidden commands don't get pages
	assert.NoFileExists(t, filepath.Join(dir, "seqmotif_completion.md"))
	assert.NoFileExists(t, filepath.Join(dir, "seqmotif_docs.md"))
}
