package seqmotif

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/jjtimmons/seqmotif/config"
	"github.com/jjtimmons/seqmotif/internal/motif"
	"github.com/spf13/cobra"
)

// KmerCount is the number of occurrences of a k-mer on one strand.
type KmerCount struct {
	ID     string `json:"id"`
	Strand string `json:"strand"`
	Kmer   string `json:"kmer"`
	Count  int    `json:"count"`
}

// KmerFrequencies are the k-mers of one strand, most frequent first.
type KmerFrequencies struct {
	ID     string `json:"id"`
	Strand string `json:"strand"`
	K      int    `json:"k"`

	// Most are the k-mers tied for the most occurrences
	Most []string `json:"most"`

	// Ranked is every k-mer and its count, by descending count
	Ranked []motif.KmerCount `json:"ranked"`
}

// KmerCountCmd counts a k-mer in the sequence. The k-mer is either the
// first argument or the --kmer flag
func KmerCountCmd(cmd *cobra.Command, args []string) error {
	conf, in, rest, err := setup(args)
	if err != nil {
		return err
	}

	kmer := conf.Kmer
	if len(rest) > 0 {
		kmer = rest[0]
	}
	if kmer == "" {
		return fmt.Errorf("no k-mer passed: use an argument or --kmer")
	}

	counts := countKmer(in, conf, kmer)
	return output(conf, func(w io.Writer) error {
		if conf.JSON {
			return writeJSON(w, counts)
		}
		return writeKmerCounts(w, counts)
	})
}

// FrequentKmersCmd finds the most frequent k-mers of length --k in the sequence.
// If --plot is set, the counts of the most frequent k-mers are also
// plotted to that file, and those of the reverse strand to a file
// beside it (see strandPlotPath)
func FrequentKmersCmd(cmd *cobra.Command, args []string) error {
	conf, in, _, err := setup(args)
	if err != nil {
		return err
	}

	freqs, err := frequentKmers(in, conf)
	if err != nil {
		return err
	}

	plotPath, _ := cmd.Flags().GetString("plot")
	if plotPath != "" {
		top, _ := cmd.Flags().GetInt("top")
		if err := plotStrands(plotPath, freqs, top, conf.Verbose); err != nil {
			return err
		}
	}

	return output(conf, func(w io.Writer) error {
		if conf.JSON {
			return writeJSON(w, freqs)
		}
		return writeKmerFrequencies(w, freqs)
	})
}

// countKmer counts a k-mer on every strand of the input
func countKmer(in *Input, conf *config.Config, kmer string) (counts []KmerCount) {
	for _, st := range strands(in, conf) {
		counts = append(counts, KmerCount{
			ID:     in.ID,
			Strand: st.name,
			Kmer:   strings.ToUpper(kmer),
			Count:  st.session.CountKmer(kmer),
		})
	}
	return
}

// frequentKmers builds the k-mer frequency table of every strand of the input
func frequentKmers(in *Input, conf *config.Config) (freqs []KmerFrequencies, err error) {
	for _, st := range strands(in, conf) {
		table, err := st.session.KmerFrequencies(conf.K)
		if err != nil {
			return nil, err
		}

		most, err := st.session.MostFrequentKmers(conf.K)
		if err != nil {
			return nil, err
		}

		freqs = append(freqs, KmerFrequencies{
			ID:     in.ID,
			Strand: st.name,
			K:      conf.K,
			Most:   most,
			Ranked: motif.RankKmers(table),
		})
	}
	return freqs, nil
}

// plotStrands plots the k-mer counts of each strand. A strand without
// any k-mers has nothing to plot and is skipped with a warning
func plotStrands(path string, freqs []KmerFrequencies, top int, verbose bool) error {
	for _, f := range freqs {
		if len(f.Ranked) == 0 {
			stderr.Printf("warning: no %d-mers in %s (%s), skipping plot", f.K, f.ID, f.Strand)
			continue
		}

		out := strandPlotPath(path, f.Strand)
		if err := plotKmers(out, f, top); err != nil {
			return err
		}
		if verbose {
			stderr.Printf("wrote k-mer plot to %s", out)
		}
	}
	return nil
}

// strandPlotPath is the plot file for a strand. The forward strand is
// plotted to path, the reverse strand to path with ".revcomp" before
// its extension: kmers.png -> kmers.revcomp.png
func strandPlotPath(path, strand string) string {
	if strand == forward {
		return path
	}

	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + ".revcomp" + ext
}
