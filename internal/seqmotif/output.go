package seqmotif

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/jjtimmons/seqmotif/config"
)

// none is written in place of results for searches that found nothing
const none = "none"

// output calls write with the out file if one was set, otherwise stdout
func output(conf *config.Config, write func(w io.Writer) error) error {
	if conf.Out == "" {
		return write(os.Stdout)
	}

	f, err := os.Create(conf.Out)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}

	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// writeJSON writes v as indented JSON
func writeJSON(w io.Writer, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize the results: %w", err)
	}

	_, err = fmt.Fprintf(w, "%s\n", b)
	return err
}

// writeReports writes a table of every analysis for each strand
func writeReports(w io.Writer, reports []*Report) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)

	for i, r := range reports {
		if i > 0 {
			fmt.Fprintln(tw)
		}

		intron := none
		if r.Intron != nil {
			intron = strconv.Itoa(r.Intron.Start)
		}

		fmt.Fprintf(tw, "DNA Pattern Analysis: %s (%s)\n", r.ID, r.Strand)
		fmt.Fprintf(tw, "[1] Approximate matches found at index:\t%s\n", positions(r.ApproximateMatches))
		fmt.Fprintf(tw, "[2] Exact matches found at:\t%s\n", positions(r.ExactMatches))
		fmt.Fprintf(tw, "[3] Introns found at:\t%s\n", intron)
		if r.KmerCount != nil {
			fmt.Fprintf(tw, "[4] K-mer Count (%s):\t%d\n", r.Kmer, *r.KmerCount)
		}
		fmt.Fprintf(tw, "[5] Most Frequent %d-mers:\t%s\n", r.K, kmers(r.FrequentKmers))
	}

	return tw.Flush()
}

// writeResults writes a table of search results, a row per strand
func writeResults(w io.Writer, label string, results []Result) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)

	fmt.Fprintf(tw, "id\tstrand\t%s\t\n", label)
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t\n", r.ID, r.Strand, positions(r.Positions))
	}

	return tw.Flush()
}

// writeKmerCounts writes a table of k-mer counts, a row per strand
func writeKmerCounts(w io.Writer, counts []KmerCount) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)

	fmt.Fprintf(tw, "id\tstrand\tkmer\tcount\t\n")
	for _, c := range counts {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t\n", c.ID, c.Strand, c.Kmer, c.Count)
	}

	return tw.Flush()
}

// writeKmerFrequencies writes the most frequent k-mers of each strand and their count
func writeKmerFrequencies(w io.Writer, freqs []KmerFrequencies) error {
	tw := tabwriter.NewWriter(w, 0, 4, 3, ' ', 0)

	fmt.Fprintf(tw, "id\tstrand\tk\tcount\tmost frequent\t\n")
	for _, f := range freqs {
		count := 0
		if len(f.Ranked) > 0 {
			count = f.Ranked[0].Count
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t\n", f.ID, f.Strand, f.K, count, kmers(f.Most))
	}

	return tw.Flush()
}

// positions formats match positions, or "none" if there aren't any
func positions(ps []int) string {
	if ps == nil {
		return none
	}

	strs := make([]string, len(ps))
	for i, p := range ps {
		strs[i] = strconv.Itoa(p)
	}
	return strings.Join(strs, " ")
}

// kmers formats a set of k-mers, or "none" if it's empty
func kmers(ks []string) string {
	if len(ks) == 0 {
		return none
	}
	return strings.Join(ks, " ")
}
