package cmd

import (
	"github.com/jjtimmons/seqmotif/internal/seqmotif"
	"github.com/spf13/cobra"
)

// kmersCmd is for k-mer statistics.
var kmersCmd = &cobra.Command{
	Use:                        "kmers",
	Short:                      "Count k-mers in a sequence",
	SuggestionsMinimumDistance: 2,
	Long:                       `Count a k-mer in a sequence or find its most frequent k-mers.`,
	Aliases:                    []string{"kmer"},
}

// kmerCountCmd counts occurrences of a single k-mer.
var kmerCountCmd = &cobra.Command{
	Use:                        "count [kmer] [sequence]",
	Short:                      "Count occurrences of a k-mer, overlaps included",
	RunE:                       seqmotif.KmerCountCmd,
	Args:                       cobra.MaximumNArgs(2),
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqmotif kmers count AA AAAGAAAATGTGCTTCGAAATCGTA",
}

// kmerFrequentCmd finds the most frequent k-mers.
var kmerFrequentCmd = &cobra.Command{
	Use:                        "frequent [sequence]",
	Short:                      "Find the most frequent k-mers of length k",
	RunE:                       seqmotif.FrequentKmersCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqmotif kmers frequent -k 3 --plot kmers.png AAAGAAAATGTGCTTCGAAATCGTA",
	Long: `Find all the k-mers tied for the most occurrences in the sequence.
If k is longer than the sequence there are no k-mers and "none" is written.`,
	Aliases: []string{"top", "most"},
}

// set flags
func init() {
	kmerFrequentCmd.Flags().String("plot", "", "file to save a bar chart of k-mer counts to (png, svg, pdf). With --revcomp the reverse strand's is saved beside it as <name>.revcomp.<ext>")
	kmerFrequentCmd.Flags().Int("top", 20, "number of k-mers in the plot")

	kmersCmd.AddCommand(kmerCountCmd)
	kmersCmd.AddCommand(kmerFrequentCmd)

	RootCmd.AddCommand(kmersCmd)
}
