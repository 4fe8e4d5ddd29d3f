package cmd

import (
	"github.com/jjtimmons/seqmotif/internal/seqmotif"
	"github.com/spf13/cobra"
)

// analyzeCmd runs every analysis against a sequence
var analyzeCmd = &cobra.Command{
	Use:                        "analyze [sequence]",
	Short:                      "Run every analysis against a sequence",
	RunE:                       seqmotif.AnalyzeCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqmotif analyze --pattern TGT --tolerance 1 --kmer AA -k 3 AAAGAAAATGTGCTTCGAAATCGTA",
	Long: `Find approximate and exact matches of the pattern, the first intron
consensus, the count of a k-mer (if --kmer is set) and the most frequent k-mers
of length k.

The sequence is either the argument or the first sequence in the --in file.
Searches that find nothing are reported as "none" (null in JSON).`,
	Aliases: []string{"all"},
}

// set flags
func init() {
	RootCmd.AddCommand(analyzeCmd)
}
