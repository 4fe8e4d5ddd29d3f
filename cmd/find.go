package cmd

import (
	"github.com/jjtimmons/seqmotif/internal/seqmotif"
	"github.com/spf13/cobra"
)

// findCmd is for searching a sequence for the pattern or an intron.
var findCmd = &cobra.Command{
	Use:                        "find",
	Short:                      "Find pattern matches or introns in a sequence",
	SuggestionsMinimumDistance: 2,
	Long: `Find the start index of approximate or exact matches of a pattern
in a sequence, or the start of the first intron consensus.`,
	Aliases: []string{"search"},
}

// approximateFindCmd is for finding windows within --tolerance mismatches of the pattern.
var approximateFindCmd = &cobra.Command{
	Use:                        "approximate [sequence]",
	Short:                      "Find matches of the pattern with up to --tolerance mismatches",
	RunE:                       seqmotif.ApproximateCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqmotif find approximate -p TGT -t 1 AAAGAAAATGTGCTTCGAAATCGTA",
	Long: `Find every window of the sequence, as long as the pattern, that differs
from the pattern at no more than --tolerance positions (Hamming distance).`,
	Aliases: []string{"approx", "fuzzy"},
}

// exactFindCmd is for finding exact, possibly overlapping, matches of the pattern.
var exactFindCmd = &cobra.Command{
	Use:                        "exact [sequence]",
	Short:                      "Find exact matches of the pattern",
	RunE:                       seqmotif.ExactCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqmotif find exact -p AA AAA",
	Long:                       `Find every start index of the pattern, overlapping matches included.`,
}

// intronFindCmd is for finding the first intron consensus.
var intronFindCmd = &cobra.Command{
	Use:                        "intron [sequence]",
	Short:                      "Find the first intron consensus",
	RunE:                       seqmotif.IntronCmd,
	Args:                       cobra.MaximumNArgs(1),
	SuggestionsMinimumDistance: 2,
	Example:                    "  seqmotif find intron CCGTATACTAACGACTT",
	Long: `Find the start of the leftmost intron consensus:

  GT, 1-10 bp, TACTAAC, 1-10 bp, AC`,
	Aliases: []string{"introns"},
}

// set flags
func init() {
	findCmd.AddCommand(approximateFindCmd)
	findCmd.AddCommand(exactFindCmd)
	findCmd.AddCommand(intronFindCmd)

	RootCmd.AddCommand(findCmd)
}
