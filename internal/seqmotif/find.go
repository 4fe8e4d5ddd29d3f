package seqmotif

import (
	"io"

	"github.com/jjtimmons/seqmotif/config"
	"github.com/jjtimmons/seqmotif/internal/motif"
	"github.com/spf13/cobra"
)

// Result is the outcome of a single search on one strand.
type Result struct {
	// ID of the searched sequence
	ID string `json:"id"`

	// Strand is "+" for the input sequence and "-" for its reverse complement
	Strand string `json:"strand"`

	// Positions are the starts of the matches, null if there were none
	Positions []int `json:"positions"`

	// Span of an intron match
	Span *motif.Span `json:"span,omitempty"`
}

// search is one of the searches on a session
type search func(s *motif.Session) Result

// approximate finds windows within the tolerance of the pattern
func approximate(s *motif.Session) Result {
	positions, _ := s.ApproximateMatches()
	return Result{Positions: positions}
}

// exact finds windows equal to the pattern
func exact(s *motif.Session) Result {
	positions, _ := s.ExactMatches()
	return Result{Positions: positions}
}

// intron finds the leftmost intron consensus
func intron(s *motif.Session) Result {
	span, found := s.FindIntronSpan()
	if !found {
		return Result{}
	}
	return Result{Positions: []int{span.Start}, Span: &span}
}

// ApproximateCmd finds approximate matches of the pattern.
func ApproximateCmd(cmd *cobra.Command, args []string) error {
	return searchCmd(args, approximate, "Approximate matches found at index")
}

// ExactCmd finds exact matches of the pattern, overlapping ones included.
func ExactCmd(cmd *cobra.Command, args []string) error {
	return searchCmd(args, exact, "Exact matches found at")
}

// IntronCmd finds the first intron consensus.
func IntronCmd(cmd *cobra.Command, args []string) error {
	return searchCmd(args, intron, "Introns found at")
}

// searchCmd runs a search on each strand and writes the results
func searchCmd(args []string, find search, label string) error {
	conf, in, _, err := setup(args)
	if err != nil {
		return err
	}

	results := searchStrands(in, conf, find)
	return output(conf, func(w io.Writer) error {
		if conf.JSON {
			return writeJSON(w, results)
		}
		return writeResults(w, label, results)
	})
}

// searchStrands runs a search against every strand of the input
func searchStrands(in *Input, conf *config.Config, find search) (results []Result) {
	for _, st := range strands(in, conf) {
		r := find(st.session)
		r.ID = in.ID
		r.Strand = st.name
		results = append(results, r)
	}
	return
}
