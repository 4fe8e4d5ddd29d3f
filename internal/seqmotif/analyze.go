// Package seqmotif is for running motif analyses from the command line:
// parsing input sequences and settings, and writing results
package seqmotif

import (
	"io"
	"strings"
	"time"

	"github.com/jjtimmons/seqmotif/config"
	"github.com/jjtimmons/seqmotif/internal/motif"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const (
	forward = "+"
	reverse = "-"
)

// Report is the result of every analysis on one strand of a sequence.
// Analyses that found nothing are null in JSON output
type Report struct {
	// ID of the analyzed sequence
	ID string `json:"id"`

	// Strand is "+" for the input sequence and "-" for its reverse complement
	Strand string `json:"strand"`

	// Pattern searched for
	Pattern string `json:"pattern"`

	// Tolerance is the max mismatches in an approximate match
	Tolerance int `json:"tolerance"`

	// ApproximateMatches are the starts of windows within Tolerance of Pattern
	ApproximateMatches []int `json:"approximateMatches"`

	// ExactMatches are the starts of windows equal to Pattern
	ExactMatches []int `json:"exactMatches"`

	// Intron is the leftmost intron consensus
	Intron *motif.Span `json:"intron"`

	// Kmer that was counted, if any
	Kmer string `json:"kmer,omitempty"`

	// KmerCount is the number of occurrences of Kmer
	KmerCount *int `json:"kmerCount,omitempty"`

	// K is the length of the most frequent k-mers
	K int `json:"k"`

	// FrequentKmers are the k-mers tied for the most occurrences
	FrequentKmers []string `json:"frequentKmers"`
}

// AnalyzeCmd takes a cobra command (with its flags) and runs every analysis.
func AnalyzeCmd(cmd *cobra.Command, args []string) error {
	conf, in, _, err := setup(args)
	if err != nil {
		return err
	}

	start := time.Now()
	reports, err := Analyze(in, conf)
	if err != nil {
		return err
	}
	if conf.Verbose {
		stderr.Printf("analyzed %s (%d bp) in %s", in.ID, len(in.Seq), time.Since(start))
	}

	return output(conf, func(w io.Writer) error {
		if conf.JSON {
			return writeJSON(w, reports)
		}
		return writeReports(w, reports)
	})
}

// Analyze runs every analysis on the input, and on its reverse complement
// if that's enabled, and returns a Report per strand
func Analyze(in *Input, conf *config.Config) ([]*Report, error) {
	var reports []*Report
	for _, st := range strands(in, conf) {
		r, err := analyze(in, st.session, st.name, conf)
		if err != nil {
			return nil, err
		}
		reports = append(reports, r)
	}
	return reports, nil
}

// analyze runs the analyses on one strand concurrently. Each writes
// to its own field of the report
func analyze(in *Input, s *motif.Session, strand string, conf *config.Config) (*Report, error) {
	r := &Report{
		ID:        in.ID,
		Strand:    strand,
		Pattern:   s.Pattern(),
		Tolerance: s.Tolerance(),
		K:         conf.K,
	}

	var g errgroup.Group
	g.Go(func() error {
		r.ApproximateMatches, _ = s.ApproximateMatches()
		return nil
	})
	g.Go(func() error {
		r.ExactMatches, _ = s.ExactMatches()
		return nil
	})
	g.Go(func() error {
		if span, found := s.FindIntronSpan(); found {
			r.Intron = &span
		}
		return nil
	})
	if conf.Kmer != "" {
		g.Go(func() error {
			count := s.CountKmer(conf.Kmer)
			r.Kmer = strings.ToUpper(conf.Kmer)
			r.KmerCount = &count
			return nil
		})
	}
	g.Go(func() error {
		kmers, err := s.MostFrequentKmers(conf.K)
		r.FrequentKmers = kmers
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return r, nil
}

// strand is a named session over one strand of the input
type strand struct {
	name    string
	session *motif.Session
}

// strands returns a session for the input and, if enabled, its reverse complement
func strands(in *Input, conf *config.Config) []strand {
	s := motif.New(in.Seq, conf.Pattern, conf.Tolerance)

	strands := []strand{{forward, s}}
	if conf.ReverseComplement {
		strands = append(strands, strand{reverse, s.ReverseComplement()})
	}
	return strands
}

// setup parses the settings and the input sequence shared by every command
func setup(args []string) (conf *config.Config, in *Input, rest []string, err error) {
	if conf, err = config.New(); err != nil {
		return nil, nil, nil, err
	}

	if in, rest, err = parseInput(args, conf); err != nil {
		return nil, nil, nil, err
	}

	if conf.Verbose {
		stderr.Printf("sequence %s: %d bp, pattern %q, tolerance %d", in.ID, len(in.Seq), conf.Pattern, conf.Tolerance)
	}
	return conf, in, rest, nil
}
