package seqmotif

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
	"github.com/jjtimmons/seqmotif/config"
)

var (
	// stderr is for logging to Stderr (without an annoying timestamp)
	stderr = log.New(os.Stderr, "", 0)
)

// Input is a named sequence to analyze.
type Input struct {
	// ID is the sequence's name. In >example_CDS FASTA its "example_CDS"
	ID string `json:"id"`

	// Seq is the sequence itself
	Seq string `json:"-"`
}

// parseInput gets the sequence to analyze. It's read from the "in" file if
// one was set, otherwise it's the last positional argument. The remaining
// arguments are returned
func parseInput(args []string, conf *config.Config) (in *Input, rest []string, err error) {
	if conf.In != "" {
		in, err = read(conf.In)
		return in, args, err
	}

	if len(args) < 1 {
		return nil, nil, fmt.Errorf("no sequence passed: use an argument or --in")
	}

	last := len(args) - 1
	seq := strings.Join(strings.Fields(args[last]), "")
	return &Input{ID: "input", Seq: seq}, args[:last], nil
}

// read a FASTA or plain text file (by its path on local FS) to an Input.
// Only the first sequence of a multi-FASTA file is used
func read(path string) (*Input, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create path to input file: %w", err)
		}
		path = abs
	}

	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	if bytes.HasPrefix(bytes.TrimSpace(dat), []byte(">")) {
		inputs, err := readFasta(path, dat)
		if err != nil {
			return nil, err
		}

		if len(inputs) > 1 {
			stderr.Printf(
				"warning: %d sequences were in %s. Only analyzing the first: %s\n",
				len(inputs),
				path,
				inputs[0].ID,
			)
		}
		return inputs[0], nil
	}

	// plain text, everything but whitespace is sequence
	seq := strings.Join(strings.Fields(string(dat)), "")
	if seq == "" {
		return nil, fmt.Errorf("failed to parse a sequence from %s", path)
	}

	return &Input{ID: strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)), Seq: seq}, nil
}

// readFasta parses the contents of a multi-FASTA file to Inputs
func readFasta(path string, contents []byte) (inputs []*Input, err error) {
	template := linear.NewSeq("", nil, alphabet.DNAredundant)
	sc := seqio.NewScanner(fasta.NewReader(bytes.NewReader(contents), template))

	for sc.Next() {
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("failed to parse %s: unexpected sequence type %T", path, sc.Seq())
		}

		seq := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			seq[i] = byte(l)
		}

		inputs = append(inputs, &Input{ID: s.Name(), Seq: string(seq)})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// opened and parsed file but found nothing
	if len(inputs) < 1 {
		return nil, fmt.Errorf("failed to parse sequence(s) from %s", path)
	}

	return inputs, nil
}
