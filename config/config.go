// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix is the prefix of environment variables that override settings,
	// ex: SEQMOTIF_TOLERANCE=2
	EnvPrefix = "SEQMOTIF"

	// DefaultTolerance is the number of mismatches allowed in an approximate match
	DefaultTolerance = 1

	// DefaultK is the k-mer length for frequent k-mer searches
	DefaultK = 3
)

// Config is the root-level settings struct and is a mix
// of settings available in a settings file, the environment, and
// those available from the command line
type Config struct {
	// In is the path to a FASTA or plain text file with the sequence
	In string `mapstructure:"in"`

	// Out is the path to write results to. Stdout if empty
	Out string `mapstructure:"out"`

	// Pattern is the pattern to search for in the sequence
	Pattern string `mapstructure:"pattern"`

	// Tolerance is the max hamming distance of an approximate match
	Tolerance int `mapstructure:"tolerance"`

	// K is the k-mer length when finding the most frequent k-mers
	K int `mapstructure:"k"`

	// Kmer is a k-mer to count in the sequence
	Kmer string `mapstructure:"kmer"`

	// ReverseComplement is whether to also analyze the reverse complement strand
	ReverseComplement bool `mapstructure:"revcomp"`

	// JSON is whether to write results as JSON rather than a table
	JSON bool `mapstructure:"json"`

	// Verbose is whether to log timing and session details
	Verbose bool `mapstructure:"verbose"`

	// Settings is the path to an optional YAML settings file
	Settings string `mapstructure:"settings"`
}

// AddFlags adds the flags for each setting to a flag set.
func AddFlags(fs *pflag.FlagSet) {
	fs.StringP("in", "i", "", "input FASTA or text file with the sequence")
	fs.StringP("out", "o", "", "output file name (default stdout)")
	fs.StringP("pattern", "p", "", "pattern to search for")
	fs.IntP("tolerance", "t", DefaultTolerance, "max mismatches in an approximate match")
	fs.IntP("k", "k", DefaultK, "k-mer length for the most frequent k-mers")
	fs.String("kmer", "", "k-mer to count")
	fs.BoolP("revcomp", "r", false, "also analyze the reverse complement strand")
	fs.BoolP("json", "j", false, "write results as JSON")
	fs.BoolP("verbose", "v", false, "log timing and session details to stderr")
	fs.StringP("settings", "s", "", "YAML settings file")
}

// New returns a new Config populated by the global Viper instance.
func New() (*Config, error) {
	return Load(viper.GetViper())
}

// Load unmarshalls a Config from a Viper instance. Flags bound to v take
// precedence over the environment, which takes precedence over the
// settings file
func Load(v *viper.Viper) (*Config, error) {
	v.SetDefault("tolerance", DefaultTolerance)
	v.SetDefault("k", DefaultK)
	for _, key := range []string{"in", "out", "pattern", "kmer", "settings"} {
		v.SetDefault(key, "")
	}
	for _, key := range []string{"revcomp", "json", "verbose"} {
		v.SetDefault(key, false)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if settings := v.GetString("settings"); settings != "" {
		v.SetConfigFile(settings)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file %s: %w", settings, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unable to decode settings: %w", err)
	}

	return &c, c.Validate()
}

// Validate returns an error if a setting can't be used in an analysis.
func (c *Config) Validate() error {
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %d", c.Tolerance)
	}
	if c.K < 1 {
		return fmt.Errorf("k must be at least 1, got %d", c.K)
	}
	return nil
}
