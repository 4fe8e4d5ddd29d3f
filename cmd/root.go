// Package cmd is for command line interactions with the seqmotif application
package cmd

import (
	"log"

	"github.com/jjtimmons/seqmotif/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "seqmotif",
	Short: `Find motifs in a DNA sequence: approximate and exact pattern matches,
intron consensus sequences, and frequent k-mers`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,

	// completion scripts are still available, but not listed or documented
	CompletionOptions: cobra.CompletionOptions{HiddenDefaultCmd: true},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}

// set flags
func init() {
	// settings shared by every command, bound to viper so they
	// can also come from the environment or a settings file
	config.AddFlags(RootCmd.PersistentFlags())
	if err := viper.BindPFlags(RootCmd.PersistentFlags()); err != nil {
		log.Fatalf("failed to bind flags: %v", err)
	}
}
