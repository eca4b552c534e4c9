// Package cmd implements a small command-line demonstrator for the
// namedb adaptive radix tree: put, get and walk over an in-memory tree
// that lives for the duration of the process.
package cmd

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/k0ekk0ek/namedb"
)

// nolint: gochecknoglobals
var (
	verbose bool

	// tree is the single tree every subcommand operates against. A real
	// program would thread this through explicitly; a demonstrator gets
	// away with a package global.
	tree = namedb.NewTree[string]()

	// RootCmd represents the base command when called without any subcommands.
	RootCmd = &cobra.Command{
		Use:   "namedb",
		Short: "Demonstrate an adaptive radix tree keyed by DNS names",
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogging(verbose)
		},
	}
)

// Execute adds all child commands to the root command and runs it. Called by
// main.main(); only needs to happen once.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		RootCmd.PrintErr(err)
		os.Exit(-1)
	}
}

func init() {
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// configureLogging sets up a console-writer zerolog logger, following the
// same console/structured split dadrus-heimdall/logging draws — a CLI
// demonstrator only ever needs the human-readable side of it.
func configureLogging(verbose bool) {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
}
