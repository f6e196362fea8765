// Command goyaml is a small command-line front end for the goyaml
// library: it can validate, reformat, and inspect YAML documents.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is overridden at build time via -ldflags.
var Version = "dev"

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "goyaml",
	Short: "Parse, validate, and reformat YAML documents",
	Long: `goyaml is a command-line front end for the goyaml library.

It exposes the library's scanner, parser, schema resolver, and
serializer as a set of small subcommands for scripting and ad hoc
inspection of YAML documents.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			logrus.SetLevel(logrus.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func main() {
	Execute()
}
