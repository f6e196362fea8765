package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// yamlVersion is the YAML revision this tool reads and writes.
const yamlVersion = "1.2.2"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and YAML revision info",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goyaml %s (yaml %s)\n", Version, yamlVersion)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
