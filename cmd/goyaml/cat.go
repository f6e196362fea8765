package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat [file]",
	Short: "Print a document's parsed structure as a debug tree; reads stdin when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}

	parsed, _, err := parseArgOrStdin(path)
	if err != nil {
		return err
	}
	defer parsed.Close()

	fmt.Print(parsed.Root.Dump())
	return nil
}
