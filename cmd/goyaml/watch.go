package main

import (
	"fmt"

	"github.com/inge4pres/goyaml/yaml"
	"github.com/spf13/cobra"
)

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Reparse a file every time it changes and print the result",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	w, err := yaml.WatchFile(args[0])
	if err != nil {
		return err
	}
	defer w.Close()

	for ev := range w.Events {
		if ev.Err != nil {
			fmt.Printf("error: %v\n", ev.Err)
			continue
		}
		fmt.Printf("trace=%s\n%s", ev.Parsed.TraceID, ev.Parsed.Root.Dump())
		ev.Parsed.Close()
	}
	return nil
}
