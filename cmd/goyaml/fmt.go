package main

import (
	"fmt"
	"os"

	"github.com/inge4pres/goyaml/yaml"
	"github.com/spf13/cobra"
)

var fmtFlags struct {
	write            bool
	indentSize       uint
	compactSequences bool
	compactMappings  bool
	flowThreshold    uint
}

var fmtCmd = &cobra.Command{
	Use:   "fmt [file]",
	Short: "Reformat a YAML document to canonical style; reads stdin when no file is given",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runFmt,
}

func init() {
	rootCmd.AddCommand(fmtCmd)

	fmtCmd.Flags().BoolVarP(&fmtFlags.write, "write", "w", false, "write the result back to the file instead of stdout")
	fmtCmd.Flags().UintVar(&fmtFlags.indentSize, "indent", 2, "spaces per block nesting level")
	fmtCmd.Flags().BoolVar(&fmtFlags.compactSequences, "compact-sequences", false, "render short sequences in flow style")
	fmtCmd.Flags().BoolVar(&fmtFlags.compactMappings, "compact-mappings", false, "render short mappings in flow style")
	fmtCmd.Flags().UintVar(&fmtFlags.flowThreshold, "flow-threshold", 60, "character budget for compact flow rendering")
}

func runFmt(cmd *cobra.Command, args []string) error {
	var path string
	if len(args) == 1 {
		path = args[0]
	}
	if fmtFlags.write && path == "" {
		return fmt.Errorf("--write requires a file argument, not stdin")
	}

	parsed, _, err := parseArgOrStdin(path)
	if err != nil {
		return err
	}
	defer parsed.Close()

	opts := yaml.SerializeOptions{
		IndentSize:       fmtFlags.indentSize,
		CompactSequences: fmtFlags.compactSequences,
		CompactMappings:  fmtFlags.compactMappings,
		FlowThreshold:    fmtFlags.flowThreshold,
	}

	out, err := yaml.WriteWithOptions(parsed.Root, opts)
	if err != nil {
		return err
	}

	if fmtFlags.write {
		return os.WriteFile(path, []byte(out), 0o644)
	}
	fmt.Print(out)
	return nil
}
