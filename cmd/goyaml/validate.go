package main

import (
	"fmt"

	"github.com/inge4pres/goyaml/yaml"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]...",
	Short: "Parse each file and report success or the first error; reads stdin when none is given",
	Args:  cobra.ArbitraryArgs,
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
	if len(args) == 0 {
		args = []string{""}
	}

	var failed int
	for _, arg := range args {
		parsed, label, err := parseArgOrStdin(arg)
		if err != nil {
			failed++
			if kind, ok := yaml.AsError(err); ok {
				fmt.Printf("%s: %s: %s\n", label, kind.Kind, kind.Msg)
			} else {
				fmt.Printf("%s: %v\n", label, err)
			}
			continue
		}
		parsed.Close()
		fmt.Printf("%s: ok\n", label)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d files failed to parse", failed, len(args))
	}
	return nil
}
