package main

import (
	"io"
	"os"

	"github.com/inge4pres/goyaml/yaml"
)

// stdinLabel is the display name used in place of a path when a
// document is read from standard input.
const stdinLabel = "<stdin>"

// parseArgOrStdin parses the file named by path, or standard input
// when path is empty, mirroring the fallback used by CLIs elsewhere in
// this ecosystem that accept an input file argument.
func parseArgOrStdin(path string) (*yaml.Parsed, string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, stdinLabel, err
		}
		parsed, err := yaml.ParseFromSlice(data)
		return parsed, stdinLabel, err
	}
	parsed, err := yaml.ParseFromFile(path)
	return parsed, path, err
}
