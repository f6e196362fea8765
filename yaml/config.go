package yaml

import "github.com/pkg/errors"

// LoadOptionsFile reads a small YAML document at path and turns it into
// a SerializeOptions, following the load -> apply-defaults -> validate
// shape used elsewhere for config loading. Recognized keys:
//
//	indent_size: 2
//	compact_sequences: false
//	compact_mappings: false
//	flow_threshold: 60
//
// Unknown keys are ignored. Missing keys keep DefaultSerializeOptions'
// values.
func LoadOptionsFile(path string) (SerializeOptions, error) {
	opts := DefaultSerializeOptions()

	parsed, err := ParseFromFile(path)
	if err != nil {
		return opts, errors.Wrapf(err, "goyaml: load options file %s", path)
	}
	defer parsed.Close()

	root := parsed.Root
	if root.Kind() != KindMapping {
		if root.IsNull() {
			return opts, nil
		}
		return opts, errorf(ErrInvalidSyntax, Position{}, "options file %s must be a mapping", path)
	}

	if v := root.Get("indent_size"); v != nil {
		n, err := v.AsInt()
		if err != nil {
			return opts, errors.Wrapf(err, "goyaml: options file %s: indent_size", path)
		}
		if n <= 0 {
			return opts, errorf(ErrInvalidSyntax, Position{}, "options file %s: indent_size must be positive", path)
		}
		opts.IndentSize = uint(n)
	}
	if v := root.Get("compact_sequences"); v != nil {
		b, err := v.AsBool()
		if err != nil {
			return opts, errors.Wrapf(err, "goyaml: options file %s: compact_sequences", path)
		}
		opts.CompactSequences = b
	}
	if v := root.Get("compact_mappings"); v != nil {
		b, err := v.AsBool()
		if err != nil {
			return opts, errors.Wrapf(err, "goyaml: options file %s: compact_mappings", path)
		}
		opts.CompactMappings = b
	}
	if v := root.Get("flow_threshold"); v != nil {
		n, err := v.AsInt()
		if err != nil {
			return opts, errors.Wrapf(err, "goyaml: options file %s: flow_threshold", path)
		}
		if n < 0 {
			return opts, errorf(ErrInvalidSyntax, Position{}, "options file %s: flow_threshold must not be negative", path)
		}
		opts.FlowThreshold = uint(n)
	}

	return opts, nil
}
