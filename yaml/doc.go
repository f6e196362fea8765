// Package yaml implements a YAML 1.2.2 reader and writer.
//
// It converts YAML text into an in-memory tagged value tree and
// serializes such trees back to conforming YAML. The package is split
// into three stages, in dependency order:
//
//   - Scanner: converts a byte stream into a stream of syntactic tokens,
//     respecting YAML's indentation- and flow-context-sensitive rules.
//   - Parser: consumes the token stream to build a tagged Value tree,
//     including JSON-Schema-based implicit type resolution for plain
//     scalars, anchor/alias expansion, and explicit tag overrides.
//   - Serializer: renders a Value tree back to YAML, using block style
//     with selective flow-style compaction.
//
// # Data model
//
// A Value is a tagged union over null, bool, int, float, string,
// sequence, and mapping. Mappings preserve insertion order and resolve
// duplicate keys last-write-wins.
//
// # Adapters
//
// Everything above is a pure function of its input, with no I/O; its
// only package-level state is a sync.Pool that recycles parser
// instances between parses. File, compression, filesystem-watch, metrics,
// logging, and options-file loading live in separate files
// (file.go, watch.go, metrics.go, log.go, config.go) that build on top
// of the core three stages rather than inside them.
//
// # Non-goals
//
// Multi-document streams, merge-key expansion (<<), custom tag
// handlers, and structural unmarshaling into Go types are not
// implemented. Comments and original scalar styles are not preserved
// across a parse/serialize round trip.
package yaml
