package yaml

import (
	"sync"

	"github.com/google/uuid"
)

// parserPool recycles parser structs (and the scanners they own) across
// calls to ParseFromSlice, grounded in the sync.Pool idiom used for
// scratch buffers elsewhere in this codebase's lineage.
var parserPool = sync.Pool{
	New: func() interface{} { return newParser(nil) },
}

// Parsed is the handle returned by a successful parse. It owns the
// pooled parser (its scanner buffers and anchor table) until Close is
// called, at which point that storage is returned to the shared pool.
// The zero value is not usable; obtain one from ParseFromSlice,
// ParseFromFile, or a Watcher.
type Parsed struct {
	// Root is the parsed document's top-level Value.
	Root *Value

	// TraceID correlates a single parse with logs and metrics emitted
	// by an adapter (file.go, watch.go). It is the zero UUID for
	// ParseFromSlice, which is a pure function of its input and never
	// generates one itself.
	TraceID uuid.UUID

	pooled *parser
	closed bool
}

// Close returns this Parsed's pooled scanner/parser to the shared pool.
// It is safe to call more than once, and safe to never call: nothing
// beyond pool reuse depends on it, since Go's garbage collector, not
// manual arena bookkeeping, owns the Value tree's memory.
func (pd *Parsed) Close() error {
	if pd == nil || pd.closed {
		return nil
	}
	pd.closed = true
	if pd.pooled != nil {
		parserPool.Put(pd.pooled)
		pd.pooled = nil
	}
	return nil
}

// ParseFromSlice parses a single YAML document from input and returns
// its root Value wrapped in a Parsed handle. Parsing is a pure function
// of input: no I/O, no correlation ID, no logging.
func ParseFromSlice(input []byte) (*Parsed, error) {
	pp := parserPool.Get().(*parser)
	pp.reset(input)

	root, err := pp.parseDocument()
	if err != nil {
		parserPool.Put(pp)
		return nil, err
	}

	return &Parsed{Root: root, pooled: pp}, nil
}
