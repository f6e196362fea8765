package yaml

import (
	"bytes"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
)

// ParseFromFile reads path, transparently decompressing a .gz or .zst
// suffix, and parses its contents as a single YAML document. Unlike
// ParseFromSlice, this is an I/O-driving adapter: it stamps the result
// with a fresh TraceID and records DefaultMetrics.
func ParseFromFile(path string) (*Parsed, error) {
	start := time.Now()
	raw, err := os.ReadFile(path)
	if err != nil {
		DefaultMetrics.observeParse(time.Since(start).Seconds(), err)
		return nil, errors.Wrapf(err, "goyaml: read %s", path)
	}

	data, err := decompress(path, raw)
	if err != nil {
		DefaultMetrics.observeParse(time.Since(start).Seconds(), err)
		return nil, err
	}

	parsed, err := ParseFromSlice(data)
	DefaultMetrics.observeParse(time.Since(start).Seconds(), err)
	if err != nil {
		log.WithFields(logFields(path)).WithError(err).Warn("goyaml: parse failed")
		return nil, err
	}
	parsed.TraceID = uuid.New()
	log.WithFields(logFields(path)).WithField("trace_id", parsed.TraceID).Debug("goyaml: parsed file")
	return parsed, nil
}

// SerializeToFile renders v and writes it to path, compressing to match
// a .gz or .zst suffix. opts defaults to DefaultSerializeOptions when
// omitted.
func SerializeToFile(v *Value, path string, opts ...SerializeOptions) error {
	start := time.Now()
	options := DefaultSerializeOptions()
	if len(opts) > 0 {
		options = opts[0]
	}

	text, err := WriteWithOptions(v, options)
	if err != nil {
		return err
	}

	data, err := compress(path, []byte(text))
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "goyaml: write %s", path)
	}
	DefaultMetrics.observeSerialize(time.Since(start).Seconds())
	log.WithFields(logFields(path)).Debug("goyaml: serialized file")
	return nil
}

func decompress(path string, raw []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		r, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "goyaml: open gzip %s", path)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "goyaml: read gzip %s", path)
		}
		return out, nil
	case strings.HasSuffix(path, ".zst"):
		r, err := zstd.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, errors.Wrapf(err, "goyaml: open zstd %s", path)
		}
		defer r.Close()
		out, err := io.ReadAll(r)
		if err != nil {
			return nil, errors.Wrapf(err, "goyaml: read zstd %s", path)
		}
		return out, nil
	default:
		return raw, nil
	}
}

func compress(path string, raw []byte) ([]byte, error) {
	switch {
	case strings.HasSuffix(path, ".gz"):
		var buf bytes.Buffer
		w := gzip.NewWriter(&buf)
		if _, err := w.Write(raw); err != nil {
			return nil, errors.Wrapf(err, "goyaml: gzip write %s", path)
		}
		if err := w.Close(); err != nil {
			return nil, errors.Wrapf(err, "goyaml: gzip close %s", path)
		}
		return buf.Bytes(), nil
	case strings.HasSuffix(path, ".zst"):
		var buf bytes.Buffer
		w, err := zstd.NewWriter(&buf)
		if err != nil {
			return nil, errors.Wrapf(err, "goyaml: zstd writer %s", path)
		}
		if _, err := w.Write(raw); err != nil {
			return nil, errors.Wrapf(err, "goyaml: zstd write %s", path)
		}
		if err := w.Close(); err != nil {
			return nil, errors.Wrapf(err, "goyaml: zstd close %s", path)
		}
		return buf.Bytes(), nil
	default:
		return raw, nil
	}
}

func logFields(path string) map[string]interface{} {
	return map[string]interface{}{"path": filepath.Clean(path)}
}
