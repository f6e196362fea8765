package yaml

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// SerializeOptions configures Write's output. The zero value is not
// meant to be used directly; call DefaultSerializeOptions or start from
// it and override fields.
type SerializeOptions struct {
	// IndentSize is the number of spaces per block nesting level.
	IndentSize uint

	// CompactSequences renders a sequence in flow style ([a, b, c])
	// when every element is a scalar and its serialized flow form would
	// be no longer than FlowThreshold characters.
	CompactSequences bool

	// CompactMappings renders a mapping in flow style ({a: 1, b: 2})
	// when every value is a scalar, it has at most 4 entries, and its
	// flow form is within the same length budget as CompactSequences.
	CompactMappings bool

	// FlowThreshold is the character budget used by CompactSequences
	// and CompactMappings.
	FlowThreshold uint
}

// DefaultSerializeOptions returns block-style output with a two-space
// indent, the canonical form of a serialized document.
func DefaultSerializeOptions() SerializeOptions {
	return SerializeOptions{IndentSize: 2, FlowThreshold: 60}
}

// Write renders v as YAML text using DefaultSerializeOptions.
func Write(v *Value) (string, error) {
	return WriteWithOptions(v, DefaultSerializeOptions())
}

// WriteWithOptions renders v as YAML text under opts.
func WriteWithOptions(v *Value, opts SerializeOptions) (string, error) {
	if opts.IndentSize == 0 {
		opts.IndentSize = 2
	}
	s := &serializer{opts: opts}
	if err := s.writeValue(v, 0); err != nil {
		return "", err
	}
	out := s.sb.String()
	if !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out, nil
}

type serializer struct {
	sb   strings.Builder
	opts SerializeOptions
}

func (s *serializer) indent(depth int) string {
	return strings.Repeat(" ", depth*int(s.opts.IndentSize))
}

func (s *serializer) writeValue(v *Value, depth int) error {
	if v.IsNull() {
		s.sb.WriteString("null")
		return nil
	}
	switch v.Kind() {
	case KindBool:
		b, _ := v.AsBool()
		if b {
			s.sb.WriteString("true")
		} else {
			s.sb.WriteString("false")
		}
	case KindInt:
		n, _ := v.AsInt()
		s.sb.WriteString(strconv.FormatInt(n, 10))
	case KindFloat:
		f, _ := v.AsFloat()
		s.sb.WriteString(formatFloat(f))
	case KindString:
		str, _ := v.AsString()
		s.writeScalarString(str)
	case KindSequence:
		return s.writeSequence(v, depth)
	case KindMapping:
		return s.writeMapping(v, depth)
	default:
		return errorf(ErrInvalidSyntax, Position{}, "cannot serialize value of kind %s", v.Kind())
	}
	return nil
}

func (s *serializer) writeSequence(v *Value, depth int) error {
	elems, err := v.AsSequence()
	if err != nil {
		return err
	}
	if len(elems) == 0 {
		s.sb.WriteString("[]")
		return nil
	}
	if s.opts.CompactSequences {
		if flow, ok := s.tryFlowSequence(elems); ok {
			s.sb.WriteString(flow)
			return nil
		}
	}
	for i, e := range elems {
		if i > 0 {
			s.sb.WriteByte('\n')
		}
		s.sb.WriteString(s.indent(depth))
		s.sb.WriteString("- ")
		if err := s.writeNestedValue(e, depth); err != nil {
			return err
		}
	}
	return nil
}

func (s *serializer) writeMapping(v *Value, depth int) error {
	entries, err := v.AsMapping()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		s.sb.WriteString("{}")
		return nil
	}
	sorted := make([]MapEntry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })

	if s.opts.CompactMappings {
		if flow, ok := s.tryFlowMapping(sorted); ok {
			s.sb.WriteString(flow)
			return nil
		}
	}
	for i, e := range sorted {
		if i > 0 {
			s.sb.WriteByte('\n')
		}
		s.sb.WriteString(s.indent(depth))
		s.writeScalarString(e.Key)
		s.sb.WriteByte(':')
		if e.Value.IsNull() || e.Value.Kind() == KindBool || e.Value.Kind() == KindInt ||
			e.Value.Kind() == KindFloat || e.Value.Kind() == KindString {
			s.sb.WriteByte(' ')
			if err := s.writeValue(e.Value, depth+1); err != nil {
				return err
			}
			continue
		}
		if e.Value.Len() == 0 {
			s.sb.WriteByte(' ')
			if err := s.writeValue(e.Value, depth+1); err != nil {
				return err
			}
			continue
		}
		s.sb.WriteByte('\n')
		if err := s.writeValue(e.Value, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// writeNestedValue renders a sequence element, which for a scalar or an
// empty collection sits on the same line as its leading "- ", and for a
// non-empty collection starts on its own line one level deeper.
func (s *serializer) writeNestedValue(v *Value, depth int) error {
	switch v.Kind() {
	case KindSequence, KindMapping:
		if v.Len() == 0 {
			return s.writeValue(v, depth)
		}
		// Render nested block content starting where the current line
		// left off is not representable without backtracking the
		// indent, so nested collections begin on their own line, one
		// level deeper.
		s.sb.WriteByte('\n')
		return s.writeValue(v, depth+1)
	default:
		return s.writeValue(v, depth)
	}
}

func (s *serializer) tryFlowSequence(elems []*Value) (string, bool) {
	inner := &serializer{opts: s.opts}
	inner.sb.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			inner.sb.WriteString(", ")
		}
		if e.Kind() == KindSequence || e.Kind() == KindMapping {
			return "", false
		}
		if err := inner.writeValue(e, 0); err != nil {
			return "", false
		}
	}
	inner.sb.WriteByte(']')
	out := inner.sb.String()
	if uint(len(out)) > s.opts.FlowThreshold {
		return "", false
	}
	return out, true
}

func (s *serializer) tryFlowMapping(entries []MapEntry) (string, bool) {
	if len(entries) > 4 {
		return "", false
	}
	inner := &serializer{opts: s.opts}
	inner.sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			inner.sb.WriteString(", ")
		}
		if e.Value.Kind() == KindSequence || e.Value.Kind() == KindMapping {
			return "", false
		}
		inner.writeScalarString(e.Key)
		inner.sb.WriteString(": ")
		if err := inner.writeValue(e.Value, 0); err != nil {
			return "", false
		}
	}
	inner.sb.WriteByte('}')
	out := inner.sb.String()
	if uint(len(out)) > s.opts.FlowThreshold {
		return "", false
	}
	return out, true
}

// writeScalarString emits str as a plain scalar when safe, otherwise as
// a double-quoted scalar with control bytes escaped.
func (s *serializer) writeScalarString(str string) {
	if !needsQuoting(str) {
		s.sb.WriteString(str)
		return
	}
	s.sb.WriteByte('"')
	for i := 0; i < len(str); i++ {
		b := str[i]
		switch b {
		case '\n':
			s.sb.WriteString(`\n`)
		case '\t':
			s.sb.WriteString(`\t`)
		case '\r':
			s.sb.WriteString(`\r`)
		case '\\':
			s.sb.WriteString(`\\`)
		case '"':
			s.sb.WriteString(`\"`)
		default:
			if b < 0x20 || b == 0x7f {
				s.sb.WriteString("\\x")
				const hex = "0123456789abcdef"
				s.sb.WriteByte(hex[b>>4])
				s.sb.WriteByte(hex[b&0xf])
			} else {
				s.sb.WriteByte(b)
			}
		}
	}
	s.sb.WriteByte('"')
}

// needsQuoting reports whether str requires double-quoting to round
// trip: it is empty, resolves to something other than a string under
// the implicit schema, collides with a legacy YAML boolean keyword the
// schema itself doesn't treat as one, starts/ends with significant
// whitespace, starts with a YAML indicator byte, or contains a control
// byte, ':', or '#'.
func needsQuoting(str string) bool {
	if str == "" {
		return true
	}
	if resolved, err := resolveImplicit(str); err == nil {
		if resolved.Kind() != KindString {
			return true
		}
	}
	if isLegacyBoolKeyword(str) {
		return true
	}
	if str[0] == ' ' || str[len(str)-1] == ' ' {
		return true
	}
	if isIndicatorByte(str[0]) {
		return true
	}
	for i := 0; i < len(str); i++ {
		b := str[i]
		if b < 0x20 || b == 0x7f || b == ':' || b == '#' {
			return true
		}
	}
	if strings.HasPrefix(str, "---") || strings.HasPrefix(str, "...") {
		return true
	}
	return false
}

// isIndicatorByte reports whether b is one of the bytes that makes a
// scalar unsafe to leave unquoted when it appears as the first byte.
func isIndicatorByte(b byte) bool {
	switch b {
	case '-', '?', ':', ',', '[', ']', '{', '}', '#', '&', '*', '!', '|', '>', '\'', '"', '%', '@', '`', '\n', '\r', '\t', '\\':
		return true
	default:
		return false
	}
}

// isLegacyBoolKeyword reports whether str is one of the YAML 1.1
// boolean keywords the implicit schema no longer resolves as bool
// (yes/no/on/off, in any of their three conventional cases). A reader
// carrying an older schema would still treat these as booleans, so a
// string with this exact spelling must be quoted to round trip.
func isLegacyBoolKeyword(str string) bool {
	switch str {
	case "yes", "Yes", "YES", "no", "No", "NO", "on", "On", "ON", "off", "Off", "OFF":
		return true
	default:
		return false
	}
}

// formatFloat renders f as the shortest round-tripping decimal, always
// with a fractional part or exponent so it reparses as a float rather
// than an int, with the usual .inf/-.inf/.nan special forms.
func formatFloat(f float64) string {
	switch {
	case math.IsNaN(f):
		return ".nan"
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	}
	out := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(out, ".eE") {
		out += ".0"
	}
	return out
}
