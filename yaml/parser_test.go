package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) *Value {
	t.Helper()
	parsed, err := ParseFromSlice([]byte(src))
	require.NoError(t, err)
	t.Cleanup(func() { parsed.Close() })
	return parsed.Root
}

func TestParse_EmptyStreamIsNull(t *testing.T) {
	v := mustParse(t, "")
	assert.True(t, v.IsNull())
}

func TestParse_ScalarDocument(t *testing.T) {
	v := mustParse(t, "42")
	n, err := v.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestParse_BlockMapping(t *testing.T) {
	v := mustParse(t, "a: 1\nb: two\nc: true\n")
	require.Equal(t, KindMapping, v.Kind())

	n, err := v.Get("a").AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	s, err := v.Get("b").AsString()
	require.NoError(t, err)
	assert.Equal(t, "two", s)

	b, err := v.Get("c").AsBool()
	require.NoError(t, err)
	assert.True(t, b)
}

func TestParse_BlockSequence(t *testing.T) {
	v := mustParse(t, "- 1\n- 2\n- 3\n")
	require.Equal(t, KindSequence, v.Kind())
	assert.Equal(t, 3, v.Len())

	e, err := v.Index(2)
	require.NoError(t, err)
	n, _ := e.AsInt()
	assert.Equal(t, int64(3), n)
}

func TestParse_NestedBlock(t *testing.T) {
	src := "top:\n  - a\n  - b\nother: 1\n"
	v := mustParse(t, src)
	seq := v.Get("top")
	require.Equal(t, KindSequence, seq.Kind())
	assert.Equal(t, 2, seq.Len())
	n, _ := v.Get("other").AsInt()
	assert.Equal(t, int64(1), n)
}

func TestParse_FlowSequence(t *testing.T) {
	v := mustParse(t, "[1, 2, 3]")
	require.Equal(t, KindSequence, v.Kind())
	assert.Equal(t, 3, v.Len())
}

func TestParse_FlowSequenceTrailingComma(t *testing.T) {
	v := mustParse(t, "[1, 2, 3,]")
	assert.Equal(t, 3, v.Len())
}

func TestParse_FlowMapping(t *testing.T) {
	v := mustParse(t, "{a: 1, b: 2}")
	require.Equal(t, KindMapping, v.Kind())
	n, _ := v.Get("a").AsInt()
	assert.Equal(t, int64(1), n)
}

func TestParse_FlowMappingNonStringKeyErrors(t *testing.T) {
	_, err := ParseFromSlice([]byte("{true: 1}"))
	require.Error(t, err)
	kind, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidSyntax, kind.Kind)
}

func TestParse_NestedFlow(t *testing.T) {
	v := mustParse(t, "{a: [1, 2], b: {c: 3}}")
	seq := v.Get("a")
	assert.Equal(t, 2, seq.Len())
	inner := v.Get("b")
	n, _ := inner.Get("c").AsInt()
	assert.Equal(t, int64(3), n)
}

func TestParse_AnchorAlias(t *testing.T) {
	src := "base: &b\n  x: 1\nother: *b\n"
	v := mustParse(t, src)

	base := v.Get("base")
	other := v.Get("other")
	require.Equal(t, KindMapping, other.Kind())

	// mutating one must not affect the other: alias is a deep copy.
	other.Set("x", FromInt(999))
	n, _ := base.Get("x").AsInt()
	assert.Equal(t, int64(1), n)
}

func TestParse_UnknownAlias(t *testing.T) {
	_, err := ParseFromSlice([]byte("a: *missing\n"))
	require.Error(t, err)
	kind, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrUnknownAlias, kind.Kind)
}

func TestParse_TagOnScalar(t *testing.T) {
	v := mustParse(t, "!!str 42")
	s, err := v.AsString()
	require.NoError(t, err)
	assert.Equal(t, "42", s)
}

func TestParse_TagOnCollectionIsAttached(t *testing.T) {
	v := mustParse(t, "!!custom\n- 1\n- 2\n")
	tag, ok := v.Tag()
	require.True(t, ok)
	assert.Equal(t, "!!custom", tag)
	assert.Equal(t, 2, v.Len())
}

func TestParse_TagOnFlowSequenceIsAttached(t *testing.T) {
	v := mustParse(t, "!!seq [1, 2, 3]\n")
	tag, ok := v.Tag()
	require.True(t, ok)
	assert.Equal(t, "!!seq", tag)
	require.Equal(t, KindSequence, v.Kind())
	assert.Equal(t, 3, v.Len())
}

func TestParse_ExplicitKeyMapping(t *testing.T) {
	src := "? explicit\n: 1\n? other\n: 2\n"
	v := mustParse(t, src)
	require.Equal(t, KindMapping, v.Kind())
	n, err := v.Get("explicit").AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestParse_DocumentMarkers(t *testing.T) {
	v := mustParse(t, "---\na: 1\n")
	n, _ := v.Get("a").AsInt()
	assert.Equal(t, int64(1), n)
}

func TestParse_DedentAfterNestedSequenceOfMappings(t *testing.T) {
	src := "spec:\n  containers:\n    - name: app\n      image: foo\n  restartPolicy: Always\n"
	v := mustParse(t, src)

	spec := v.Get("spec")
	require.Equal(t, KindMapping, spec.Kind())
	assert.Equal(t, 2, spec.Len())

	containers := spec.Get("containers")
	require.Equal(t, KindSequence, containers.Kind())
	require.Equal(t, 1, containers.Len())

	item, err := containers.Index(0)
	require.NoError(t, err)
	name, err := item.Get("name").AsString()
	require.NoError(t, err)
	assert.Equal(t, "app", name)
	image, err := item.Get("image").AsString()
	require.NoError(t, err)
	assert.Equal(t, "foo", image)

	policy, err := spec.Get("restartPolicy").AsString()
	require.NoError(t, err)
	assert.Equal(t, "Always", policy)
}

func TestParse_DedentBetweenNestedSequences(t *testing.T) {
	src := "outer:\n  - - 1\n    - 2\n  - 3\n"
	v := mustParse(t, src)

	outer := v.Get("outer")
	require.Equal(t, KindSequence, outer.Kind())
	require.Equal(t, 2, outer.Len())

	inner, err := outer.Index(0)
	require.NoError(t, err)
	require.Equal(t, KindSequence, inner.Kind())
	assert.Equal(t, 2, inner.Len())
	e0, _ := inner.Index(0)
	n0, _ := e0.AsInt()
	assert.Equal(t, int64(1), n0)
	e1, _ := inner.Index(1)
	n1, _ := e1.AsInt()
	assert.Equal(t, int64(2), n1)

	last, err := outer.Index(1)
	require.NoError(t, err)
	n, err := last.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestParse_UnexpectedTokenInFlowSequence(t *testing.T) {
	_, err := ParseFromSlice([]byte("[1: 2]"))
	require.Error(t, err)
	kind, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrUnexpectedToken, kind.Kind)
}
