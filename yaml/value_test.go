package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_Constructors(t *testing.T) {
	assert.True(t, Null().IsNull())
	assert.Equal(t, KindNull, (*Value)(nil).Kind())

	b, err := FromBool(true).AsBool()
	require.NoError(t, err)
	assert.True(t, b)

	n, err := FromInt(42).AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	f, err := FromFloat(1.5).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)

	s, err := FromString("hi").AsString()
	require.NoError(t, err)
	assert.Equal(t, "hi", s)
}

func TestValue_AsFloat_WidensInt(t *testing.T) {
	f, err := FromInt(3).AsFloat()
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)
}

func TestValue_WrongKind(t *testing.T) {
	_, err := FromInt(1).AsString()
	require.Error(t, err)
	kind, ok := AsError(err)
	require.True(t, ok)
	assert.Equal(t, ErrInvalidSyntax, kind.Kind)
}

func TestValue_MappingSetLastWriteWins(t *testing.T) {
	m := InitMapping(
		MapEntry{Key: "a", Value: FromInt(1)},
		MapEntry{Key: "b", Value: FromInt(2)},
		MapEntry{Key: "a", Value: FromInt(3)},
	)
	assert.Equal(t, 2, m.Len())

	entries, err := m.AsMapping()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a", entries[0].Key)

	av, err := entries[0].Value.AsInt()
	require.NoError(t, err)
	assert.Equal(t, int64(3), av)
}

func TestValue_GetAndIndex(t *testing.T) {
	seq := InitSequence(FromInt(1), FromInt(2), FromInt(3))
	v, err := seq.Index(1)
	require.NoError(t, err)
	n, _ := v.AsInt()
	assert.Equal(t, int64(2), n)

	_, err = seq.Index(5)
	assert.Error(t, err)

	m := InitMapping(MapEntry{Key: "k", Value: FromString("v")})
	assert.NotNil(t, m.Get("k"))
	assert.Nil(t, m.Get("missing"))
}

func TestValue_SetAppendPanicOnWrongKind(t *testing.T) {
	assert.Panics(t, func() { FromInt(1).Set("a", Null()) })
	assert.Panics(t, func() { FromInt(1).Append(Null()) })
}

func TestValue_Tag(t *testing.T) {
	v := InitSequence()
	_, ok := v.Tag()
	assert.False(t, ok)

	v.SetTag("!!custom")
	tag, ok := v.Tag()
	require.True(t, ok)
	assert.Equal(t, "!!custom", tag)
}

func TestValue_Dump(t *testing.T) {
	v := InitMapping(MapEntry{Key: "a", Value: InitSequence(FromInt(1), Null())})
	out := v.Dump()
	assert.Contains(t, out, "mapping(1)")
	assert.Contains(t, out, "sequence(2)")
	assert.Contains(t, out, "int 1")
}
