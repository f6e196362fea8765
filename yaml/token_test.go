package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanAll(t *testing.T, src string) []Token {
	t.Helper()
	sc := newScanner([]byte(src))
	var toks []Token
	for {
		tok, ok := sc.next()
		if !ok {
			break
		}
		toks = append(toks, tok)
		if tok.Type == TokenStreamEnd {
			break
		}
	}
	return toks
}

func tokenTypes(toks []Token) []TokenType {
	out := make([]TokenType, len(toks))
	for i, t := range toks {
		out[i] = t.Type
	}
	return out
}

func TestScanner_BlockMappingSkeleton(t *testing.T) {
	toks := scanAll(t, "key: value\n")
	assert.Equal(t, []TokenType{
		TokenStreamStart, TokenScalar, TokenValue, TokenScalar, TokenStreamEnd,
	}, tokenTypes(toks))
}

func TestScanner_BlockSequence(t *testing.T) {
	toks := scanAll(t, "- a\n- b\n")
	assert.Equal(t, []TokenType{
		TokenStreamStart, TokenBlockEntry, TokenScalar,
		TokenBlockEntry, TokenScalar, TokenStreamEnd,
	}, tokenTypes(toks))
}

func TestScanner_FlowSequence(t *testing.T) {
	toks := scanAll(t, "[1, 2, 3]")
	types := tokenTypes(toks)
	assert.Equal(t, TokenFlowSeqStart, types[1])
	assert.Equal(t, TokenFlowSeqEnd, types[len(types)-2])
}

func TestScanner_DocumentMarkers(t *testing.T) {
	toks := scanAll(t, "---\nkey: value\n...\n")
	types := tokenTypes(toks)
	assert.Contains(t, types, TokenDocumentStart)
	assert.Contains(t, types, TokenDocumentEnd)
}

func TestScanner_AnchorAliasTag(t *testing.T) {
	toks := scanAll(t, "&anchor !!str value")
	require.GreaterOrEqual(t, len(toks), 4)
	assert.Equal(t, TokenAnchor, toks[1].Type)
	assert.Equal(t, "anchor", toks[1].Text)
	assert.Equal(t, TokenTag, toks[2].Type)
	assert.Equal(t, "!!str", toks[2].Text)
}

func TestScanner_SingleQuotedEscape(t *testing.T) {
	toks := scanAll(t, `'it''s here'`)
	require.Len(t, toks, 3)
	assert.Equal(t, "it's here", toks[1].Text)
}

func TestScanner_DoubleQuotedEscapes(t *testing.T) {
	toks := scanAll(t, `"a\nb\tcA"`)
	require.Len(t, toks, 3)
	assert.Equal(t, "a\nb\tcA", toks[1].Text)
}

func TestScanner_DoubleQuotedUnknownEscapePreserved(t *testing.T) {
	toks := scanAll(t, `"\q"`)
	require.Len(t, toks, 3)
	assert.Equal(t, `\q`, toks[1].Text)
}

func TestScanner_CommentRequiresLeadingWhitespace(t *testing.T) {
	toks := scanAll(t, "key: value#nocomment\n")
	require.Len(t, toks, 5)
	text, _ := toks[3].Text, toks[4]
	_ = text
	assert.Equal(t, "value#nocomment", toks[3].Text)
}

func TestScanner_CommentWithLeadingSpace(t *testing.T) {
	toks := scanAll(t, "key: value # a comment\n")
	assert.Equal(t, "value", toks[3].Text)
}

func TestScanner_LiteralBlockScalar(t *testing.T) {
	toks := scanAll(t, "|\n  line one\n  line two\n")
	require.Len(t, toks, 3)
	assert.Equal(t, "line one\nline two\n", toks[1].Text)
	assert.Equal(t, StyleLiteral, toks[1].Style)
}

func TestScanner_FoldedBlockScalar(t *testing.T) {
	toks := scanAll(t, "> \n  line one\n  line two\n\n  line three\n")
	require.Len(t, toks, 3)
	assert.Equal(t, "line one line two\nline three", toks[1].Text)
	assert.Equal(t, StyleFolded, toks[1].Style)
}

func TestScanner_PlainScalarStopsAtFlowIndicator(t *testing.T) {
	toks := scanAll(t, "[a, b]")
	assert.Equal(t, "a", toks[2].Text)
}
