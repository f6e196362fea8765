package yaml

import "strconv"

// parser consumes a scanner's token stream to build a Value tree. It
// keeps a one-token pushback slot, a flow-context flag threaded through
// recursive calls, an anchor table for alias resolution, and the
// current pending explicit tag.
type parser struct {
	sc *scanner

	pushback    Token
	hasPushback bool

	anchors    map[string]*Value
	currentTag string
}

func newParser(src []byte) *parser {
	return &parser{sc: newScanner(src), anchors: make(map[string]*Value)}
}

// reset rearms a pooled parser for a new input (see arena.go).
func (p *parser) reset(src []byte) {
	if p.sc == nil {
		p.sc = newScanner(src)
	} else {
		p.sc.reset(src)
	}
	p.hasPushback = false
	p.currentTag = ""
	for k := range p.anchors {
		delete(p.anchors, k)
	}
}

func (p *parser) nextToken() (Token, error) {
	if p.hasPushback {
		p.hasPushback = false
		return p.pushback, nil
	}
	tok, ok := p.sc.next()
	if !ok {
		return Token{Type: TokenStreamEnd}, nil
	}
	return tok, nil
}

func (p *parser) peekToken() (Token, error) {
	if !p.hasPushback {
		tok, err := p.nextToken()
		if err != nil {
			return Token{}, err
		}
		p.pushback = tok
		p.hasPushback = true
	}
	return p.pushback, nil
}

// parseDocument consumes an optional document_start then dispatches on
// the next token. An empty stream, or one that reaches stream_end
// immediately, produces a null Value.
func (p *parser) parseDocument() (*Value, error) {
	tok, err := p.peekToken()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokenStreamStart {
		p.nextToken()
		tok, err = p.peekToken()
		if err != nil {
			return nil, err
		}
	}
	if tok.Type == TokenDocumentStart {
		p.nextToken()
		tok, err = p.peekToken()
		if err != nil {
			return nil, err
		}
	}
	if tok.Type == TokenStreamEnd {
		return Null(), nil
	}
	return p.parseValue(false)
}

// parseValue is the dispatch table keyed on the first token of the
// value being parsed.
func (p *parser) parseValue(inFlow bool) (*Value, error) {
	tok, err := p.peekToken()
	if err != nil {
		return nil, err
	}

	switch tok.Type {
	case TokenScalar:
		p.nextToken()
		return p.parseScalarOrBlockMapping(tok, inFlow)

	case TokenAlias:
		p.nextToken()
		orig, ok := p.anchors[tok.Text]
		if !ok {
			return nil, errorf(ErrUnknownAlias, tok.Pos, "unknown alias %q", tok.Text)
		}
		val := deepCopyValue(orig)
		if p.currentTag != "" {
			val.SetTag(p.currentTag)
			p.currentTag = ""
		}
		return val, nil

	case TokenAnchor:
		p.nextToken()
		val, err := p.parseValue(inFlow)
		if err != nil {
			return nil, err
		}
		p.anchors[tok.Text] = val
		return val, nil

	case TokenTag:
		p.nextToken()
		p.currentTag = tok.Text
		// Whoever settles the value this tag precedes consumes it: a
		// terminal scalar resolves it directly, a collection attaches it
		// after construction. Either way it must be cleared before any
		// nested value (a sequence/mapping element) gets a chance to see
		// stale state left over from an outer tag.
		return p.parseValue(inFlow)

	case TokenBlockEntry:
		p.nextToken()
		tag := p.currentTag
		p.currentTag = ""
		seq, err := p.parseBlockSequence(tok)
		if err != nil {
			return nil, err
		}
		if tag != "" {
			seq.SetTag(tag)
		}
		return seq, nil

	case TokenFlowSeqStart:
		p.nextToken()
		tag := p.currentTag
		p.currentTag = ""
		seq, err := p.parseFlowSequence()
		if err != nil {
			return nil, err
		}
		if tag != "" {
			seq.SetTag(tag)
		}
		return seq, nil

	case TokenFlowMapStart:
		p.nextToken()
		tag := p.currentTag
		p.currentTag = ""
		m, err := p.parseFlowMapping()
		if err != nil {
			return nil, err
		}
		if tag != "" {
			m.SetTag(tag)
		}
		return m, nil

	case TokenKey:
		p.nextToken()
		tag := p.currentTag
		p.currentTag = ""
		m, err := p.parseExplicitKeyMapping()
		if err != nil {
			return nil, err
		}
		if tag != "" {
			m.SetTag(tag)
		}
		return m, nil

	case TokenStreamEnd:
		return nil, errorf(ErrUnexpectedEndOfStream, tok.Pos, "unexpected end of stream")

	default:
		return nil, errorf(ErrUnexpectedToken, tok.Pos, "unexpected token %s", tok.Type)
	}
}

// parseScalarOrBlockMapping implements the "block mapping from scalar"
// rule: a plain scalar in block context that is followed by a value
// (':') token is the first key of a block mapping; otherwise the
// scalar stands alone.
func (p *parser) parseScalarOrBlockMapping(first Token, inFlow bool) (*Value, error) {
	if !inFlow {
		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Type == TokenValue {
			tag := p.currentTag
			p.currentTag = ""
			m, err := p.parseBlockMapping(first)
			if err != nil {
				return nil, err
			}
			if tag != "" {
				m.SetTag(tag)
			}
			return m, nil
		}
	}

	tag := p.currentTag
	p.currentTag = ""
	val, err := ResolveScalar(first.Text, tag)
	if err != nil {
		return nil, withPosition(err, first.Pos)
	}
	return val, nil
}

// parseBlockMapping reads scalar-key/':'/value triples until a
// non-scalar token is seen, the stream ends, or the next key sits at a
// shallower or deeper column than firstKey. Keys are used verbatim as
// strings, never schema-resolved. The column check is what keeps a
// dedented sibling key (e.g. a field back at the enclosing mapping's
// indent after a nested sequence-of-mappings value) from being folded
// into the wrong mapping.
func (p *parser) parseBlockMapping(firstKey Token) (*Value, error) {
	m := InitMapping()
	col := firstKey.Pos.Column
	keyTok := firstKey
	for {
		colon, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if colon.Type != TokenValue {
			return nil, errorf(ErrUnexpectedToken, colon.Pos, "expected : after mapping key, got %s", colon.Type)
		}
		val, err := p.parseValue(false)
		if err != nil {
			return nil, err
		}
		m.Set(keyTok.Text, val)

		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Type != TokenScalar || next.Pos.Column != col {
			break
		}
		keyTok, err = p.nextToken()
		if err != nil {
			return nil, err
		}
	}
	return m, nil
}

// parseBlockSequence reads a value, then continues while the next
// token is a block_entry at the same column as entry, the one
// introducing the first item (already consumed by the caller). The
// column check keeps a dedented sibling key from being mistaken for
// another item of this sequence.
func (p *parser) parseBlockSequence(entry Token) (*Value, error) {
	seq := InitSequence()
	col := entry.Pos.Column
	for {
		val, err := p.parseValue(false)
		if err != nil {
			return nil, err
		}
		seq.Append(val)

		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Type != TokenBlockEntry || next.Pos.Column != col {
			break
		}
		p.nextToken()
	}
	return seq, nil
}

// parseFlowSequence reads values between [ and ], separated by ','.
// The caller has already consumed the opening bracket.
func (p *parser) parseFlowSequence() (*Value, error) {
	seq := InitSequence()

	tok, err := p.peekToken()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokenFlowSeqEnd {
		p.nextToken()
		return seq, nil
	}

	for {
		val, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		seq.Append(val)

		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TokenFlowSeqEnd:
			return seq, nil
		case TokenFlowEntry:
			peeked, err := p.peekToken()
			if err != nil {
				return nil, err
			}
			if peeked.Type == TokenFlowSeqEnd {
				p.nextToken()
				return seq, nil
			}
		case TokenStreamEnd:
			return nil, errorf(ErrUnexpectedEndOfStream, tok.Pos, "unexpected end of stream in flow sequence")
		default:
			return nil, errorf(ErrUnexpectedToken, tok.Pos, "expected , or ] in flow sequence, got %s", tok.Type)
		}
	}
}

// parseFlowMapping reads "<scalar> : <value>" pairs between { and },
// separated by ','. Keys must resolve to a string per the schema,
// unlike block-mapping keys which are used verbatim.
func (p *parser) parseFlowMapping() (*Value, error) {
	m := InitMapping()

	tok, err := p.peekToken()
	if err != nil {
		return nil, err
	}
	if tok.Type == TokenFlowMapEnd {
		p.nextToken()
		return m, nil
	}

	for {
		keyTok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if keyTok.Type == TokenStreamEnd {
			return nil, errorf(ErrUnexpectedEndOfStream, keyTok.Pos, "unexpected end of stream in flow mapping")
		}
		if keyTok.Type != TokenScalar {
			return nil, errorf(ErrInvalidSyntax, keyTok.Pos, "flow mapping key must be a scalar, got %s", keyTok.Type)
		}
		resolvedKey, err := ResolveScalar(keyTok.Text, "")
		if err != nil {
			return nil, withPosition(err, keyTok.Pos)
		}
		if resolvedKey.Kind() != KindString {
			return nil, errorf(ErrInvalidSyntax, keyTok.Pos, "flow mapping key %q does not resolve to a string", keyTok.Text)
		}
		keyStr, _ := resolvedKey.AsString()

		colon, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if colon.Type != TokenValue {
			return nil, errorf(ErrUnexpectedToken, colon.Pos, "expected : after flow mapping key, got %s", colon.Type)
		}

		val, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		m.Set(keyStr, val)

		tok, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		switch tok.Type {
		case TokenFlowMapEnd:
			return m, nil
		case TokenFlowEntry:
			peeked, err := p.peekToken()
			if err != nil {
				return nil, err
			}
			if peeked.Type == TokenFlowMapEnd {
				p.nextToken()
				return m, nil
			}
		case TokenStreamEnd:
			return nil, errorf(ErrUnexpectedEndOfStream, tok.Pos, "unexpected end of stream in flow mapping")
		default:
			return nil, errorf(ErrUnexpectedToken, tok.Pos, "expected , or } in flow mapping, got %s", tok.Type)
		}
	}
}

// parseExplicitKeyMapping handles the '?' explicit-key form. The
// caller has already consumed the introducing '?'.
func (p *parser) parseExplicitKeyMapping() (*Value, error) {
	m := InitMapping()
	for {
		// The key is read as in flow context so that a scalar key followed
		// by the ':' introducing its value does not open a nested block
		// mapping.
		keyVal, err := p.parseValue(true)
		if err != nil {
			return nil, err
		}
		keyStr, err := valueAsMapKey(keyVal)
		if err != nil {
			return nil, err
		}

		colon, err := p.nextToken()
		if err != nil {
			return nil, err
		}
		if colon.Type != TokenValue {
			return nil, errorf(ErrUnexpectedToken, colon.Pos, "expected : after ? key, got %s", colon.Type)
		}

		val, err := p.parseValue(false)
		if err != nil {
			return nil, err
		}
		m.Set(keyStr, val)

		next, err := p.peekToken()
		if err != nil {
			return nil, err
		}
		if next.Type != TokenKey {
			break
		}
		p.nextToken()
	}
	return m, nil
}

// valueAsMapKey renders a resolved key Value as a mapping key string.
func valueAsMapKey(v *Value) (string, error) {
	switch v.Kind() {
	case KindString:
		return v.AsString()
	case KindNull:
		return "", nil
	case KindBool:
		b, _ := v.AsBool()
		if b {
			return "true", nil
		}
		return "false", nil
	case KindInt:
		n, _ := v.AsInt()
		return strconv.FormatInt(n, 10), nil
	case KindFloat:
		f, _ := v.AsFloat()
		return strconv.FormatFloat(f, 'g', -1, 64), nil
	default:
		return "", errorf(ErrInvalidSyntax, Position{}, "explicit mapping key must be scalar, got %s", v.Kind())
	}
}

// deepCopyValue clones v and every descendant, so alias sites never
// share mutable substructure with the anchor they reference.
func deepCopyValue(v *Value) *Value {
	if v == nil {
		return nil
	}
	cp := *v
	switch v.kind {
	case KindSequence:
		cp.sequenceVal = make([]*Value, len(v.sequenceVal))
		for i, e := range v.sequenceVal {
			cp.sequenceVal[i] = deepCopyValue(e)
		}
	case KindMapping:
		cp.mappingVal = make([]MapEntry, len(v.mappingVal))
		for i, e := range v.mappingVal {
			cp.mappingVal[i] = MapEntry{Key: e.Key, Value: deepCopyValue(e.Value)}
		}
	}
	return &cp
}
