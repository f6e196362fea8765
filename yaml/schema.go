package yaml

import (
	"math"
	"strconv"
	"strings"
)

// ResolveScalar classifies a plain scalar's lexeme into a Value per the
// JSON Schema implicit-typing rules, or applies an explicit tag
// override when tag is non-empty.
func ResolveScalar(lexeme string, tag string) (*Value, error) {
	if tag != "" {
		return resolveTagged(lexeme, tag)
	}
	return resolveImplicit(lexeme)
}

func resolveTagged(lexeme, tag string) (*Value, error) {
	switch tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		b, ok := parseBoolLexeme(lexeme)
		if !ok {
			return nil, errorf(ErrInvalidBool, Position{}, "invalid boolean literal %q for tag !!bool", lexeme)
		}
		return FromBool(b), nil
	case "!!int":
		n, ok := parseIntLexeme(lexeme)
		if !ok {
			return nil, errorf(ErrInvalidInt, Position{}, "invalid integer literal %q for tag !!int", lexeme)
		}
		return FromInt(n), nil
	case "!!float":
		f, ok := parseFloatLexeme(lexeme)
		if !ok {
			return nil, errorf(ErrInvalidFloat, Position{}, "invalid float literal %q for tag !!float", lexeme)
		}
		return FromFloat(f), nil
	case "!!str":
		return FromString(lexeme), nil
	default:
		return FromString(lexeme), nil
	}
}

func resolveImplicit(lexeme string) (*Value, error) {
	if isNullLexeme(lexeme) {
		return Null(), nil
	}
	if b, ok := parseBoolLexeme(lexeme); ok {
		return FromBool(b), nil
	}
	if isHexIntLexeme(lexeme) {
		n, ok := parseIntLexemeBase(lexeme[2:], 16)
		if ok {
			return FromInt(n), nil
		}
	}
	if isOctIntLexeme(lexeme) {
		n, ok := parseIntLexemeBase(lexeme[2:], 8)
		if ok {
			return FromInt(n), nil
		}
	}
	if isDecIntLexeme(lexeme) {
		n, ok := parseIntLexeme(lexeme)
		if ok {
			return FromInt(n), nil
		}
	}
	if isPosInfLexeme(lexeme) {
		return FromFloat(math.Inf(1)), nil
	}
	if isNegInfLexeme(lexeme) {
		return FromFloat(math.Inf(-1)), nil
	}
	if isNanLexeme(lexeme) {
		return FromFloat(math.NaN()), nil
	}
	if isFloatLexeme(lexeme) {
		f, ok := parseFloatLexeme(lexeme)
		if ok {
			return FromFloat(f), nil
		}
	}
	return FromString(lexeme), nil
}

func stripUnderscores(s string) string {
	if !strings.ContainsRune(s, '_') {
		return s
	}
	return strings.ReplaceAll(s, "_", "")
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }
func isHexDigit(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}
func isOctDigit(b byte) bool { return b >= '0' && b <= '7' }

func isNullLexeme(s string) bool {
	switch s {
	case "", "null", "Null", "NULL", "~":
		return true
	default:
		return false
	}
}

func parseBoolLexeme(s string) (bool, bool) {
	switch s {
	case "true", "True", "TRUE":
		return true, true
	case "false", "False", "FALSE":
		return false, true
	default:
		return false, false
	}
}

func isHexIntLexeme(s string) bool {
	if len(s) < 3 {
		return false
	}
	if s[0] != '0' || (s[1] != 'x' && s[1] != 'X') {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isHexDigit(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

func isOctIntLexeme(s string) bool {
	if len(s) < 3 {
		return false
	}
	if s[0] != '0' || (s[1] != 'o' && s[1] != 'O') {
		return false
	}
	for i := 2; i < len(s); i++ {
		if !isOctDigit(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

func isDecIntLexeme(s string) bool {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if !isDigit(s[i]) && s[i] != '_' {
			return false
		}
	}
	return true
}

func isPosInfLexeme(s string) bool {
	switch s {
	case ".inf", ".Inf", ".INF", "+.inf", "+.Inf", "+.INF":
		return true
	default:
		return false
	}
}

func isNegInfLexeme(s string) bool {
	switch s {
	case "-.inf", "-.Inf", "-.INF":
		return true
	default:
		return false
	}
}

func isNanLexeme(s string) bool {
	switch s {
	case ".nan", ".NaN", ".NAN":
		return true
	default:
		return false
	}
}

// isFloatLexeme checks the float grammar: optional sign, digits, at
// most one '.', optionally followed by an exponent with at most one
// e|E after which a sign may appear. "1.0.0" is rejected because the
// second '.' leaves unconsumed trailing characters.
func isFloatLexeme(s string) bool {
	i, n := 0, len(s)
	if i < n && (s[i] == '+' || s[i] == '-') {
		i++
	}
	hasIntDigits := false
	for i < n && (isDigit(s[i]) || s[i] == '_') {
		i++
		hasIntDigits = true
	}
	hasDot := false
	hasFracDigits := false
	if i < n && s[i] == '.' {
		hasDot = true
		i++
		for i < n && (isDigit(s[i]) || s[i] == '_') {
			i++
			hasFracDigits = true
		}
	}
	hasExp := false
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		hasExpDigits := false
		for i < n && isDigit(s[i]) {
			i++
			hasExpDigits = true
		}
		if !hasExpDigits {
			return false
		}
		hasExp = true
	}
	if i != n {
		return false
	}
	if !hasDot && !hasExp {
		return false
	}
	if !hasIntDigits && !hasFracDigits {
		return false
	}
	return true
}

func parseIntLexeme(s string) (int64, bool) {
	n, err := strconv.ParseInt(stripUnderscores(s), 10, 64)
	return n, err == nil
}

func parseIntLexemeBase(digits string, base int) (int64, bool) {
	n, err := strconv.ParseInt(stripUnderscores(digits), base, 64)
	return n, err == nil
}

func parseFloatLexeme(s string) (float64, bool) {
	f, err := strconv.ParseFloat(stripUnderscores(s), 64)
	return f, err == nil
}
