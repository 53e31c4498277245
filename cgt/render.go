package cgt

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/partizangames/cgt/dyadic"
	"github.com/partizangames/cgt/interner"
	"github.com/partizangames/cgt/nimber"
)

// String renders v in canonical-form text (spec.md §6): "0"; integers as
// decimal; non-integer dyadics as "p/q"; nimbers as "*n"; switches as
// "{a | b}"; general forms as "{L1, L2, ... | R1, R2, ...}".
func (v Value) String() string {
	rec := v.record()
	switch rec.Kind {
	case interner.KindNumber:
		return rec.Num.String()
	case interner.KindNumberPlusNimber:
		if rec.Num.IsZero() {
			return rec.Nim.String()
		}
		return rec.Num.String() + "+" + rec.Nim.String()
	case interner.KindSwitch, interner.KindGeneral:
		return "{" + joinValues(v.LeftOptions()) + " | " + joinValues(v.RightOptions()) + "}"
	default:
		return "?"
	}
}

func joinValues(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Parse is the symmetric inverse of String: it accepts the same
// canonical-form text grammar (a decimal integer, a "p/q" dyadic, a "*n"
// nimber, a "d+*n" number-plus-nimber, or a brace-delimited option list)
// and returns the corresponding canonicalized Value. Parse does not
// require its input to already be in canonical form — braced option
// lists are run back through FromOptions — but the text itself must be
// well-formed, or ErrParse is returned.
func Parse(s string) (Value, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Value{}, fmt.Errorf("%w: empty input", ErrParse)
	}
	if strings.HasPrefix(s, "{") {
		return parseBraced(s)
	}
	if strings.HasPrefix(s, "*") {
		n, err := parseNimberSuffix(s)
		if err != nil {
			return Value{}, err
		}
		return Star(n), nil
	}
	if idx := strings.Index(s, "+*"); idx >= 0 {
		d, err := parseDyadic(s[:idx])
		if err != nil {
			return Value{}, err
		}
		n, err := parseNimberSuffix(s[idx+1:])
		if err != nil {
			return Value{}, err
		}
		return numberPlusNimber(d, n), nil
	}
	d, err := parseDyadic(s)
	if err != nil {
		return Value{}, err
	}
	return Number(d), nil
}

func parseNimberSuffix(s string) (nimber.Nimber, error) {
	if !strings.HasPrefix(s, "*") {
		return 0, fmt.Errorf("%w: nimber missing '*' prefix: %q", ErrParse, s)
	}
	rest := s[1:]
	if rest == "" {
		return nimber.New(1), nil
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("%w: bad nimber suffix %q", ErrParse, s)
	}
	return nimber.New(n), nil
}

func parseDyadic(s string) (dyadic.Dyadic, error) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		num, err1 := strconv.ParseInt(s[:i], 10, 64)
		den, err2 := strconv.ParseInt(s[i+1:], 10, 64)
		if err1 != nil || err2 != nil || den <= 0 {
			return dyadic.Zero, fmt.Errorf("%w: bad dyadic %q", ErrParse, s)
		}
		exp, ok := log2(den)
		if !ok {
			return dyadic.Zero, fmt.Errorf("%w: denominator not a power of two in %q", ErrParse, s)
		}
		return dyadic.New(num, exp), nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return dyadic.Zero, fmt.Errorf("%w: bad integer %q", ErrParse, s)
	}
	return dyadic.FromInt(n), nil
}

func log2(n int64) (uint, bool) {
	if n <= 0 {
		return 0, false
	}
	var e uint
	for n > 1 {
		if n%2 != 0 {
			return 0, false
		}
		n /= 2
		e++
	}
	return e, true
}

// parseBraced parses "{L | R}" text, splitting on the top-level '|' (not
// nested inside braces) and recursively parsing each comma-separated
// option, then canonicalizing via FromOptions.
func parseBraced(s string) (Value, error) {
	if !strings.HasPrefix(s, "{") || !strings.HasSuffix(s, "}") {
		return Value{}, fmt.Errorf("%w: unbalanced braces in %q", ErrParse, s)
	}
	inner := s[1 : len(s)-1]
	barIdx, err := topLevelBar(inner)
	if err != nil {
		return Value{}, err
	}
	leftText := strings.TrimSpace(inner[:barIdx])
	rightText := strings.TrimSpace(inner[barIdx+1:])
	left, err := parseOptionList(leftText)
	if err != nil {
		return Value{}, err
	}
	right, err := parseOptionList(rightText)
	if err != nil {
		return Value{}, err
	}
	return FromOptions(left, right), nil
}

func topLevelBar(s string) (int, error) {
	depth := 0
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
		case '|':
			if depth == 0 {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("%w: missing top-level '|' in %q", ErrParse, s)
}

func parseOptionList(s string) ([]Value, error) {
	if s == "" {
		return nil, nil
	}
	parts, err := splitTopLevelCommas(s)
	if err != nil {
		return nil, err
	}
	out := make([]Value, 0, len(parts))
	for _, p := range parts {
		v, err := Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func splitTopLevelCommas(s string) ([]string, error) {
	depth := 0
	start := 0
	var parts []string
	for i, r := range s {
		switch r {
		case '{':
			depth++
		case '}':
			depth--
			if depth < 0 {
				return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrParse, s)
			}
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	if depth != 0 {
		return nil, fmt.Errorf("%w: unbalanced braces in %q", ErrParse, s)
	}
	parts = append(parts, s[start:])
	return parts, nil
}
