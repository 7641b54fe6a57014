package abac

// jq-style attribute paths over a Source and its nested JSON-like values
// (map[string]any, []any, primitives).
//
// Supported syntax:
//   .foo.bar           – field access
//   .foo[0]            – array index (negative indexes allowed)
//   .foo[*]            – wildcard over array elements
//   .["complex key"]   – quoted keys
//
// A syntactically invalid path is an error. Data missing at runtime yields
// zero results, not an error.

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

type stepKind int

const (
	stepField stepKind = iota
	stepIndex
	stepWildcard
)

type step struct {
	kind  stepKind
	field string
	index int
}

// Query returns all values matching path, starting at the attributes of src.
func Query(src Source, path string) ([]any, error) {
	steps, err := parsePath(path)
	if err != nil {
		return nil, err
	}
	if len(steps) == 0 {
		return nil, errors.New("empty path")
	}

	// The first step resolves against the Source itself.
	var frontier []any
	switch s := steps[0]; s.kind {
	case stepField:
		if v, ok := src.Attribute(s.field); ok {
			frontier = []any{v}
		}
	case stepWildcard:
		for _, name := range src.AttributeNames() {
			if v, ok := src.Attribute(name); ok {
				frontier = append(frontier, v)
			}
		}
	default:
		return nil, errors.New("path must start with an attribute name")
	}

	for _, s := range steps[1:] {
		var next []any
		for _, node := range frontier {
			next = append(next, applyStep(node, s)...)
		}
		frontier = next
	}
	return frontier, nil
}

// QueryOne is a convenience around Query that expects exactly one result.
func QueryOne(src Source, path string) (any, error) {
	vals, err := Query(src, path)
	if err != nil {
		return nil, err
	}
	switch len(vals) {
	case 0:
		return nil, fmt.Errorf("no value found for path %q", path)
	case 1:
		return vals[0], nil
	default:
		return nil, fmt.Errorf("path %q matched %d values; expected one", path, len(vals))
	}
}

func applyStep(node any, s step) []any {
	switch s.kind {
	case stepField:
		if m, ok := node.(map[string]any); ok {
			if v, ok := m[s.field]; ok {
				return []any{v}
			}
		}
	case stepIndex:
		if arr, ok := node.([]any); ok {
			i := s.index
			if i < 0 {
				i += len(arr)
			}
			if i >= 0 && i < len(arr) {
				return []any{arr[i]}
			}
		}
	case stepWildcard:
		if arr, ok := node.([]any); ok {
			out := make([]any, len(arr))
			copy(out, arr)
			return out
		}
	}
	return nil
}

// ----------------- parser -----------------

type pathScanner struct {
	s string
	i int
}

func parsePath(path string) ([]step, error) {
	sc := &pathScanner{s: strings.TrimSpace(path)}
	var steps []step
	for sc.i < len(sc.s) {
		switch ch := sc.peek(); {
		case ch == '.':
			sc.i++
			if sc.peek() == '[' {
				continue // .["key"] form, handled below
			}
			if !isIdentStart(sc.peek()) {
				return nil, sc.errf("attribute name expected after '.'")
			}
			steps = append(steps, step{kind: stepField, field: sc.readIdent()})
		case ch == '[':
			sc.i++
			st, err := sc.readBracket()
			if err != nil {
				return nil, err
			}
			steps = append(steps, st)
		case isIdentStart(ch) && len(steps) == 0:
			// bare leading attribute name without a dot
			steps = append(steps, step{kind: stepField, field: sc.readIdent()})
		default:
			return nil, sc.errf("unexpected character %q", ch)
		}
	}
	return steps, nil
}

func (sc *pathScanner) readBracket() (step, error) {
	switch ch := sc.peek(); {
	case ch == '"' || ch == '\'':
		key, err := sc.readQuoted()
		if err != nil {
			return step{}, err
		}
		if err := sc.expect(']'); err != nil {
			return step{}, err
		}
		return step{kind: stepField, field: key}, nil
	case ch == '*':
		sc.i++
		if err := sc.expect(']'); err != nil {
			return step{}, err
		}
		return step{kind: stepWildcard}, nil
	default:
		start := sc.i
		if sc.peek() == '-' {
			sc.i++
		}
		for sc.i < len(sc.s) && sc.s[sc.i] >= '0' && sc.s[sc.i] <= '9' {
			sc.i++
		}
		idx, err := strconv.Atoi(sc.s[start:sc.i])
		if err != nil {
			return step{}, sc.errf("index, '*', or quoted key expected inside []")
		}
		if err := sc.expect(']'); err != nil {
			return step{}, err
		}
		return step{kind: stepIndex, index: idx}, nil
	}
}

func (sc *pathScanner) readQuoted() (string, error) {
	quote := sc.s[sc.i]
	sc.i++
	var b strings.Builder
	for sc.i < len(sc.s) {
		ch := sc.s[sc.i]
		sc.i++
		switch ch {
		case quote:
			return b.String(), nil
		case '\\':
			if sc.i >= len(sc.s) {
				return "", sc.errf("unterminated escape")
			}
			esc := sc.s[sc.i]
			sc.i++
			switch esc {
			case '\\', '\'', '"':
				b.WriteByte(esc)
			default:
				return "", sc.errf("unsupported escape: \\%c", esc)
			}
		default:
			b.WriteByte(ch)
		}
	}
	return "", sc.errf("unterminated string literal")
}

func (sc *pathScanner) readIdent() string {
	start := sc.i
	for sc.i < len(sc.s) && isIdentPart(sc.s[sc.i]) {
		sc.i++
	}
	return sc.s[start:sc.i]
}

func (sc *pathScanner) peek() byte {
	if sc.i >= len(sc.s) {
		return 0
	}
	return sc.s[sc.i]
}

func (sc *pathScanner) expect(ch byte) error {
	if sc.peek() != ch {
		return sc.errf("%q expected", ch)
	}
	sc.i++
	return nil
}

func (sc *pathScanner) errf(format string, a ...any) error {
	return fmt.Errorf("path parse error at %d: "+format, append([]any{sc.i}, a...)...)
}

func isIdentStart(b byte) bool {
	return b != 0 && (b == '_' || unicode.IsLetter(rune(b)))
}

func isIdentPart(b byte) bool {
	return b != 0 && (b == '_' || b == '-' || unicode.IsLetter(rune(b)) || unicode.IsDigit(rune(b)))
}
