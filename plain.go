package collection

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// DefaultMaxDepth bounds nested conversion during encoding when no explicit
// option is given. Self-referential structures hit this bound instead of
// recursing forever.
const DefaultMaxDepth = 512

// ToMap returns the Collection as a plain nested mapping. Positional int
// keys are rendered in base 10. Nested Collections and Structured values
// are converted recursively; all other values pass through unchanged.
// Conversion stops at DefaultMaxDepth, leaving deeper values unconverted,
// so self-referential collections terminate instead of recursing forever.
func (c *Collection) ToMap() map[string]any {
	return c.toMapDepth(0)
}

// PlainMap makes Collection satisfy Structured; it is equivalent to ToMap.
func (c *Collection) PlainMap() map[string]any { return c.ToMap() }

func (c *Collection) toMapDepth(depth int) map[string]any {
	out := make(map[string]any, c.Len())
	for p := c.om().Oldest(); p != nil; p = p.Next() {
		out[keyString(p.Key)] = plainValue(p.Value, depth+1)
	}
	return out
}

func plainValue(v any, depth int) any {
	if depth >= DefaultMaxDepth {
		return v
	}
	switch t := v.(type) {
	case *Collection:
		return t.toMapDepth(depth)
	case Structured:
		m := t.PlainMap()
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = plainValue(val, depth+1)
		}
		return out
	default:
		return v
	}
}

func keyString(k any) string {
	switch t := k.(type) {
	case string:
		return t
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprint(t)
	}
}

// isSequential reports whether the keys are exactly 0..n-1 ints in iteration
// order, in which case the Collection encodes as an array. An empty
// Collection counts as sequential.
func (c *Collection) isSequential() bool {
	want := 0
	for p := c.om().Oldest(); p != nil; p = p.Next() {
		i, ok := p.Key.(int)
		if !ok || i != want {
			return false
		}
		want++
	}
	return true
}

// checkString makes malformed UTF-8 an error instead of letting the
// encoders silently replace it with U+FFFD.
func checkString(s string) error {
	if !utf8.ValidString(s) {
		return newCodecError(CodeInvalidUTF8, nil)
	}
	return nil
}
