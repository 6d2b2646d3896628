package collection

import (
	"bytes"
	"errors"
	"io"
	"strings"

	json "github.com/goccy/go-json"
)

// EncodeOpt bundles encoding options.
type EncodeOpt struct {
	MaxDepth int    // maximum nesting depth; DefaultMaxDepth when zero
	Indent   string // indent string for pretty output; compact when empty
}

// ToJSON serializes the Collection to JSON text. A Collection whose keys
// are exactly 0..n-1 ints encodes as a JSON array; anything else encodes as
// an object with keys in insertion order (int keys rendered in base 10).
//
// Failures are classified as *CodecError: depth-exceeded (nesting beyond
// MaxDepth, including self-referential structures), invalid-UTF-8 (malformed
// string values), state-mismatch (a contained value's marshaler failed),
// syntax/control-character (malformed encoder input), or unknown.
func (c *Collection) ToJSON(opt ...EncodeOpt) ([]byte, error) {
	o := EncodeOpt{}
	if len(opt) > 0 {
		o = opt[0]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	v, err := encodeValue(c, 0, o.MaxDepth)
	if err != nil {
		return nil, err
	}
	var b []byte
	if o.Indent != "" {
		b, err = json.MarshalIndent(v, "", o.Indent)
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return nil, classifyCodecError(err)
	}
	return b, nil
}

// MarshalJSON emits the same bytes as ToJSON with default options, so a
// Collection embeds naturally in values handed to a JSON encoder.
func (c *Collection) MarshalJSON() ([]byte, error) { return c.ToJSON() }

// encodeValue converts v into a shape the JSON encoder preserves order for:
// sequential Collections become []any, everything map-like becomes an
// orderedObject. Depth is counted per container so cyclic structures
// surface as depth-exceeded before the encoder ever runs.
func encodeValue(v any, depth, maxDepth int) (any, error) {
	switch t := v.(type) {
	case *Collection:
		if depth+1 > maxDepth {
			return nil, newCodecError(CodeDepthExceeded, nil)
		}
		if t.isSequential() {
			seq := make([]any, 0, t.Len())
			for p := t.om().Oldest(); p != nil; p = p.Next() {
				ev, err := encodeValue(p.Value, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				seq = append(seq, ev)
			}
			return seq, nil
		}
		obj := &orderedObject{entries: make([]objEntry, 0, t.Len())}
		for p := t.om().Oldest(); p != nil; p = p.Next() {
			k := keyString(p.Key)
			if err := checkString(k); err != nil {
				return nil, err
			}
			ev, err := encodeValue(p.Value, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			obj.entries = append(obj.entries, objEntry{key: k, val: ev})
		}
		return obj, nil
	case Structured:
		return encodeValue(mapToCollection(t.PlainMap()), depth, maxDepth)
	case map[string]any:
		return encodeValue(mapToCollection(t), depth, maxDepth)
	case map[any]any:
		return encodeValue(anyMapToCollection(t), depth, maxDepth)
	case []any:
		if depth+1 > maxDepth {
			return nil, newCodecError(CodeDepthExceeded, nil)
		}
		seq := make([]any, 0, len(t))
		for _, el := range t {
			ev, err := encodeValue(el, depth+1, maxDepth)
			if err != nil {
				return nil, err
			}
			seq = append(seq, ev)
		}
		return seq, nil
	case string:
		if err := checkString(t); err != nil {
			return nil, err
		}
		return t, nil
	default:
		return v, nil
	}
}

// mapToCollection folds a plain map into a Collection in sorted key order,
// giving deterministic object output for unordered inputs.
func mapToCollection(m map[string]any) *Collection {
	c := New()
	for _, k := range sortedKeys(m) {
		c.om().Set(k, m[k])
	}
	return c
}

// anyMapToCollection is the mixed-key counterpart, ordered by rendered key
// so Set/Merge and the encoders agree on how a plain Go map folds.
func anyMapToCollection(m map[any]any) *Collection {
	c := New()
	for _, k := range sortedAnyKeys(m) {
		c.om().Set(normalizeKey(k), m[k])
	}
	return c
}

type objEntry struct {
	key string
	val any
}

// orderedObject is a JSON object that marshals its entries in slice order.
type orderedObject struct {
	entries []objEntry
}

func (o *orderedObject) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range o.entries {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(e.key)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(e.val)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// classifyCodecError maps an encoder/decoder failure onto the CodecError
// taxonomy. Already-classified errors pass through untouched.
func classifyCodecError(err error) error {
	if err == nil {
		return nil
	}
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce
	}
	// Truncated input surfaces as bare EOF errors rather than a SyntaxError.
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return newCodecError(CodeSyntax, err)
	}
	// Cycle detection fires as an unsupported value; the contract reports
	// runaway nesting, whatever the encoder calls it.
	var unsupVal *json.UnsupportedValueError
	if errors.As(err, &unsupVal) {
		return newCodecError(CodeDepthExceeded, err)
	}
	var syn *json.SyntaxError
	if errors.As(err, &syn) {
		if strings.Contains(syn.Error(), "string literal") {
			return newCodecError(CodeControlChar, err)
		}
		return newCodecError(CodeSyntax, err)
	}
	var me *json.MarshalerError
	if errors.As(err, &me) {
		return newCodecError(CodeStateMismatch, err)
	}
	return newCodecError(CodeUnknown, err)
}
