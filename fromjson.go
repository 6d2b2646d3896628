package collection

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
)

// DecodeOpt bundles decoding options.
type DecodeOpt struct {
	MaxDepth int // maximum nesting depth; DefaultMaxDepth when zero
}

// FromJSON builds a Collection from JSON text with key order preserved,
// which a plain map[string]any decode cannot do. Objects become nested
// Collections with keys in document order; arrays become Collections with
// positional int keys; a bare scalar document becomes a single positional
// entry. Numbers decode to int when integral, float64 otherwise.
//
// Failures are classified as *CodecError: syntax, control-character (a raw
// control byte inside a string literal), or depth-exceeded.
func FromJSON(data []byte, opt ...DecodeOpt) (*Collection, error) {
	o := DecodeOpt{}
	if len(opt) > 0 {
		o = opt[0]
	}
	if o.MaxDepth <= 0 {
		o.MaxDepth = DefaultMaxDepth
	}
	if err := scanControlChars(data); err != nil {
		return nil, err
	}
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tok, err := dec.Token()
	if err != nil {
		if err == io.EOF {
			return nil, newCodecError(CodeSyntax, err)
		}
		return nil, classifyCodecError(err)
	}
	v, err := decodeValue(dec, tok, 0, o.MaxDepth)
	if err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, newCodecError(CodeSyntax, nil)
	}
	if c, ok := v.(*Collection); ok {
		return c, nil
	}
	return New().Push(v), nil
}

// UnmarshalJSON replaces the Collection's entries with the decoded document.
func (c *Collection) UnmarshalJSON(data []byte) error {
	parsed, err := FromJSON(data)
	if err != nil {
		return err
	}
	c.items = parsed.om()
	return nil
}

// scanControlChars rejects raw control bytes inside string literals before
// token-walking begins: the tolerant decoder accepts them, while the error
// contract reports them as their own failure class. Escaped forms such as
// \u0001 and \t stay legal.
func scanControlChars(data []byte) error {
	inString := false
	escaped := false
	for _, b := range data {
		if !inString {
			if b == '"' {
				inString = true
			}
			continue
		}
		if escaped {
			escaped = false
			continue
		}
		switch {
		case b == '\\':
			escaped = true
		case b == '"':
			inString = false
		case b < 0x20:
			return newCodecError(CodeControlChar, nil)
		}
	}
	return nil
}

// decodeValue turns the token stream into values, tracking containers with
// the decoder's own nesting: tok is the value's first token, and object and
// array frames are consumed through their closing delimiter.
func decodeValue(dec *json.Decoder, tok json.Token, depth, maxDepth int) (any, error) {
	switch t := tok.(type) {
	case json.Delim:
		if depth+1 > maxDepth {
			return nil, newCodecError(CodeDepthExceeded, nil)
		}
		switch t {
		case '{':
			c := New()
			for dec.More() {
				ktok, err := dec.Token()
				if err != nil {
					return nil, classifyCodecError(err)
				}
				key, ok := ktok.(string)
				if !ok {
					return nil, newCodecError(CodeSyntax, nil)
				}
				vtok, err := dec.Token()
				if err != nil {
					return nil, classifyCodecError(err)
				}
				v, err := decodeValue(dec, vtok, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				c.om().Set(key, v)
			}
			if _, err := dec.Token(); err != nil { // consume '}'
				return nil, classifyCodecError(err)
			}
			return c, nil
		case '[':
			c := New()
			idx := 0
			for dec.More() {
				vtok, err := dec.Token()
				if err != nil {
					return nil, classifyCodecError(err)
				}
				v, err := decodeValue(dec, vtok, depth+1, maxDepth)
				if err != nil {
					return nil, err
				}
				c.om().Set(idx, v)
				idx++
			}
			if _, err := dec.Token(); err != nil { // consume ']'
				return nil, classifyCodecError(err)
			}
			return c, nil
		}
		return nil, newCodecError(CodeSyntax, nil)
	case json.Number:
		if i, err := t.Int64(); err == nil {
			return int(i), nil
		}
		f, err := t.Float64()
		if err != nil {
			return nil, newCodecError(CodeSyntax, err)
		}
		return f, nil
	default:
		// string, bool, or nil
		return t, nil
	}
}
