// Package collection provides an ordered key/value container with
// array-style positional operations and order-preserving codecs:
//
// - Lookup and mutation over a single ordered mapping (Has/Get/Set/Remove)
// - Stack and queue operations with positional int keys (Push/Pop/Shift/Unshift/Reverse)
// - Bulk operations (Merge with incoming-wins precedence, Map, Touch)
// - Order-preserving ToJSON/FromJSON/ToYAML with a classified error model via CodecError
//
// Design policy:
// - Keep the whole public API in the root package; place the CLI under cmd/collection.
// - Values that can represent themselves as a plain mapping implement Structured;
//   conversion and encoding depend on that interface, never on reflection.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	c := collection.New()
//	c.Push("a").Push("b").Unshift("z")
//	out, err := c.ToJSON()
//
//	c2, err := collection.FromJSON(data)
//	c2.Merge(map[string]any{"debug": true})
package collection
