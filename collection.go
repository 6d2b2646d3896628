package collection

import (
	"iter"
	"slices"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Collection is an ordered key/value container. Keys are strings or ints
// (positional keys assigned by Push/Unshift are ints); insertion order is
// preserved for iteration, the positional operations, and the encoders.
// Setting an existing key overwrites its value without moving it.
//
// The zero value is ready to use. A Collection is not safe for concurrent
// use; callers needing that must synchronize externally.
type Collection struct {
	items *orderedmap.OrderedMap[any, any]
}

// New returns an empty Collection.
func New() *Collection {
	return &Collection{items: orderedmap.New[any, any]()}
}

// NewFrom returns a Collection seeded from m. Go map iteration order is
// undefined, so entries are inserted in sorted key order for determinism;
// use FromJSON or successive Set calls when a specific order matters.
func NewFrom(m map[string]any) *Collection {
	c := New()
	for _, k := range sortedKeys(m) {
		c.items.Set(k, m[k])
	}
	return c
}

func (c *Collection) om() *orderedmap.OrderedMap[any, any] {
	if c.items == nil {
		c.items = orderedmap.New[any, any]()
	}
	return c.items
}

// Has reports whether key is present.
func (c *Collection) Has(key any) bool {
	_, ok := c.om().Get(normalizeKey(key))
	return ok
}

// Get returns the value stored under key, or nil when the key is absent.
func (c *Collection) Get(key any) any {
	return c.GetOr(key, nil)
}

// GetOr returns the value stored under key, or def when the key is absent.
// A key present with a nil value returns nil, not def: explicit presence wins.
func (c *Collection) GetOr(key, def any) any {
	if v, ok := c.om().Get(normalizeKey(key)); ok {
		return v
	}
	return def
}

// Set assigns value under key and returns the Collection for chaining.
// When key is itself a mapping (map[string]any, map[any]any, or another
// *Collection) the call is a bulk-set: every entry of the mapping is set
// recursively and value is ignored.
func (c *Collection) Set(key, value any) *Collection {
	switch m := key.(type) {
	case map[string]any:
		for _, k := range sortedKeys(m) {
			c.Set(k, m[k])
		}
	case map[any]any:
		for _, k := range sortedAnyKeys(m) {
			c.Set(k, m[k])
		}
	case *Collection:
		for k, v := range m.All() {
			c.Set(k, v)
		}
	default:
		c.om().Set(normalizeKey(key), value)
	}
	return c
}

// Remove deletes key if present; removing an absent key is a no-op.
func (c *Collection) Remove(key any) {
	c.om().Delete(normalizeKey(key))
}

// Len returns the number of entries.
func (c *Collection) Len() int { return c.om().Len() }

// IsEmpty reports whether the Collection holds no entries.
func (c *Collection) IsEmpty() bool { return c.om().Len() == 0 }

// First returns the first value in iteration order, or nil when empty.
func (c *Collection) First() any {
	if p := c.om().Oldest(); p != nil {
		return p.Value
	}
	return nil
}

// Last returns the last value in iteration order, or nil when empty.
func (c *Collection) Last() any {
	if p := c.om().Newest(); p != nil {
		return p.Value
	}
	return nil
}

// Clear drops all entries.
func (c *Collection) Clear() {
	c.items = orderedmap.New[any, any]()
}

// Items exposes the underlying ordered mapping as a live reference, not a
// copy. Mutations through it are visible to the Collection and vice versa.
// Operations that rebuild the mapping (Unshift, Reverse, Clear,
// UnmarshalJSON) swap it out, detaching previously obtained references.
func (c *Collection) Items() *orderedmap.OrderedMap[any, any] {
	return c.om()
}

// All returns an iterator over entries in current insertion order. Each call
// yields a fresh traversal; mutating the Collection mid-traversal is
// undefined.
func (c *Collection) All() iter.Seq2[any, any] {
	return func(yield func(any, any) bool) {
		for p := c.om().Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in current insertion order.
func (c *Collection) Keys() iter.Seq[any] {
	return func(yield func(any) bool) {
		for p := c.om().Oldest(); p != nil; p = p.Next() {
			if !yield(p.Key) {
				return
			}
		}
	}
}

// Values returns an iterator over values in current insertion order.
func (c *Collection) Values() iter.Seq[any] {
	return func(yield func(any) bool) {
		for p := c.om().Oldest(); p != nil; p = p.Next() {
			if !yield(p.Value) {
				return
			}
		}
	}
}

// Touch calls Touch(args...) on every contained value implementing
// Touchable, in iteration order; other values are skipped. Individual
// results are discarded and the Collection is returned for chaining.
func (c *Collection) Touch(args ...any) *Collection {
	for v := range c.Values() {
		if t, ok := v.(Touchable); ok {
			t.Touch(args...)
		}
	}
	return c
}

// normalizeKey folds all integer kinds into int so that Get("x")/Set("x")
// style call sites and decoded positional keys agree on identity.
func normalizeKey(k any) any {
	switch t := k.(type) {
	case int:
		return t
	case int8:
		return int(t)
	case int16:
		return int(t)
	case int32:
		return int(t)
	case int64:
		return int(t)
	case uint:
		return int(t)
	case uint8:
		return int(t)
	case uint16:
		return int(t)
	case uint32:
		return int(t)
	case uint64:
		return int(t)
	default:
		return k
	}
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// sortedAnyKeys orders mixed keys by their rendered form, so folding a plain
// Go map is deterministic despite its undefined iteration order.
func sortedAnyKeys(m map[any]any) []any {
	keys := make([]any, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b any) int {
		return strings.Compare(keyString(a), keyString(b))
	})
	return keys
}
