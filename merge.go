package collection

import (
	"fmt"
)

// Merge folds src into the Collection. src may be a map[string]any, a
// map[any]any, another *Collection, or any Structured value; anything else
// fails with ErrInvalidArgument. Incoming entries win on key conflicts;
// surviving keys keep their positions and new keys append in source order
// (plain Go maps are folded in sorted key order, their iteration order
// being undefined). Returns the Collection for chaining.
func (c *Collection) Merge(src any) (*Collection, error) {
	switch s := src.(type) {
	case map[string]any:
		for _, k := range sortedKeys(s) {
			c.Set(k, s[k])
		}
	case map[any]any:
		for _, k := range sortedAnyKeys(s) {
			c.Set(k, s[k])
		}
	case *Collection:
		for k, v := range s.All() {
			c.Set(k, v)
		}
	case Structured:
		m := s.PlainMap()
		for _, k := range sortedKeys(m) {
			c.Set(k, m[k])
		}
	default:
		return nil, fmt.Errorf("merge %T: %w", src, ErrInvalidArgument)
	}
	return c, nil
}

// Map applies fn to every value in place, preserving keys and order, and
// returns the Collection.
func (c *Collection) Map(fn Transform) *Collection {
	for p := c.om().Oldest(); p != nil; p = p.Next() {
		c.om().Set(p.Key, fn(p.Value))
	}
	return c
}
