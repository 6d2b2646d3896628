package collection

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// nextIndex is the positional key for the next Push: one past the largest
// int key seen so far, or 0 when there is none.
func (c *Collection) nextIndex() int {
	next := 0
	for p := c.om().Oldest(); p != nil; p = p.Next() {
		if i, ok := p.Key.(int); ok && i >= next {
			next = i + 1
		}
	}
	return next
}

// Push appends value at the next positional key and returns the Collection.
func (c *Collection) Push(value any) *Collection {
	c.om().Set(c.nextIndex(), value)
	return c
}

// Pop removes and returns the last entry in iteration order, or nil when
// the Collection is empty. Other entries and their order are untouched.
func (c *Collection) Pop() any {
	p := c.om().Newest()
	if p == nil {
		return nil
	}
	v := p.Value
	c.om().Delete(p.Key)
	return v
}

// Shift removes and returns the first entry in iteration order, or nil when
// the Collection is empty.
func (c *Collection) Shift() any {
	p := c.om().Oldest()
	if p == nil {
		return nil
	}
	v := p.Value
	c.om().Delete(p.Key)
	return v
}

// Unshift inserts value at the front under positional key 0. Existing
// positional keys are re-indexed sequentially, as an array prepend would;
// string keys keep their key and relative position.
func (c *Collection) Unshift(value any) *Collection {
	rebuilt := orderedmap.New[any, any]()
	rebuilt.Set(0, value)
	next := 1
	for p := c.om().Oldest(); p != nil; p = p.Next() {
		if _, ok := p.Key.(int); ok {
			rebuilt.Set(next, p.Value)
			next++
			continue
		}
		rebuilt.Set(p.Key, p.Value)
	}
	c.items = rebuilt
	return c
}

// Reverse reverses the iteration order of all entries in place and returns
// the Collection. Applying it twice restores the original order.
func (c *Collection) Reverse() *Collection {
	rebuilt := orderedmap.New[any, any]()
	for p := c.om().Newest(); p != nil; p = p.Prev() {
		rebuilt.Set(p.Key, p.Value)
	}
	c.items = rebuilt
	return c
}
