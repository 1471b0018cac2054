package game

// Collection holds the live members of one entity category.
// Removal is deferred: members are marked during a sweep and dropped by Compact.
type Collection[T any] struct {
	// Items in insertion order
	items []*T

	// Marked members, removed on the next Compact
	marked map[*T]struct{}
}

// NewCollection creates a collection with preallocated storage
func NewCollection[T any](initialCapacity int) *Collection[T] {
	return &Collection[T]{
		items:  make([]*T, 0, initialCapacity),
		marked: make(map[*T]struct{}),
	}
}

// Add appends a member
func (c *Collection[T]) Add(item *T) {
	c.items = append(c.items, item)
}

// AddAll appends several members
func (c *Collection[T]) AddAll(items []*T) {
	c.items = append(c.items, items...)
}

// Len returns the member count, marked members included
func (c *Collection[T]) Len() int {
	return len(c.items)
}

// At returns the i-th member
func (c *Collection[T]) At(i int) *T {
	return c.items[i]
}

// Each visits the members present when the sweep starts.
// Members added by fn are not visited. Returning false stops the sweep.
func (c *Collection[T]) Each(fn func(*T) bool) {
	n := len(c.items)
	for i := 0; i < n; i++ {
		if !fn(c.items[i]) {
			return
		}
	}
}

// Mark schedules a member for removal
func (c *Collection[T]) Mark(item *T) {
	c.marked[item] = struct{}{}
}

// Marked reports whether a member is scheduled for removal
func (c *Collection[T]) Marked(item *T) bool {
	_, ok := c.marked[item]
	return ok
}

// Compact drops marked members, keeping the order of the rest.
// It returns how many were removed.
func (c *Collection[T]) Compact() int {
	if len(c.marked) == 0 {
		return 0
	}
	kept := c.items[:0]
	for _, item := range c.items {
		if _, ok := c.marked[item]; ok {
			continue
		}
		kept = append(kept, item)
	}
	removed := len(c.items) - len(kept)
	// Clear the tail so dropped members can be collected
	for i := len(kept); i < len(c.items); i++ {
		c.items[i] = nil
	}
	c.items = kept
	clear(c.marked)
	return removed
}

// Items returns a copy of the members
func (c *Collection[T]) Items() []*T {
	out := make([]*T, len(c.items))
	copy(out, c.items)
	return out
}

// Clear removes all members but keeps capacity
func (c *Collection[T]) Clear() {
	for i := range c.items {
		c.items[i] = nil
	}
	c.items = c.items[:0]
	clear(c.marked)
}
