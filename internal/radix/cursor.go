package radix

// PathEntry records one step of a descent: the depth (bytes of the key
// already consumed) and the slot the step passed through. Retaining slot
// as a pointer into the tree, rather than the node value at visit time,
// lets MakePath revisit and mutate a step after the fact without
// re-descending (nsd_cursor_t / nsd_path_t in tree.h).
type PathEntry[V any] struct {
	Depth uint8
	Slot  *Node[V]
}

// Cursor is a reusable, growable stack of PathEntry values describing the
// most recent FindPath or MakePath descent. Callers that perform many
// lookups (batch loads, range scans) can allocate one Cursor and pass it
// to every call instead of paying an allocation per traversal; entries are
// truncated and refilled in place, per spec's remarks on reusability
// across batch operations (see spec 4.4).
type Cursor[V any] struct {
	entries []PathEntry[V]
}

// NewCursor returns an empty, ready-to-use Cursor.
func NewCursor[V any]() *Cursor[V] {
	return &Cursor[V]{}
}

// Reset truncates the cursor to zero entries without releasing the backing
// array, so it can be handed to another traversal.
func (c *Cursor[V]) Reset() {
	c.entries = c.entries[:0]
}

func (c *Cursor[V]) push(depth uint8, slot *Node[V]) {
	c.entries = append(c.entries, PathEntry[V]{Depth: depth, Slot: slot})
}

// Len reports how many steps the most recent traversal recorded.
func (c *Cursor[V]) Len() int {
	return len(c.entries)
}

// At returns the i-th recorded step, where 0 is the root.
func (c *Cursor[V]) At(i int) PathEntry[V] {
	return c.entries[i]
}

// Leaf returns the final step's slot if the traversal ended on a leaf, and
// whether it did.
func (c *Cursor[V]) Leaf() (*Leaf[V], bool) {
	if len(c.entries) == 0 {
		return nil, false
	}
	last := c.entries[len(c.entries)-1]
	if leaf, ok := (*last.Slot).(*Leaf[V]); ok {
		return leaf, true
	}
	return nil, false
}
