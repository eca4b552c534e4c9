package radix

// Node is the tagged-union slot value stored throughout the tree: either an
// inner node (Node4, Node16, Node32, Node38, Node48, Node256) or a *Leaf.
// The source distinguishes the two by tagging the low bit of a child
// pointer; a Go rewrite cannot safely tag pointers without unsafe, so
// Kind() is the discriminator instead (spec 4.1/9's "equivalent
// discriminator, e.g. a sum type").
type Node[V any] interface {
	Kind() Kind
}

// Leaf holds the full stored key and the caller's opaque value. It is
// always terminal; a leaf's "prefix" is its whole key (spec 3).
type Leaf[V any] struct {
	key   []byte
	value V
}

// NewLeaf allocates a leaf carrying a verbatim copy of key.
func NewLeaf[V any](key []byte, value V) *Leaf[V] {
	l := &Leaf[V]{key: make([]byte, len(key)), value: value}
	copy(l.key, key)
	return l
}

func (l *Leaf[V]) Kind() Kind { return KindLeaf }

func (l *Leaf[V]) Key() []byte { return l.key }

func (l *Leaf[V]) Value() V { return l.value }

func (l *Leaf[V]) SetValue(v V) { l.value = v }

// inner is implemented by all six adaptive node layouts. addChild may
// return a different (larger) Node when the receiver had to grow to make
// room; the caller is responsible for retargeting the owning slot.
type inner[V any] interface {
	Node[V]
	getHeader() *header
	getChild(key byte) *Node[V]
	// addChild inserts child at branch byte key. If the node has no spare
	// capacity it grows first: the returned Node is the (possibly new)
	// node the child now lives in, and the caller must overwrite the
	// owning slot with it. The returned *Node[V] always points at the
	// slot the child was just written to (mirrors the source's add_child
	// returning &children[idx]) — callers must not try to recover it by
	// calling getChild afterwards, since a child inserted as nil (a
	// placeholder for MakePath to fill in) is indistinguishable from an
	// absent child in node kinds that key presence off a nil check
	// (Node38, Node256).
	addChild(key byte, child Node[V]) (Node[V], *Node[V], error)
	// children returns (branch byte, child) pairs in ascending order,
	// for Walk and diagnostics.
	children() []childSlot[V]
}

type childSlot[V any] struct {
	key   byte
	child Node[V]
}

func isExactMatch(a, b []byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// longestCommonPrefix returns the number of leading bytes a and b agree on,
// starting the comparison at offset (both slices must be at least offset
// long).
func longestCommonPrefix(a, b []byte, offset uint8) uint8 {
	i := offset
	max := len(a)
	if len(b) < max {
		max = len(b)
	}
	for int(i) < max && a[i] == b[i] {
		i++
	}
	return i - offset
}
