package radix

const node38Cap = 38

// Node38 is the hostname-alphabet specialization: a dense array indexed by
// hostAlphabetIndex instead of the raw branch byte, so a name made up
// entirely of a-z, 0-9, hyphen and the label separator packs into 38 slots
// with no probing (node38 in tree.c). It arises from Node16 on hosts
// without AVX2 and from Node32 on hosts with it (see Node16.grow and
// Node32.grow).
type Node38[V any] struct {
	header
	slots [node38Cap]Node[V]
}

func NewNode38[V any]() *Node38[V] {
	return &Node38[V]{}
}

func (n *Node38[V]) Kind() Kind { return KindNode38 }

func (n *Node38[V]) getHeader() *header { return &n.header }

func (n *Node38[V]) getChild(key byte) *Node[V] {
	idx := hostAlphabetIndex(key)
	if idx == notInAlphabet || n.slots[idx] == nil {
		return nil
	}
	return &n.slots[idx]
}

func (n *Node38[V]) children() []childSlot[V] {
	out := make([]childSlot[V], 0, n.width)
	for idx := uint8(0); idx < node38Cap; idx++ {
		if n.slots[idx] != nil {
			out = append(out, childSlot[V]{key: hostAlphabetByte(idx), child: n.slots[idx]})
		}
	}
	return out
}

// addChild converts to Node48 the moment a branch byte falls outside the
// hostname alphabet; a full complement of alphabet bytes (width == 38)
// never needs to grow further, since every slot maps to a distinct byte
// that can only be occupied once in a well-formed tree.
func (n *Node38[V]) addChild(key byte, child Node[V]) (Node[V], *Node[V], error) {
	idx := hostAlphabetIndex(key)
	if idx == notInAlphabet {
		n48 := n.grow()
		return n48.addChild(key, child)
	}
	n.slots[idx] = child
	n.width++
	return n, &n.slots[idx], nil
}

func (n *Node38[V]) grow() *Node48[V] {
	n48 := NewNode48[V]()
	copyHeader(&n48.header, &n.header)
	next := uint8(0)
	for idx := uint8(0); idx < node38Cap; idx++ {
		if n.slots[idx] == nil {
			continue
		}
		n48.slots[next] = n.slots[idx]
		n48.index[hostAlphabetByte(idx)] = next + 1
		next++
	}
	n48.width = next
	return n48
}
