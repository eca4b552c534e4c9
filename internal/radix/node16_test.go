package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fillNode16[V any](n *Node16[V], keys []byte, values []Node[V]) Node[V] {
	var cur Node[V] = n
	for i, key := range keys {
		grown, _, err := cur.(inner[V]).addChild(key, values[i])
		if err != nil {
			panic(err)
		}
		cur = grown
	}
	return cur
}

func TestNode16_GetChild(t *testing.T) {
	keys := []byte{0x48, 0x49, 0x50, 0x60}
	leaves := randomLeaves(len(keys))
	values := make([]Node[string], len(leaves))
	for i, l := range leaves {
		values[i] = l
	}

	n := fillNode16[string](NewNode16[string](), keys, values)
	in := n.(inner[string])
	require.Equal(t, KindNode16, in.Kind())

	for i, key := range keys {
		slot := in.getChild(key)
		require.NotNil(t, slot)
		assert.Same(t, leaves[i], *slot)
	}
	assert.Nil(t, in.getChild(0x01))

	kids := in.children()
	require.Len(t, kids, len(keys))
	for i := 1; i < len(kids); i++ {
		assert.Less(t, kids[i-1].key, kids[i].key)
	}
}

// TestNode16_GrowsWithinHostnameAlphabet exercises the branch where every
// existing key (and the one that overflows the node) falls inside the
// hostname alphabet: on AVX2 hosts this still grows to Node32 (AVX2 is
// checked first), on hosts without it, to Node38.
func TestNode16_GrowsWithinHostnameAlphabet(t *testing.T) {
	keys := make([]byte, node16Cap+1)
	for i := range keys {
		keys[i] = 0x48 + byte(i) // "a", "b", "c", ... all in the alphabet
	}
	leaves := randomLeaves(len(keys))
	values := make([]Node[string], len(leaves))
	for i, l := range leaves {
		values[i] = l
	}

	var n Node[string] = NewNode16[string]()
	var err error
	for i := 0; i < node16Cap; i++ {
		n, _, err = n.(inner[string]).addChild(keys[i], values[i])
		require.NoError(t, err)
	}
	require.Equal(t, KindNode16, n.Kind())

	n, _, err = n.(inner[string]).addChild(keys[node16Cap], values[node16Cap])
	require.NoError(t, err)

	if HaveAVX2 {
		assert.Equal(t, KindNode32, n.Kind())
	} else {
		assert.Equal(t, KindNode38, n.Kind())
	}

	for i, key := range keys {
		slot := n.(inner[string]).getChild(key)
		require.NotNil(t, slot)
		assert.Same(t, leaves[i], *slot)
	}
}

// TestNode16_GrowsOutsideHostnameAlphabet exercises the branch where the
// overflowing key falls outside the hostname alphabet: this always grows
// to Node48 unless AVX2 is available, in which case Node32 always wins.
func TestNode16_GrowsOutsideHostnameAlphabet(t *testing.T) {
	keys := make([]byte, node16Cap+1)
	for i := range keys {
		keys[i] = 0x48 + byte(i)
	}
	keys[node16Cap] = 0x05 // outside the hostname alphabet

	leaves := randomLeaves(len(keys))
	values := make([]Node[string], len(leaves))
	for i, l := range leaves {
		values[i] = l
	}

	var n Node[string] = NewNode16[string]()
	var err error
	for i := 0; i < node16Cap; i++ {
		n, _, err = n.(inner[string]).addChild(keys[i], values[i])
		require.NoError(t, err)
	}

	n, _, err = n.(inner[string]).addChild(keys[node16Cap], values[node16Cap])
	require.NoError(t, err)

	if HaveAVX2 {
		assert.Equal(t, KindNode32, n.Kind())
	} else {
		assert.Equal(t, KindNode48, n.Kind())
	}
}
