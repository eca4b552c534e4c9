package radix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode4_AddAndGetChild(t *testing.T) {
	type param struct {
		desc         string
		insertOrder  []byte
		expectedAsc  []byte
		expectedDesc []byte
	}

	testList := []param{
		{
			desc:         "already sorted insertion order",
			insertOrder:  []byte{1, 2, 3},
			expectedAsc:  []byte{1, 2, 3},
			expectedDesc: []byte{3, 2, 1},
		},
		{
			desc:         "reverse insertion order",
			insertOrder:  []byte{3, 2, 1},
			expectedAsc:  []byte{1, 2, 3},
			expectedDesc: []byte{3, 2, 1},
		},
		{
			desc:         "interleaved insertion order",
			insertOrder:  []byte{2, 4, 1, 3},
			expectedAsc:  []byte{1, 2, 3, 4},
			expectedDesc: []byte{4, 3, 2, 1},
		},
	}

	for _, tc := range testList {
		t.Run(tc.desc, func(t *testing.T) {
			leaves := randomLeaves(len(tc.insertOrder))
			byKey := map[byte]*Leaf[string]{}

			var n Node[string] = NewNode4[string]()
			for i, key := range tc.insertOrder {
				byKey[key] = leaves[i]
				grown, _, err := n.(inner[string]).addChild(key, leaves[i])
				require.NoError(t, err)
				n = grown
			}

			in := n.(inner[string])
			assert.Equal(t, Kind(KindNode4), in.Kind())
			assert.EqualValues(t, len(tc.insertOrder), in.getHeader().getWidth())

			for key, leaf := range byKey {
				slot := in.getChild(key)
				require.NotNil(t, slot)
				assert.Same(t, leaf, *slot)
			}
			assert.Nil(t, in.getChild(0xff))

			kids := in.children()
			require.Len(t, kids, len(tc.expectedAsc))
			for i, key := range tc.expectedAsc {
				assert.Equal(t, key, kids[i].key)
			}
		})
	}
}

func TestNode4_GrowsToNode16WhenFull(t *testing.T) {
	leaves := randomLeaves(node4Cap + 1)

	var n Node[string] = NewNode4[string]()
	var err error
	for i := 0; i < node4Cap; i++ {
		n, _, err = n.(inner[string]).addChild(byte(i+1), leaves[i])
		require.NoError(t, err)
	}
	require.Equal(t, KindNode4, n.Kind())

	n, _, err = n.(inner[string]).addChild(byte(node4Cap+1), leaves[node4Cap])
	require.NoError(t, err)
	assert.Equal(t, KindNode16, n.Kind())
	assert.EqualValues(t, node4Cap+1, n.(inner[string]).getHeader().getWidth())

	for i := 0; i <= node4Cap; i++ {
		slot := n.(inner[string]).getChild(byte(i + 1))
		require.NotNil(t, slot)
		assert.Same(t, leaves[i], *slot)
	}
}

func TestNode4_PreservesHeaderAcrossGrowth(t *testing.T) {
	n4 := NewNode4[string]()
	n4.setPrefix([]byte{0x10, 0x20, 0x30})

	var n Node[string] = n4
	leaves := randomLeaves(node4Cap + 1)
	var err error
	for i := 0; i <= node4Cap; i++ {
		n, _, err = n.(inner[string]).addChild(byte(i+1), leaves[i])
		require.NoError(t, err)
	}

	h := n.(inner[string]).getHeader()
	assert.Equal(t, []byte{0x10, 0x20, 0x30}, h.getPrefix())
}
