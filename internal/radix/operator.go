package radix

import "fmt"

// failNextAlloc, when non-nil, is consulted at every allocation point
// MakePath goes through (each new branch node it builds) before it
// allocates. Returning a non-nil error aborts the call with ErrNoMemory
// and leaves the live tree completely untouched — production code never
// sets this hook; it exists purely so tests can exercise the "no partial
// mutation on failure" guarantee (nsd_make_path's relpath scratch chain in
// tree.c achieves the same thing by building off to the side and splicing
// only once every allocation in the chain has succeeded).
var failNextAlloc func() error

func checkAlloc() error {
	if failNextAlloc != nil {
		if err := failNextAlloc(); err != nil {
			return fmt.Errorf("%w: %w", ErrNoMemory, err)
		}
	}
	return nil
}

// FindPath descends the tree along key, recording every step in cursor,
// and returns the leaf stored under key. It never mutates the tree
// (nsd_find_path in tree.c). On ErrNotFound no entry is popped: the
// cursor's last entry is the slot where the descent stopped (an empty
// slot, a leaf whose key differs, or an inner node whose prefix or
// branch byte does not match).
func FindPath[V any](root *Node[V], key []byte, cursor *Cursor[V]) (*Leaf[V], error) {
	cursor.Reset()
	slot := root
	depth := uint8(0)

	for {
		cursor.push(depth, slot)
		cur := *slot
		if cur == nil {
			return nil, ErrNotFound
		}

		if leaf, ok := cur.(*Leaf[V]); ok {
			if isExactMatch(leaf.key, key) {
				return leaf, nil
			}
			return nil, ErrNotFound
		}

		in := cur.(inner[V])
		h := in.getHeader()
		matched := h.checkPrefix(key, depth)
		if matched != h.getPrefixLen() {
			return nil, ErrNotFound
		}
		depth += matched
		if int(depth) >= len(key) {
			return nil, ErrNotFound
		}

		child := in.getChild(key[depth])
		if child == nil {
			return nil, ErrNotFound
		}
		depth++
		slot = child
	}
}

// MakePath descends the tree along key, splicing in whatever branch nodes
// are needed to make room for it, and returns the slot where key's leaf
// belongs. If key is already present, the returned slot holds its
// existing leaf; the caller (Tree.Insert) decides whether to overwrite it.
// MakePath never creates the leaf itself — only the position for one
// (nsd_make_path in tree.c, minus its value payload, which the source
// stores inline but this rewrite leaves to the caller).
//
// Every allocation MakePath performs is checked with checkAlloc before
// any node already in the live tree is mutated, so a failure at any point
// leaves the tree exactly as it was.
func MakePath[V any](root *Node[V], key []byte, cursor *Cursor[V]) (*Node[V], error) {
	cursor.Reset()
	slot := root
	depth := uint8(0)

	for {
		cursor.push(depth, slot)
		cur := *slot

		if cur == nil {
			if err := checkAlloc(); err != nil {
				return nil, err
			}
			return slot, nil
		}

		if leaf, ok := cur.(*Leaf[V]); ok {
			if isExactMatch(leaf.key, key) {
				return slot, nil
			}
			branch, newLeafSlot, err := buildLeafSplit[V](leaf, key, depth)
			if err != nil {
				return nil, err
			}
			*slot = branch
			cursor.push(depth, newLeafSlot)
			return newLeafSlot, nil
		}

		in := cur.(inner[V])
		h := in.getHeader()
		matched := h.checkPrefix(key, depth)
		if matched != h.getPrefixLen() {
			branch, newLeafSlot, err := buildPrefixSplit[V](in, key, depth, matched)
			if err != nil {
				return nil, err
			}
			*slot = branch
			cursor.push(depth, newLeafSlot)
			return newLeafSlot, nil
		}

		depth += matched
		if int(depth) >= len(key) {
			return nil, ErrNotFound
		}

		child := in.getChild(key[depth])
		if child == nil {
			if err := checkAlloc(); err != nil {
				return nil, err
			}
			grown, newChildSlot, err := in.addChild(key[depth], nil)
			if err != nil {
				return nil, err
			}
			*slot = grown
			depth++
			cursor.push(depth, newChildSlot)
			return newChildSlot, nil
		}
		depth++
		slot = child
	}
}

// buildLeafSplit builds (off to the side, touching nothing already in the
// tree) the replacement for a slot that held existingLeaf but whose key
// diverges from newKey at or after pos. When the common run exceeds
// maxPrefix it recurses, chaining single-child Node4s that each consume
// maxPrefix inline-prefix bytes plus one shared branch byte, until the
// remaining common length fits in one node's prefix.
func buildLeafSplit[V any](existingLeaf *Leaf[V], newKey []byte, pos uint8) (Node[V], *Node[V], error) {
	if err := checkAlloc(); err != nil {
		return nil, nil, err
	}

	lcp := longestCommonPrefix(existingLeaf.key, newKey, pos)
	if lcp > maxPrefix {
		chain := NewNode4[V]()
		chain.setPrefix(existingLeaf.key[pos : pos+maxPrefix])
		branchPos := pos + maxPrefix
		branchByte := existingLeaf.key[branchPos]

		child, newLeafSlot, err := buildLeafSplit[V](existingLeaf, newKey, branchPos+1)
		if err != nil {
			return nil, nil, err
		}
		if _, _, err := chain.addChild(branchByte, child); err != nil {
			return nil, nil, err
		}
		return chain, newLeafSlot, nil
	}

	branch := NewNode4[V]()
	branch.setPrefix(existingLeaf.key[pos : pos+lcp])
	divergePos := pos + lcp

	if _, _, err := branch.addChild(existingLeaf.key[divergePos], existingLeaf); err != nil {
		return nil, nil, err
	}
	_, newLeafSlot, err := branch.addChild(newKey[divergePos], nil)
	if err != nil {
		return nil, nil, err
	}
	return branch, newLeafSlot, nil
}

// buildPrefixSplit handles the case where an inner node's own compressed
// prefix only partially matches key: the node's prefix is longer than
// what key agrees with. matched bytes are common to both; the node keeps
// the rest of its prefix (minus the one branch byte that now distinguishes
// it from the new leaf) under a fresh Node4 that replaces it in the slot.
func buildPrefixSplit[V any](old inner[V], key []byte, depth, matched uint8) (Node[V], *Node[V], error) {
	if err := checkAlloc(); err != nil {
		return nil, nil, err
	}

	oldHeader := old.getHeader()
	oldPrefix := oldHeader.getPrefix()
	divergePos := depth + matched

	branch := NewNode4[V]()
	branch.setPrefix(oldPrefix[:matched])

	oldBranchByte := oldPrefix[matched]
	oldHeader.setPrefix(oldPrefix[matched+1:])

	if _, _, err := branch.addChild(oldBranchByte, old); err != nil {
		return nil, nil, err
	}
	_, newLeafSlot, err := branch.addChild(key[divergePos], nil)
	if err != nil {
		return nil, nil, err
	}
	return branch, newLeafSlot, nil
}
