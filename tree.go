package namedb

import (
	"errors"
	"fmt"

	"github.com/k0ekk0ek/namedb/internal/radix"
)

// ErrNotFound is returned by Get when key is absent from the tree.
var ErrNotFound = errors.New("namedb: key not found")

// ErrNoMemory surfaces internal/radix's allocation-failure sentinel; see
// radix.ErrNoMemory. Ordinary Go allocation does not fail, so callers
// outside this package's own tests will never observe it.
var ErrNoMemory = errors.New("namedb: allocation failed")

// WalkFn is called once per stored key/value pair during Walk or
// WalkBackwards. Returning a non-nil error stops the walk and the error
// propagates out of the Walk call.
type WalkFn[V any] func(key Key, value V) error

// Tree is an adaptive radix tree keyed by Key. It admits, but does not
// implement, the single-writer/many-reader discipline spec §5 describes
// for the underlying node family: Tree itself performs no locking, and a
// caller that needs concurrent readers alongside writes is responsible
// for external synchronization or atomic root-slot publication (see
// bench_test.go for a worked example using sync/atomic and errgroup).
type Tree[V any] struct {
	root       radix.Node[V]
	pathCursor radix.Cursor[V]
	length     int
}

// NewTree returns an empty Tree.
func NewTree[V any]() *Tree[V] {
	return &Tree[V]{}
}

func wrapErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, radix.ErrNotFound):
		return fmt.Errorf("%w", ErrNotFound)
	case errors.Is(err, radix.ErrNoMemory):
		return fmt.Errorf("%w", ErrNoMemory)
	default:
		return err
	}
}

// Get returns the value stored under key, or ErrNotFound.
func (t *Tree[V]) Get(key Key) (V, error) {
	var cursor radix.Cursor[V]
	leaf, err := radix.FindPath[V](&t.root, key, &cursor)
	if err != nil {
		var zero V
		return zero, wrapErr(err)
	}
	return leaf.Value(), nil
}

// Insert stores value under key, overwriting any value already there, and
// returns the value key held before the call. A caller that needs to tell
// "existed" from "created" without knowing V's zero value should use
// InsertOrGet instead (matching main.c's put_key demonstrator, which
// distinguishes the two by checking the previous leaf's data pointer).
func (t *Tree[V]) Insert(key Key, value V) (previous V, err error) {
	slot, mErr := radix.MakePath[V](&t.root, key, &t.pathCursor)
	if mErr != nil {
		var zero V
		return zero, wrapErr(mErr)
	}
	if *slot == nil {
		*slot = radix.NewLeaf[V](key, value)
		t.length++
		var zero V
		return zero, nil
	}
	leaf := (*slot).(*radix.Leaf[V])
	previous = leaf.Value()
	leaf.SetValue(value)
	return previous, nil
}

// InsertOrGet stores value under key only if key is not already present,
// and returns the value now stored under key: value itself if this call
// created the entry, or the pre-existing value otherwise.
func (t *Tree[V]) InsertOrGet(key Key, value V) (stored V, created bool, err error) {
	slot, mErr := radix.MakePath[V](&t.root, key, &t.pathCursor)
	if mErr != nil {
		var zero V
		return zero, false, wrapErr(mErr)
	}
	if *slot == nil {
		*slot = radix.NewLeaf[V](key, value)
		t.length++
		return value, true, nil
	}
	leaf := (*slot).(*radix.Leaf[V])
	return leaf.Value(), false, nil
}

// Len reports the number of keys currently stored.
func (t *Tree[V]) Len() int {
	return t.length
}

// Walk visits every stored key/value pair in ascending (canonical DNS)
// order, stopping early if fn returns an error.
func (t *Tree[V]) Walk(fn WalkFn[V]) error {
	return t.walk(false, fn)
}

// WalkBackwards visits every stored key/value pair in descending order.
func (t *Tree[V]) WalkBackwards(fn WalkFn[V]) error {
	return t.walk(true, fn)
}

// WalkPrefix visits every stored key/value pair whose key starts with
// prefix, in ascending order. Since names share a key prefix exactly when
// they share a zone cut (labels are reversed and TLD-first, spec §4.1),
// this enumerates an entire zone: pass MakeKey(zone) with its trailing
// terminator byte trimmed off to walk everything under zone.
func (t *Tree[V]) WalkPrefix(prefix Key, fn WalkFn[V]) error {
	sub := radix.Seek[V](t.root, prefix)
	var walkErr error
	radix.Walk[V](sub, false, func(leaf *radix.Leaf[V]) bool {
		if err := fn(leaf.Key(), leaf.Value()); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	return walkErr
}

func (t *Tree[V]) walk(descending bool, fn WalkFn[V]) error {
	var walkErr error
	radix.Walk[V](t.root, descending, func(leaf *radix.Leaf[V]) bool {
		if err := fn(leaf.Key(), leaf.Value()); err != nil {
			walkErr = err
			return false
		}
		return true
	})
	return walkErr
}
