package radix

import "errors"

// ErrNotFound is returned by FindPath when the key is absent from the tree.
var ErrNotFound = errors.New("radix: key not found")

// ErrNoMemory is returned by MakePath when a node or leaf allocation fails.
// Go's allocator does not fail under ordinary circumstances, so this is
// surfaced only by the injectable allocator used in failure-injection
// tests (see failNextAlloc in operator.go and
// TestMakePath_AllocFailureLeavesTreeUnchanged); production callers will
// not observe it.
var ErrNoMemory = errors.New("radix: allocation failed")
