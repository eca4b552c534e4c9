//go:build !amd64

package radix

// HaveAVX2 is always false off amd64: Node32 (the AVX2-eligible 32-wide
// layout) is never grown into on these hosts.
var HaveAVX2 = false
