//go:build amd64

package radix

import "golang.org/x/sys/cpu"

// HaveAVX2 reports whether the running CPU supports AVX2, which the source
// gates Node32 behind at compile time (HAVE_AVX2 in tree.h). Go targets a
// single binary across CPU generations, so the source's compile-time
// #ifdef becomes a runtime check here: on a host without AVX2, Node16
// grows straight to Node38 or Node48 instead (see node16.go).
var HaveAVX2 = cpu.X86.HasAVX2
