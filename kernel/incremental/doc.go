// Package incremental is a concrete, floating-point implementation of
// kernel.Kernel: an incremental Bowyer-Watson simplicial complex of ambient
// dimension D (2 or 3 in practice) with an explicit infinite vertex, making
// the complex a topological sphere as kernel's contract requires.
//
// Orientation and in-sphere tests are plain (D+1)x(D+1) / (D+2)x(D+2)
// determinants built on top of the matrix package's Dense storage, with no
// exact-arithmetic fallback: near-degenerate configurations can report
// ErrDegenerate instead of resolving a sign. No computational-geometry
// library appears anywhere in the retrieved reference pack this module was
// built against, so this is the one package in the module whose core
// numerics are hand-rolled rather than delegated to a third-party library.
package incremental
