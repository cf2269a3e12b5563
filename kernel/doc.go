// Package kernel declares the geometry-kernel contract that every other
// package in this module treats as an external collaborator (design §6):
// a classical simplicial Delaunay complex of ambient dimension D with an
// infinite vertex making the complex a topological sphere, plus the handful
// of predicates (orientation, in-sphere, spatial sort, coordinate access)
// the distributed layer needs and never reimplements itself.
//
// This module is not allowed to assume a production-grade exact-arithmetic
// geometry library is available (none appears anywhere in the retrieved
// reference pack), so kernel/incremental provides a concrete, floating-point
// implementation of this contract sufficient to run the distributed engine
// end-to-end. A deployment that needs exact predicates swaps in a different
// Kernel implementation; nothing above this package's interface changes.
package kernel
