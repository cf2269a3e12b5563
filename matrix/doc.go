// Package matrix provides the dense numeric matrix type and element-wise
// and product kernels (Add, Sub, Mul, Transpose, Scale). There is no
// decomposition, inverse or eigen solver here; kernel/incremental computes
// its predicate determinants itself on top of Dense.
//
// It started life as a graph adjacency/incidence toolkit; the
// graph-conversion surface (AdjacencyMatrix, IncidenceMatrix, ToGraph/
// FromGraph) has been trimmed away along with the package's dependency on
// a graph type, since nothing in this module converts a graph to a matrix
// anymore. What survives is the general-purpose Dense matrix and its
// arithmetic: kernel/incremental builds the small homogeneous matrices its
// orientation and in-sphere predicates need on top of Dense, rather than
// hand-rolling its own flat-array bookkeeping.
package matrix
