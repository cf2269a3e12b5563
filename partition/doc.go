// Package partition assigns points to tiles and generates test point
// sets. Partitioning proper is an out-of-scope collaborator of the
// distributed triangulation: it decides which tile a point starts in, not
// how tiles reach Delaunay consistency.
package partition
