// Package splay implements the distributed star-splaying engine: the
// INSERT / BROADCAST / SPLAY / FINALIZE protocol by which each tile's
// local triangulation exchanges boundary points with its neighbors until
// every tile's local view agrees with the single global Delaunay
// triangulation of all points.
package splay
