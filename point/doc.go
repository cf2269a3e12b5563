// Package point defines the D-dimensional coordinate type shared by every
// other package in this module, plus an axis-aligned bounding box and the
// handful of value-equality / ordering predicates the kernel contract (§6 of
// the distributed-triangulation design) requires of points.
//
// A Point carries no dimension tag of its own: its length *is* the ambient
// dimension, and every Point passed to a given kernel.Kernel must share that
// length (spec: "D may be static... or dynamic..., identical across all
// tiles"). Callers that need a static D are expected to enforce it once, at
// the kernel boundary, not here.
package point
