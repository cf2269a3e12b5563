// Package ddt is the distributed triangulation façade: it wires a
// container.Container, a messaging.Hub, a scheduler.Scheduler, and a
// kernel.Kernel together into the single object client code drives —
// insert points, iterate main representatives, validate invariants,
// repartition, and persist.
package ddt
