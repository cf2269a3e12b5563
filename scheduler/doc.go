// Package scheduler provides the parallel-traversal abstraction the
// splaying engine and the ddt façade run every tile-indexed operation
// through: Sequential (no concurrency), Pooled (a fixed worker pool over
// one process's memory), and Distributed (channel-based peers standing in
// for message-passing ranks).
package scheduler
