// Package messaging provides the per-tile inboxes, the broadcast pool, and
// the send-dedup bookkeeping the splaying engine uses to move points
// between tiles without re-sending the same point to the same destination
// twice.
package messaging
