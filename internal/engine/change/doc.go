// Package change wires buffer-change notifications to the token cache and
// republishes them as tokens-changed events.
//
// The Coordinator reacts to a host's buffer-changed notification: stale
// notifications (taken against a snapshot that is no longer current) are
// dropped, guarding against out-of-order delivery. For a current
// notification it forces a cache reset and emits a conservative
// "tokens changed from the earliest edit to end of buffer" event to every
// subscribed listener.
//
// Delivery is synchronous and in subscription order, matching the
// single-owner-thread model of the cache. The Coordinator performs no
// internal locking.
package change
