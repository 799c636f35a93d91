// Package nav contains the coordinator navigation core.
//
// Allowed here:
// - coordinator registry, identity and liveness tracking
// - per-coordinator navigation state (screen path, modal presentation, alerts)
// - modal resolution policy and the dismiss/retry protocol
// - change notification and weak handles for descendant content
//
// Not allowed here:
// - concrete screen or modal rendering
// - catalog domain logic or storage access
//
// All mutation happens on the Bubble Tea update loop. The only deferred work
// is the replace-current retry, delivered back into the loop as a message, so
// the package needs no locking.
package nav
