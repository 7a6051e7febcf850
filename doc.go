// Package state implements an in-process hierarchical metadata and typed
// state store. Holders carry string label/value pairs ("tags") arranged in a
// parent/child tree where tags inherit downwards, and a typed slot mechanism
// (State keyed by Key) layers heterogeneous versioned values on top.
//
// Structure:
//   - Meta is a plain tag holder; Query matches holders by required-all and
//     optional-any tag sets.
//   - Container is a branch node owning an ordered child list of States and
//     nested Containers; Offer, Get and the Query* functions operate on it.
//   - State wraps one typed element plus the previous element for change
//     tracking; Key is the immutable schema token identifying a slot.
//   - Rules evaluates expressions (expr, CEL, or JS behind the js_eval build
//     tag) against a container snapshot to compute derived values.
//
// The tree is not safe for concurrent structural mutation; hosts serialize
// mutating operations per subtree. Tag snapshots returned by Tags() are
// defensive copies and safe to read from any goroutine.
package state
