// Package order implements the order aggregate and its lifecycle state
// machine.
//
// Orders are partitioned across four bucket collections in the backing store,
// one per lifecycle status. An order document exists in exactly one bucket at
// any time, and its status field is always consistent with that bucket. The
// only legal moves are:
//
//	pending ──> prepared ──> completed
//	               │
//	               └───────> canceled
//
// completed and canceled are terminal.
//
// A move is never expressed as an in-place update: the aggregate produces a
// Transition value describing the destination copy (status overwritten,
// identity regenerated by the store) plus the source document to delete, and
// the repository commits it as one atomic batch together with the transition's
// notification. Because identity is regenerated on every move, cross-bucket
// correlation must use the order number, never the document key.
package order
