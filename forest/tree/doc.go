// Package tree implements a mutable, multi-child rooted tree used to
// hold a containment forest while it is being built. A Node owns its
// children outright and keeps a plain pointer back to its parent; Go's
// tracing garbage collector reclaims the resulting parent/child cycle
// once nothing external reaches any node in it, so there is no need
// for the weak-reference dance a refcounted runtime would require.
//
// Every mutation (Attach, Detach, Adopt, Upgrade) keeps a node's
// parent/child bookkeeping internally consistent: a node always has at
// most one parent, and a parent's children slice always has exactly
// one entry for each of its children, tracking that child's current
// slot so Detach can remove it in O(1).
//
// The tree is single-threaded; callers needing concurrent access must
// serialize it themselves.
package tree
