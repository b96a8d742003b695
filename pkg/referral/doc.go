// Package referral provides the directed referral graph at the heart of refnet.
//
// # Overview
//
// A [Network] records who referred whom. Edges run from referrer to candidate,
// with three constraints enforced on every insertion:
//
//   - No self-referrals
//   - At most one referrer per candidate
//   - No directed cycles
//
// Together these make the graph a forest of in-trees: following referrer links
// upward from any candidate always terminates.
//
// # Basic Usage
//
// Create a network with [New] and insert edges with [Network.AddReferral]:
//
//	n := referral.New()
//	n.AddReferral("alice", "bob")
//	n.AddReferral("bob", "charlie")
//
// Query reach and rankings:
//
//	n.TotalReach("alice")      // 2 (bob, charlie)
//	n.TopReferrers(10)         // users ranked by total downstream reach
//	n.UniqueReachExpansion()   // greedy set-cover selection
//	n.FlowCentrality()         // shortest-path betweenness counts
//
// # Analytics
//
// All analytics are pure reads computed fresh from current state on each call.
// Nothing is cached between calls, so repeated queries with no intervening
// mutation return identical results.
//
// [Network.UniqueReachExpansion] is a greedy approximation of weighted set
// cover. It is within a ln(n) factor of the optimal cover but not minimal;
// ties between candidates of equal coverage are broken in an unspecified
// order. [Network.FlowCentrality] enumerates all ordered pairs and costs
// O(V³); it is intended for modest network sizes.
//
// # Concurrency
//
// Network instances are not safe for concurrent use. Callers must synchronize
// access if multiple goroutines read or modify the same network. Read-only
// analytics can safely run in parallel across goroutines as long as no
// mutation is in flight.
package referral
