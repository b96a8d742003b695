package referral

// TotalReach returns the number of distinct users reachable from user by
// following referral edges downstream, excluding user itself. Unknown users
// have a reach of 0.
func (n *Network) TotalReach(user string) int {
	if !n.HasUser(user) {
		return 0
	}
	return len(n.ReachableSet(user))
}

// ReachableSet returns the set of users reachable from user by following
// referral edges downstream. The user itself is excluded. Unknown users yield
// an empty set.
//
// The graph is acyclic so BFS visits each node at most once; the visited set
// guards against revisits all the same.
func (n *Network) ReachableSet(user string) map[string]struct{} {
	reachable := make(map[string]struct{})
	if !n.HasUser(user) {
		return reachable
	}

	queue := []string{user}
	visited := map[string]struct{}{user: {}}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for next := range n.referrals[current] {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}
			reachable[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	return reachable
}

// ShortestPaths returns a BFS distance map over downstream referral edges,
// with start at distance 0. Users not reachable from start are absent from
// the map. An unknown start yields a map containing only itself.
func (n *Network) ShortestPaths(start string) map[string]int {
	distances := map[string]int{start: 0}
	queue := []string{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		d := distances[current]

		for next := range n.referrals[current] {
			if _, seen := distances[next]; !seen {
				distances[next] = d + 1
				queue = append(queue, next)
			}
		}
	}

	return distances
}
