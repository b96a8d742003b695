package referral

import "sort"

// Ranking pairs a user with an analytics score. The meaning of Score depends
// on the producing operation: total reach for TopReferrers, incremental
// coverage for UniqueReachExpansion, and shortest-path count for
// FlowCentrality.
type Ranking struct {
	User  string `json:"user"`
	Score int    `json:"score"`
}

// sortRankings orders rankings by score descending. Equal scores are ordered
// by user ID so output is deterministic, though callers must not rely on any
// particular tie order.
func sortRankings(rankings []Ranking) {
	sort.Slice(rankings, func(i, j int) bool {
		if rankings[i].Score != rankings[j].Score {
			return rankings[i].Score > rankings[j].Score
		}
		return rankings[i].User < rankings[j].User
	})
}

// TopReferrers returns the k users with the largest total reach, descending.
// Users with zero reach are omitted. k <= 0 yields an empty list; a k larger
// than the number of qualifying users yields all of them.
func (n *Network) TopReferrers(k int) []Ranking {
	if k <= 0 {
		return nil
	}

	var rankings []Ranking
	for user := range n.users {
		if reach := n.TotalReach(user); reach > 0 {
			rankings = append(rankings, Ranking{User: user, Score: reach})
		}
	}

	sortRankings(rankings)
	if len(rankings) > k {
		rankings = rankings[:k]
	}
	return rankings
}

// UniqueReachExpansion selects referrers by greedy weighted set cover.
//
// Each iteration picks the user whose reachable set covers the most users not
// yet covered, records that incremental coverage, and removes the covered
// users from consideration. Selection stops when no user adds coverage.
//
// The result is sorted by coverage descending for presentation; when two
// selections have equal coverage the printed order may differ from selection
// order. The greedy cover is a ln(n)-factor approximation, not a minimum
// cover.
func (n *Network) UniqueReachExpansion() []Ranking {
	reaches := make(map[string]map[string]struct{})
	uncovered := make(map[string]struct{})

	// Iterate in sorted order so tie-breaks are deterministic run to run.
	candidates := n.Users()
	for _, user := range candidates {
		reachable := n.ReachableSet(user)
		if len(reachable) == 0 {
			continue
		}
		reaches[user] = reachable
		for r := range reachable {
			uncovered[r] = struct{}{}
		}
	}

	var selected []Ranking
	for len(uncovered) > 0 && len(reaches) > 0 {
		bestUser := ""
		bestCoverage := 0
		for _, user := range candidates {
			reachable, ok := reaches[user]
			if !ok {
				continue
			}
			coverage := 0
			for r := range reachable {
				if _, uc := uncovered[r]; uc {
					coverage++
				}
			}
			if coverage > bestCoverage {
				bestCoverage = coverage
				bestUser = user
			}
		}

		if bestUser == "" || bestCoverage == 0 {
			break
		}

		selected = append(selected, Ranking{User: bestUser, Score: bestCoverage})
		for r := range reaches[bestUser] {
			delete(uncovered, r)
		}
		delete(reaches, bestUser)
	}

	sortRankings(selected)
	return selected
}

// FlowCentrality scores each user by the number of ordered source/target
// pairs whose shortest path passes through it.
//
// A user v lies on a shortest path from s to t exactly when v is reachable
// from s, t is reachable from v, and dist(s,v) + dist(v,t) == dist(s,t) in
// the unweighted graph. Fewer than 3 users is degenerate and yields an empty
// list.
//
// All-pairs distances are precomputed once per source, so the pair/candidate
// enumeration costs O(V³). Keep network sizes modest.
func (n *Network) FlowCentrality() []Ranking {
	userList := n.Users()
	if len(userList) < 3 {
		return nil
	}

	distances := make(map[string]map[string]int, len(userList))
	for _, user := range userList {
		distances[user] = n.ShortestPaths(user)
	}

	scores := make(map[string]int, len(userList))
	for _, s := range userList {
		fromS := distances[s]
		for _, t := range userList {
			if s == t {
				continue
			}
			dST, reachable := fromS[t]
			if !reachable {
				continue
			}
			for _, v := range userList {
				if v == s || v == t {
					continue
				}
				dSV, okSV := fromS[v]
				dVT, okVT := distances[v][t]
				if okSV && okVT && dSV+dVT == dST {
					scores[v]++
				}
			}
		}
	}

	rankings := make([]Ranking, 0, len(userList))
	for _, user := range userList {
		rankings = append(rankings, Ranking{User: user, Score: scores[user]})
	}
	sortRankings(rankings)
	return rankings
}
