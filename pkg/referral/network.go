package referral

import (
	"slices"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/observability"
)

// Network is a directed acyclic referral graph.
//
// Each accepted edge runs from a referrer to a candidate. The candidate side
// is unique (one referrer per candidate), so the structure is a forest of
// in-trees. The network only grows: there is no edge removal or update.
//
// The zero value is not usable - use New to create a valid Network instance.
// Network is not safe for concurrent use without external synchronization.
type Network struct {
	referrerOf map[string]string              // candidate -> referrer (primary index)
	referrals  map[string]map[string]struct{} // referrer -> candidates (fan-out index)
	users      map[string]struct{}            // every user seen in an accepted edge
}

// Stats summarizes the current state of the network.
type Stats struct {
	TotalUsers      int `json:"total_users"`
	TotalReferrals  int `json:"total_referrals"`
	ActiveReferrers int `json:"active_referrers"` // users with non-zero total reach
}

// New creates an empty referral network.
func New() *Network {
	return &Network{
		referrerOf: make(map[string]string),
		referrals:  make(map[string]map[string]struct{}),
		users:      make(map[string]struct{}),
	}
}

// AddReferral records that referrer referred candidate.
//
// The mutation is validated before any state changes, so a rejected call
// leaves the network exactly as it was. Failure codes:
//
//   - INVALID_INPUT: empty or malformed identifier, or referrer == candidate
//   - DUPLICATE_REFERRER: candidate already has a referrer
//   - CYCLE_DETECTED: the edge would close a directed cycle
//
// Check codes with errors.Is from this repository's errors package.
func (n *Network) AddReferral(referrer, candidate string) error {
	if err := n.checkReferral(referrer, candidate); err != nil {
		observability.Graph().OnReferralRejected(referrer, candidate, err)
		return err
	}

	n.referrerOf[candidate] = referrer
	if n.referrals[referrer] == nil {
		n.referrals[referrer] = make(map[string]struct{})
	}
	n.referrals[referrer][candidate] = struct{}{}
	n.users[referrer] = struct{}{}
	n.users[candidate] = struct{}{}

	observability.Graph().OnReferralAdded(referrer, candidate)
	return nil
}

// checkReferral validates the edge referrer→candidate without mutating state.
func (n *Network) checkReferral(referrer, candidate string) error {
	if err := errors.ValidateUserID(referrer); err != nil {
		return err
	}
	if err := errors.ValidateUserID(candidate); err != nil {
		return err
	}
	if referrer == candidate {
		return errors.New(errors.ErrCodeInvalidInput, "self-referrals are not allowed")
	}
	if _, exists := n.referrerOf[candidate]; exists {
		return errors.New(errors.ErrCodeDuplicateReferrer, "candidate %q already has a referrer", candidate)
	}
	if n.wouldCreateCycle(referrer, candidate) {
		return errors.New(errors.ErrCodeCycleDetected, "referral %q→%q would create a cycle", referrer, candidate)
	}
	return nil
}

// wouldCreateCycle reports whether the edge referrer→candidate would close a
// directed cycle. It searches fan-out edges from candidate looking for
// referrer: any such path plus the new edge forms a cycle. The pre-insertion
// graph is acyclic, so a plain DFS with a visited set terminates.
func (n *Network) wouldCreateCycle(referrer, candidate string) bool {
	visited := make(map[string]struct{})
	stack := []string{candidate}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if current == referrer {
			return true
		}
		if _, seen := visited[current]; seen {
			continue
		}
		visited[current] = struct{}{}

		for next := range n.referrals[current] {
			if _, seen := visited[next]; !seen {
				stack = append(stack, next)
			}
		}
	}

	return false
}

// DirectReferrals returns the candidates referred directly by user, sorted by
// ID. Unknown or childless users yield an empty slice, not an error. The sort
// order is for presentation only; the underlying set is unordered.
func (n *Network) DirectReferrals(user string) []string {
	children := n.referrals[user]
	out := make([]string, 0, len(children))
	for c := range children {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// HasUser reports whether user has appeared in any accepted edge.
func (n *Network) HasUser(user string) bool {
	_, ok := n.users[user]
	return ok
}

// Users returns all known users sorted by ID.
func (n *Network) Users() []string {
	out := make([]string, 0, len(n.users))
	for u := range n.users {
		out = append(out, u)
	}
	slices.Sort(out)
	return out
}

// UserCount returns the number of users in the network.
func (n *Network) UserCount() int { return len(n.users) }

// ReferralCount returns the number of accepted referral edges.
func (n *Network) ReferralCount() int { return len(n.referrerOf) }

// Stats computes summary statistics for the network. ActiveReferrers counts
// users whose total (direct plus indirect) reach is non-zero, which for this
// structure is exactly the users with at least one direct referral.
func (n *Network) Stats() Stats {
	active := 0
	for u := range n.users {
		if len(n.referrals[u]) > 0 {
			active++
		}
	}
	return Stats{
		TotalUsers:      len(n.users),
		TotalReferrals:  len(n.referrerOf),
		ActiveReferrers: active,
	}
}
