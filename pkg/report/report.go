// Package report provides the load → analyze → export pipeline for referral
// network reports.
//
// This package centralizes the analysis logic shared by the CLI commands, so
// every entry point computes the same figures the same way.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Load: Build a network from a JSON or CSV referral file
//  2. Analyze: Compute stats, reach rankings, greedy coverage, and centrality
//  3. Export: Optionally write the result as JSON
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := report.NewRunner(logger)
//	opts := report.Options{Input: "referrals.json", TopK: 10}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.TopReferrers)
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/referral"
)

// DefaultTopK is the number of entries reported per ranking.
const DefaultTopK = 10

// Options contains all configuration for a report run.
// This struct supports JSON serialization for saved report requests.
type Options struct {
	// Input is the path of a .json or .csv referral file. Ignored when
	// Network is set.
	Input string `json:"input,omitempty"`

	// TopK bounds the reach ranking length. Zero takes DefaultTopK.
	TopK int `json:"top_k,omitempty"`

	// SkipCentrality drops the all-pairs centrality stage, which dominates
	// runtime on large networks.
	SkipCentrality bool `json:"skip_centrality,omitempty"`

	// Runtime options (not serialized)
	Network *referral.Network `json:"-"`
	Logger  *log.Logger       `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// This method is idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" && o.Network == nil {
		return errors.New(errors.ErrCodeInvalidInput, "input path or network is required")
	}
	if o.TopK < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "top_k must be non-negative, got %d", o.TopK)
	}
	if o.TopK == 0 {
		o.TopK = DefaultTopK
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

// Result contains the outputs of a report run.
type Result struct {
	// RunID uniquely identifies the run across logs and exports.
	RunID string `json:"run_id"`

	// Input echoes the source path, empty for in-memory networks.
	Input string `json:"input,omitempty"`

	// Stats summarizes the network shape.
	Stats referral.Stats `json:"stats"`

	// TopReferrers ranks users by total downstream reach.
	TopReferrers []referral.Ranking `json:"top_referrers"`

	// UniqueReach is the greedy coverage ranking; scores are marginal
	// coverage, not raw reach.
	UniqueReach []referral.Ranking `json:"unique_reach"`

	// Centrality ranks users by shortest-path brokerage. Empty when
	// SkipCentrality is set or the network has fewer than three users.
	Centrality []referral.Ranking `json:"centrality,omitempty"`

	// Timings contains per-stage durations.
	Timings Timings `json:"timings"`
}

// Timings contains report execution statistics.
type Timings struct {
	Load       Duration `json:"load"`
	Rank       Duration `json:"rank"`
	Centrality Duration `json:"centrality"`
	Total      Duration `json:"total"`
}

// Duration is a time.Duration that marshals as a human-readable string
// ("1.5ms") instead of nanoseconds.
type Duration time.Duration

// MarshalJSON implements json.Marshaler.
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(parsed)
	return nil
}

// newRunID returns a fresh identifier for a report run.
func newRunID() string {
	return uuid.NewString()
}
