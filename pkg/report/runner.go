package report

import (
	"context"
	"encoding/json"
	stdio "io"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/referlab/refnet/pkg/errors"
	refio "github.com/referlab/refnet/pkg/io"
	"github.com/referlab/refnet/pkg/observability"
	"github.com/referlab/refnet/pkg/referral"
)

// Runner executes the report pipeline.
//
// The Runner is stateless except for the logger; it doesn't store results.
// Multiple goroutines can safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner logging through logger. A nil logger uses the
// package default.
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// applyLogger points the options at the runner's logger unless the caller
// provided one.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// Execute runs the complete load → analyze pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid options")
	}

	start := time.Now()
	observability.Report().OnAnalyzeStart(opts.Input)

	result := &Result{
		RunID: newRunID(),
		Input: opts.Input,
	}

	// Stage 1: Load
	loadStart := time.Now()
	n, err := r.load(opts)
	if err != nil {
		observability.Report().OnAnalyzeComplete(opts.Input, 0, time.Since(start), err)
		return nil, err
	}
	result.Stats = n.Stats()
	result.Timings.Load = Duration(time.Since(loadStart))

	r.Logger.Info("loaded network",
		"users", result.Stats.TotalUsers,
		"referrals", result.Stats.TotalReferrals,
		"duration", time.Since(loadStart))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 2: Rankings
	rankStart := time.Now()
	result.TopReferrers = n.TopReferrers(opts.TopK)
	result.UniqueReach = n.UniqueReachExpansion()
	result.Timings.Rank = Duration(time.Since(rankStart))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// Stage 3: Centrality, the only stage worth skipping on large inputs.
	if !opts.SkipCentrality {
		centralityStart := time.Now()
		result.Centrality = n.FlowCentrality()
		result.Timings.Centrality = Duration(time.Since(centralityStart))

		r.Logger.Info("computed centrality",
			"users", len(result.Centrality),
			"duration", time.Since(centralityStart))
	}

	result.Timings.Total = Duration(time.Since(start))
	observability.Report().OnAnalyzeComplete(opts.Input, result.Stats.TotalUsers, time.Since(start), nil)
	return result, nil
}

// load builds the network from opts, preferring an in-memory network over
// the input path.
func (r *Runner) load(opts Options) (*referral.Network, error) {
	if opts.Network != nil {
		return opts.Network, nil
	}
	return refio.ImportFile(opts.Input)
}

// WriteJSON encodes a result as indented JSON and writes it to w.
func WriteJSON(result *Result, w stdio.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode report")
	}
	return nil
}

// ExportJSON writes a result to a JSON file at path.
// This is a convenience wrapper around [WriteJSON] for file-based output.
func ExportJSON(result *Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "create %s", path)
	}
	defer f.Close()
	return WriteJSON(result, f)
}
