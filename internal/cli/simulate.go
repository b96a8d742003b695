package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/referlab/refnet/pkg/growth"
)

// simulateOpts holds the command-line flags for the simulate command.
type simulateOpts struct {
	p         float64 // per-day referral success probability
	days      int     // days to simulate
	expected  bool    // deterministic expectation instead of random draws
	seed      int64   // RNG seed for stochastic runs
	referrers int     // initial population override
	capacity  int     // per-slot capacity override
	live      bool    // animate the run in the terminal
}

// newSimulator builds a simulator from flags layered over the config file.
func (c *CLI) newSimulator(opts *simulateOpts) (*growth.Simulator, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return nil, err
	}
	if opts.referrers > 0 {
		cfg.Simulation.Referrers = opts.referrers
	}
	if opts.capacity > 0 {
		cfg.Simulation.Capacity = opts.capacity
	}
	if opts.seed != 0 {
		cfg.Simulation.Seed = opts.seed
	}
	return growth.NewSimulator(cfg.Simulation), nil
}

// simulateCommand creates the simulate command and its target subcommand.
func (c *CLI) simulateCommand() *cobra.Command {
	opts := simulateOpts{p: 0.1, days: 30}

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Simulate referral-driven hiring growth",
		Long: `Simulate a population of referrers making probabilistic referrals over
discrete days. Each referrer succeeds with probability -p per day and stops
after reaching its referral capacity.

Examples:
  refnet simulate -p 0.1 --days 60
  refnet simulate -p 0.2 --days 30 --expected
  refnet simulate -p 0.1 --days 90 --live`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := c.newSimulator(&opts)
			if err != nil {
				return err
			}

			if opts.live {
				return runLiveSimulation(cmd.Context(), sim, opts.p, opts.days, opts.expected)
			}

			p := newProgress(c.Logger)
			final, totals, err := runSimulation(sim, opts.p, opts.days, opts.expected)
			if err != nil {
				return err
			}
			p.done(fmt.Sprintf("Simulated %d days", opts.days))

			printKeyValue("Probability", strconv.FormatFloat(opts.p, 'g', -1, 64))
			printKeyValue("Days", strconv.Itoa(opts.days))
			printKeyValue("Referrers", strconv.Itoa(sim.Referrers()))
			printKeyValue("Capacity", strconv.Itoa(sim.Capacity()))
			printKeyValue("Total referrals", final)
			printSparkline(totals, float64(sim.MaxTotal()))
			return nil
		},
	}

	// Model flags are persistent so `simulate target` shares them.
	cmd.PersistentFlags().Float64VarP(&opts.p, "probability", "p", opts.p, "per-day referral success probability")
	cmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "RNG seed for reproducible stochastic runs")
	cmd.PersistentFlags().IntVar(&opts.referrers, "referrers", 0, "initial referrer population (default from config)")
	cmd.PersistentFlags().IntVar(&opts.capacity, "capacity", 0, "referrals per referrer before retirement (default from config)")
	cmd.Flags().IntVarP(&opts.days, "days", "d", opts.days, "days to simulate")
	cmd.Flags().BoolVar(&opts.expected, "expected", false, "deterministic expected-value run")
	cmd.Flags().BoolVar(&opts.live, "live", false, "animate the run in the terminal")

	cmd.AddCommand(c.simulateTargetCmd(&opts))

	return cmd
}

// runSimulation dispatches to the stochastic or expected variant and formats
// the final total. The normalized float slice feeds the sparkline.
func runSimulation(sim *growth.Simulator, p float64, days int, expected bool) (string, []float64, error) {
	if expected {
		totals, err := sim.SimulateExpected(p, days)
		if err != nil {
			return "", nil, err
		}
		final := 0.0
		if len(totals) > 0 {
			final = totals[len(totals)-1]
		}
		return strconv.FormatFloat(final, 'f', 1, 64), totals, nil
	}

	totals, err := sim.Simulate(p, days)
	if err != nil {
		return "", nil, err
	}
	final := 0
	floats := make([]float64, len(totals))
	for i, t := range totals {
		floats[i] = float64(t)
	}
	if len(totals) > 0 {
		final = totals[len(totals)-1]
	}
	return strconv.Itoa(final), floats, nil
}

// simulateTargetCmd answers "how many days until we reach N hires".
func (c *CLI) simulateTargetCmd(opts *simulateOpts) *cobra.Command {
	var target int

	cmd := &cobra.Command{
		Use:   "target",
		Short: "Find the minimum days to reach a hiring target",
		Long: `Binary-search the expected-value simulation for the smallest number of
days at which the cumulative referral total reaches the target.

Example:
  refnet simulate target -p 0.1 --hires 500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sim, err := c.newSimulator(opts)
			if err != nil {
				return err
			}

			days, ok, err := sim.DaysToTarget(opts.p, target)
			if err != nil {
				return err
			}
			if !ok {
				printWarning("Target of %d hires is unreachable at p=%g (max %d)", target, opts.p, sim.MaxTotal())
				return nil
			}
			printSuccess("Target of %d hires reached in %s days", target, StyleNumber.Render(strconv.Itoa(days)))
			return nil
		},
	}

	cmd.Flags().IntVar(&target, "hires", 100, "hiring target")
	return cmd
}

// sparkline glyphs from empty to full.
var sparks = []rune("▁▂▃▄▅▆▇█")

// printSparkline renders the growth trajectory as a one-line sparkline
// scaled against max.
func printSparkline(totals []float64, max float64) {
	if len(totals) == 0 || max <= 0 {
		return
	}
	// Downsample long runs to a terminal-friendly width.
	const width = 60
	step := 1
	if len(totals) > width {
		step = (len(totals) + width - 1) / width
	}

	out := make([]rune, 0, width)
	for i := 0; i < len(totals); i += step {
		idx := int(totals[i] / max * float64(len(sparks)-1))
		if idx >= len(sparks) {
			idx = len(sparks) - 1
		}
		out = append(out, sparks[idx])
	}
	printDetail("%s", string(out))
}
