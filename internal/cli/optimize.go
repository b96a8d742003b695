package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/referlab/refnet/pkg/errors"
	"github.com/referlab/refnet/pkg/growth"
)

// Adoption curve names accepted by --curve.
const (
	curveSaturating = "saturating"
	curveLinear     = "linear"
)

// optimizeOpts holds the command-line flags for the optimize command.
type optimizeOpts struct {
	days   int     // hiring deadline in days
	target int     // hires needed by the deadline
	curve  string  // adoption curve name
	scale  float64 // dollar scale for the saturating curve
	slope  float64 // probability per dollar for the linear curve
	eps    float64 // probability tolerance
}

// adoptionCurve maps the --curve flag to a growth.AdoptionFunc.
func (o *optimizeOpts) adoptionCurve() (growth.AdoptionFunc, error) {
	switch o.curve {
	case curveSaturating:
		return growth.SaturatingCurve(o.scale), nil
	case curveLinear:
		return growth.LinearCurve(o.slope), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"unknown curve %q (must be one of: saturating, linear)", o.curve)
	}
}

// optimizeCommand creates the optimize command.
func (c *CLI) optimizeCommand() *cobra.Command {
	opts := optimizeOpts{
		days:   30,
		target: 100,
		curve:  curveSaturating,
		scale:  2000,
		slope:  0.0001,
		eps:    1e-3,
	}

	cmd := &cobra.Command{
		Use:   "optimize",
		Short: "Find the minimum bonus that meets a hiring target",
		Long: `Search for the cheapest referral bonus whose adoption probability lets the
expected simulation reach the hiring target within the deadline. The bonus is
searched in fixed dollar increments under an adoption curve mapping bonus
dollars to referral probability.

Curves:
  saturating   1 - e^(-bonus/scale), diminishing returns (default)
  linear       slope * bonus, clamped to [0, 1]

Examples:
  refnet optimize --days 30 --target 200
  refnet optimize --days 60 --target 500 --curve linear --slope 0.0002`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			curve, err := opts.adoptionCurve()
			if err != nil {
				return err
			}

			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			sim := growth.NewSimulator(cfg.Simulation)
			opt := growth.NewOptimizer(sim, cfg.Bonus)

			spin := newSpinner(cmd.Context(), fmt.Sprintf("Searching bonuses for %d hires in %d days", opts.target, opts.days))
			spin.Start()
			analysis, err := opt.AnalyzeBonusEffectiveness(opts.days, opts.target, curve, opts.eps)
			spin.Stop()
			if err != nil {
				return err
			}
			if spin.Cancelled() {
				return cmd.Context().Err()
			}

			if !analysis.Achievable {
				printWarning("No bonus reaches %d hires in %d days (population limit %d)",
					opts.target, opts.days, sim.MaxTotal())
				return nil
			}

			printSuccess("Target achievable")
			printAnalysisTable(analysis)
			return nil
		},
	}

	cmd.Flags().IntVarP(&opts.days, "days", "d", opts.days, "hiring deadline in days")
	cmd.Flags().IntVarP(&opts.target, "target", "t", opts.target, "hires needed by the deadline")
	cmd.Flags().StringVar(&opts.curve, "curve", opts.curve, "adoption curve (saturating|linear)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "dollar scale for the saturating curve")
	cmd.Flags().Float64Var(&opts.slope, "slope", opts.slope, "probability per dollar for the linear curve")
	cmd.Flags().Float64Var(&opts.eps, "eps", opts.eps, "probability tolerance")

	return cmd
}

// printAnalysisTable renders the bonus analysis as a two-column table.
func printAnalysisTable(a growth.Analysis) {
	rows := [][]string{
		{"Minimum bonus", "$" + strconv.Itoa(a.MinBonus)},
		{"Cost per hire", "$" + strconv.Itoa(a.CostPerHire)},
		{"Total cost", "$" + strconv.Itoa(a.TotalCost)},
		{"Deadline", strconv.Itoa(a.Days) + " days"},
		{"Target hires", strconv.Itoa(a.TargetHires)},
		{"Run", a.RunID},
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 1 {
				return StyleNumber
			}
			return StyleDim
		})

	fmt.Println(t.Render())
}
