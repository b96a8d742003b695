package cli

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/referlab/refnet/pkg/report"
)

// reportCommand creates the report command, which runs the full analysis
// pipeline and prints or exports the result.
func (c *CLI) reportCommand() *cobra.Command {
	var (
		input          string
		output         string
		topK           int
		skipCentrality bool
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Run the full network analysis and export it",
		Long: `Run the full analysis pipeline over a referral file: network stats, the
reach ranking, greedy coverage selection, and flow centrality. Results print
as tables by default, or as JSON with --json, and can be written to a file
with --output.

Examples:
  refnet report -i referrals.json
  refnet report -i referrals.csv --json
  refnet report -i referrals.json -o report.json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner := report.NewRunner(c.Logger)
			result, err := runner.Execute(cmd.Context(), report.Options{
				Input:          input,
				TopK:           topK,
				SkipCentrality: skipCentrality,
			})
			if err != nil {
				return err
			}

			if output != "" {
				if err := report.ExportJSON(result, output); err != nil {
					return err
				}
				printSuccess("Report written")
				printFile(output)
				return nil
			}
			if asJSON {
				return report.WriteJSON(result, os.Stdout)
			}

			printKeyValue("Run", result.RunID)
			printKeyValue("Users", strconv.Itoa(result.Stats.TotalUsers))
			printKeyValue("Referrals", strconv.Itoa(result.Stats.TotalReferrals))
			printKeyValue("Active referrers", strconv.Itoa(result.Stats.ActiveReferrers))
			printNewline()

			if len(result.TopReferrers) > 0 {
				printRankingTable("Top Referrers", "Reach", result.TopReferrers)
				printNewline()
			}
			if len(result.UniqueReach) > 0 {
				printRankingTable("Unique Reach Expansion", "New Coverage", result.UniqueReach)
				printNewline()
			}
			if len(result.Centrality) > 0 {
				printRankingTable("Flow Centrality", "Score", result.Centrality)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "referral file (.json or .csv)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the report as JSON to this file")
	cmd.Flags().IntVarP(&topK, "top", "k", report.DefaultTopK, "number of referrers in the reach ranking")
	cmd.Flags().BoolVar(&skipCentrality, "skip-centrality", false, "skip the all-pairs centrality stage")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}
