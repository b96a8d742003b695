package cli

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/referlab/refnet/pkg/io"
	"github.com/referlab/refnet/pkg/referral"
)

// networkCommand creates the network command with query subcommands.
// Every subcommand loads the referral file named by --input and runs one
// query against the resulting network.
func (c *CLI) networkCommand() *cobra.Command {
	var input string

	cmd := &cobra.Command{
		Use:   "network",
		Short: "Query a referral network loaded from a file",
		Long: `Query a referral network loaded from a JSON or CSV referral file.

Examples:
  refnet network stats -i referrals.json
  refnet network top -i referrals.json -k 5
  refnet network reach alice -i referrals.csv
  refnet network centrality -i referrals.json`,
	}

	cmd.PersistentFlags().StringVarP(&input, "input", "i", "", "referral file (.json or .csv)")
	_ = cmd.MarkPersistentFlagRequired("input")

	cmd.AddCommand(c.statsCmd(&input))
	cmd.AddCommand(c.topCmd(&input))
	cmd.AddCommand(c.reachCmd(&input))
	cmd.AddCommand(c.referralsCmd(&input))
	cmd.AddCommand(c.expansionCmd(&input))
	cmd.AddCommand(c.centralityCmd(&input))

	return cmd
}

// loadNetwork imports the referral file and logs how long it took.
func (c *CLI) loadNetwork(input string) (*referral.Network, error) {
	p := newProgress(c.Logger)
	n, err := io.ImportFile(input)
	if err != nil {
		return nil, err
	}
	stats := n.Stats()
	p.done(fmt.Sprintf("Loaded %d users, %d referrals", stats.TotalUsers, stats.TotalReferrals))
	return n, nil
}

func (c *CLI) statsCmd(input *string) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show network size and shape",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(*input)
			if err != nil {
				return err
			}
			stats := n.Stats()
			printKeyValue("Users", strconv.Itoa(stats.TotalUsers))
			printKeyValue("Referrals", strconv.Itoa(stats.TotalReferrals))
			printKeyValue("Active referrers", strconv.Itoa(stats.ActiveReferrers))
			return nil
		},
	}
}

func (c *CLI) topCmd(input *string) *cobra.Command {
	var k int

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Rank referrers by total downstream reach",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(*input)
			if err != nil {
				return err
			}
			rankings := n.TopReferrers(k)
			if len(rankings) == 0 {
				printInfo("No referrers with downstream reach")
				return nil
			}
			printRankingTable("Top Referrers", "Reach", rankings)
			return nil
		},
	}
	cmd.Flags().IntVarP(&k, "top", "k", 10, "number of referrers to show")
	return cmd
}

func (c *CLI) reachCmd(input *string) *cobra.Command {
	return &cobra.Command{
		Use:   "reach <user>",
		Short: "Show a user's total downstream reach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(*input)
			if err != nil {
				return err
			}
			user := args[0]
			if !n.HasUser(user) {
				printWarning("Unknown user %q", user)
				return nil
			}
			reach := n.ReachableSet(user)
			printKeyValue("User", user)
			printKeyValue("Total reach", strconv.Itoa(len(reach)))

			names := make([]string, 0, len(reach))
			for u := range reach {
				names = append(names, u)
			}
			sort.Strings(names)
			for _, u := range names {
				printDetail("%s", u)
			}
			return nil
		},
	}
}

func (c *CLI) referralsCmd(input *string) *cobra.Command {
	return &cobra.Command{
		Use:   "referrals <user>",
		Short: "List a user's direct referrals",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(*input)
			if err != nil {
				return err
			}
			user := args[0]
			if !n.HasUser(user) {
				printWarning("Unknown user %q", user)
				return nil
			}
			direct := n.DirectReferrals(user)
			printKeyValue("User", user)
			printKeyValue("Direct referrals", strconv.Itoa(len(direct)))
			for _, u := range direct {
				printDetail("%s", u)
			}
			return nil
		},
	}
}

func (c *CLI) expansionCmd(input *string) *cobra.Command {
	return &cobra.Command{
		Use:   "expansion",
		Short: "Greedy referrer selection by unique marginal coverage",
		Long: `Select referrers one at a time, each maximizing the number of users not
already covered by earlier picks. Scores are marginal coverage, so they sum
to the union of all reachable sets.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(*input)
			if err != nil {
				return err
			}
			rankings := n.UniqueReachExpansion()
			if len(rankings) == 0 {
				printInfo("No referrers with downstream reach")
				return nil
			}
			printRankingTable("Unique Reach Expansion", "New Coverage", rankings)
			return nil
		},
	}
}

func (c *CLI) centralityCmd(input *string) *cobra.Command {
	return &cobra.Command{
		Use:   "centrality",
		Short: "Rank users by shortest-path brokerage",
		Long: `Score each user by how many shortest referral paths between other users
pass through them. High scorers are structural brokers whose departure
fragments the network.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := c.loadNetwork(*input)
			if err != nil {
				return err
			}

			// All-pairs BFS; worth a spinner on big networks.
			spin := newSpinner(cmd.Context(), "Scoring brokerage for every user")
			spin.Start()
			rankings := n.FlowCentrality()
			spin.Stop()
			if spin.Cancelled() {
				return cmd.Context().Err()
			}
			if len(rankings) == 0 {
				printInfo("Centrality needs at least three users")
				return nil
			}
			printRankingTable("Flow Centrality", "Score", rankings)
			return nil
		},
	}
}

// printRankingTable renders rankings as a bordered table.
func printRankingTable(title, scoreHeader string, rankings []referral.Ranking) {
	fmt.Println(StyleTitle.Render(title))

	rows := make([][]string, len(rankings))
	for i, r := range rankings {
		rows[i] = []string{strconv.Itoa(i + 1), r.User, strconv.Itoa(r.Score)}
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(StyleDim).
		Headers("#", "User", scoreHeader).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			if col == 2 {
				return StyleNumber
			}
			return StyleValue
		})

	fmt.Println(t.Render())
}
