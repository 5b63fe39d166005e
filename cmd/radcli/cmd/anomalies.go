package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/radwatch/radclient/pkg/radmodel"
)

var (
	anomaliesSince time.Duration
	historyFrom    string
	historyTo      string
)

var anomaliesCmd = &cobra.Command{
	Use:   "anomalies <group>",
	Short: "Fetch current anomaly scores for a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		to := time.Now()
		from := to.Add(-anomaliesSince)
		points, err := client.Anomalies(ctx, agentID, args[0], from, to)
		if err != nil {
			return fmt.Errorf("failed to fetch anomalies: %w", err)
		}

		return printPoints(points)
	},
}

var historyCmd = &cobra.Command{
	Use:   "history <group>",
	Short: "Fetch historical anomalies for a group",
	Long: `Fetch historical anomalies for a group.

Requires a platform new enough to support the historical anomaly query.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		from, err := time.Parse(time.RFC3339, historyFrom)
		if err != nil {
			return fmt.Errorf("invalid --from value: %w", err)
		}
		to, err := time.Parse(time.RFC3339, historyTo)
		if err != nil {
			return fmt.Errorf("invalid --to value: %w", err)
		}

		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		points, err := client.History(ctx, agentID, args[0], from, to)
		if err != nil {
			return fmt.Errorf("failed to fetch history: %w", err)
		}

		return printPoints(points)
	},
}

func printPoints(points []radmodel.AnomalyPoint) error {
	if outputYAML {
		return printYAML(points)
	}

	if len(points) == 0 {
		fmt.Println("No anomalies found")
		return nil
	}
	for _, p := range points {
		fmt.Printf("%s  score=%.2f", p.Time.Format(time.RFC3339), p.Score)
		if p.SubgroupID != "" {
			fmt.Printf("  subgroup=%s", p.SubgroupID)
		}
		fmt.Println()
	}
	return nil
}

func init() {
	anomaliesCmd.Flags().DurationVar(&anomaliesSince, "since", time.Hour, "Look-back window")

	historyCmd.Flags().StringVar(&historyFrom, "from", "", "Range start, RFC3339 (required)")
	historyCmd.Flags().StringVar(&historyTo, "to", "", "Range end, RFC3339 (required)")
	historyCmd.MarkFlagRequired("from")
	historyCmd.MarkFlagRequired("to")
}
