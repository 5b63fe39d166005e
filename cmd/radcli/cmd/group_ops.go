package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <name> <new-name>",
	Short: "Rename a monitoring group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := client.RenameGroup(ctx, agentID, args[0], args[1]); err != nil {
			return fmt.Errorf("failed to rename group: %w", err)
		}
		fmt.Printf("Group %q renamed to %q\n", args[0], args[1])
		return nil
	},
}

var removeCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a monitoring group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := client.RemoveGroup(ctx, agentID, args[0]); err != nil {
			return fmt.Errorf("failed to remove group: %w", err)
		}
		fmt.Printf("Group %q removed\n", args[0])
		return nil
	},
}

var retrainTrainingFile string

var retrainCmd = &cobra.Command{
	Use:   "retrain <name>",
	Short: "Restart model learning for a group",
	Long: `Restart model learning for a group.

A training file may select the time ranges to learn from and subgroups
to exclude; excluding subgroups requires a platform with shared-group
support.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		training, err := loadTrainingFile(retrainTrainingFile)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := client.Retrain(ctx, agentID, args[0], training); err != nil {
			return fmt.Errorf("failed to retrain group: %w", err)
		}
		fmt.Printf("Retraining started for group %q\n", args[0])
		return nil
	},
}

func init() {
	retrainCmd.Flags().StringVar(&retrainTrainingFile, "training", "", "Training configuration file")
}
