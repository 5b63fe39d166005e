package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	createGroupFile    string
	createTrainingFile string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a monitoring group from a YAML file",
	RunE:  runCreate,
}

func init() {
	createCmd.Flags().StringVarP(&createGroupFile, "file", "f", "", "Group definition file (required)")
	createCmd.Flags().StringVar(&createTrainingFile, "training", "", "Training configuration file")
	createCmd.MarkFlagRequired("file")
}

func runCreate(cmd *cobra.Command, args []string) error {
	settings, err := loadGroupFile(createGroupFile)
	if err != nil {
		return err
	}
	training, err := loadTrainingFile(createTrainingFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	client, closer, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer closer()

	if err := client.CreateGroup(ctx, agentID, settings, training); err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	fmt.Printf("Group %q created\n", settings.Name)
	return nil
}
