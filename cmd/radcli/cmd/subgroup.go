package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var subgroupCmd = &cobra.Command{
	Use:   "subgroup",
	Short: "Manage subgroups of a monitoring group",
}

var subgroupAddFile string

var subgroupAddCmd = &cobra.Command{
	Use:   "add <group>",
	Short: "Add a subgroup from a YAML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(subgroupAddFile)
		if err != nil {
			return fmt.Errorf("failed to read subgroup file: %w", err)
		}
		var spec subgroupFile
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return fmt.Errorf("failed to parse subgroup file %s: %w", subgroupAddFile, err)
		}

		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := client.AddSubgroup(ctx, agentID, args[0], spec.toSettings()); err != nil {
			return fmt.Errorf("failed to add subgroup: %w", err)
		}
		fmt.Printf("Subgroup added to group %q\n", args[0])
		return nil
	},
}

var subgroupRemoveID string

var subgroupRemoveCmd = &cobra.Command{
	Use:   "remove <group>",
	Short: "Remove a subgroup by identifier",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		if err := client.RemoveSubgroup(ctx, agentID, args[0], subgroupRemoveID); err != nil {
			return fmt.Errorf("failed to remove subgroup: %w", err)
		}
		fmt.Printf("Subgroup %s removed from group %q\n", subgroupRemoveID, args[0])
		return nil
	},
}

func init() {
	subgroupAddCmd.Flags().StringVarP(&subgroupAddFile, "file", "f", "", "Subgroup definition file (required)")
	subgroupAddCmd.MarkFlagRequired("file")

	subgroupRemoveCmd.Flags().StringVar(&subgroupRemoveID, "id", "", "Subgroup identifier (required)")
	subgroupRemoveCmd.MarkFlagRequired("id")

	subgroupCmd.AddCommand(subgroupAddCmd)
	subgroupCmd.AddCommand(subgroupRemoveCmd)
}
