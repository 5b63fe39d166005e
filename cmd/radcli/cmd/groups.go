package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "List monitoring groups",
	Long: `Display the observed state of monitoring groups.

Without --agent the query covers every agent, using the platform's
group-info cache when available and falling back to per-agent
enumeration otherwise.`,
	RunE: runGroups,
}

func runGroups(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	client, closer, err := newClient(ctx)
	if err != nil {
		return err
	}
	defer closer()

	groups, err := client.Groups(ctx, agentID)
	if err != nil {
		return fmt.Errorf("failed to fetch groups: %w", err)
	}

	if outputYAML {
		return printYAML(groups)
	}

	if len(groups) == 0 {
		fmt.Println("No monitoring groups found")
		return nil
	}

	for _, group := range groups {
		fmt.Printf("%s (agent %s)\n", group.Name, group.AgentID)
		for _, sub := range group.Subgroups {
			state := "not monitored"
			if sub.Monitored {
				state = "monitored"
			}
			fmt.Printf("   - %s [%s]: %d parameters, %s\n",
				sub.EffectiveName(group.Name), sub.ID, len(sub.Parameters), state)
		}
	}
	return nil
}
