package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var capabilitiesCmd = &cobra.Command{
	Use:   "capabilities",
	Short: "Show the negotiated platform capabilities",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		client, closer, err := newClient(ctx)
		if err != nil {
			return err
		}
		defer closer()

		caps := client.Capabilities()
		if remote, ok := caps.RemoteVersion(); ok {
			fmt.Printf("Platform version: %s\n", remote)
		} else {
			fmt.Println("Platform version: unknown (all capabilities disabled)")
		}

		if outputYAML {
			return printYAML(caps.All())
		}

		for capability, enabled := range caps.All() {
			fmt.Printf("   %s: %v\n", capability, enabled)
		}
		return nil
	},
}
