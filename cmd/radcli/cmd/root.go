package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/radwatch/radclient/pkg/log"
	"github.com/radwatch/radclient/sdk/config"
	"github.com/radwatch/radclient/sdk/net"
	"github.com/radwatch/radclient/sdk/rad"
)

var (
	// Version info passed from main
	appVersion   string
	appGitCommit string
	appBuildTime string

	// Global flags
	configPath string
	agentID    string
	outputYAML bool
	debug      bool
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "radcli",
	Short: "Manage relational anomaly monitoring groups",
	Long: `radcli manages relational anomaly monitoring (RAD) groups on a remote
analytics platform.

On connection it negotiates the platform's protocol generation from its
advertised version, then routes every operation through the matching
wire schema. Operations that need features the connected platform lacks
are rejected before any network call.`,
}

// Execute adds all child commands and executes the root command
func Execute(ver, commit, built string) error {
	appVersion = ver
	appGitCommit = commit
	appBuildTime = built

	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: ~/.radclient/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&agentID, "agent", "", "Target agent id (default: resolve automatically)")
	rootCmd.PersistentFlags().BoolVar(&outputYAML, "yaml", false, "Print results as YAML")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(groupsCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(renameCmd)
	rootCmd.AddCommand(removeCmd)
	rootCmd.AddCommand(retrainCmd)
	rootCmd.AddCommand(subgroupCmd)
	rootCmd.AddCommand(anomaliesCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(capabilitiesCmd)
	rootCmd.AddCommand(versionCmd)
}

// newClient loads configuration, dials the gateway and performs the
// capability handshake. The returned closer releases the connection.
func newClient(ctx context.Context) (rad.Client, func(), error) {
	path := configPath
	if path == "" {
		userHome, err := os.UserHomeDir()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get user home directory: %w", err)
		}
		path = filepath.Join(userHome, ".radclient", "config.yaml")
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger, err := log.NewLogger(debug)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	transport, err := net.NewGatewayTransport(ctx, cfg.TransportOptions(), logger)
	if err != nil {
		return nil, nil, err
	}

	client, err := rad.NewClient(ctx, transport, logger)
	if err != nil {
		transport.Close(ctx)
		return nil, nil, err
	}

	closer := func() {
		if err := client.Close(context.Background()); err != nil {
			logger.Warn(context.Background(), "Failed to close client", "error", err)
		}
	}
	return client, closer, nil
}

// printYAML marshals v to stdout as YAML.
func printYAML(v interface{}) error {
	out, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	fmt.Print(string(out))
	return nil
}

// versionCmd shows version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("radcli Version: %s\n", appVersion)
		fmt.Printf("Git Commit: %s\n", appGitCommit)
		fmt.Printf("Build Time: %s\n", appBuildTime)
	},
}
