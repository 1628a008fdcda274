// Package cli wires the hubman command tree: resource commands that talk
// to the hub directly, the passthrough server, and the admin dashboard.
package cli

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/config"
	"github.com/hubman-io/hubman/internal/hub"
)

// Global configuration instance
var cfg *config.Config

// loadConfig loads the configuration based on the --config flag or default locations
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	return config.Load(configFile)
}

func preRunConfigE(cmd *cobra.Command, _ []string) error {
	// Load configuration before any command runs
	var err error
	cfg, err = loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// check if verbose flag is set
	verbose, err := cmd.Flags().GetBool("verbose")
	if err == nil && verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	return nil
}

// newHubClient builds a client for a resource command. The caller owns the
// client and must Close it.
func newHubClient() (*hub.Client, error) {
	client, err := hub.NewClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create hub client: %w", err)
	}
	return client, nil
}

var rootCmd = &cobra.Command{
	Use:   "hubman",
	Short: "JupyterHub Manager - manage users, servers, groups and tokens on a JupyterHub",
	Long: `JupyterHub Manager talks to a JupyterHub's REST API so admins can manage
users, notebook servers, groups, services and API tokens from one place.

It ships a passthrough API service (hubman server), an interactive admin
dashboard (hubman dashboard) and direct resource commands.`,
	PersistentPreRunE: preRunConfigE,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

func init() {
	// Add global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().String("config", "", "Config file (default is ./config.yaml)")
}

func GetCommandOptions() *cobra.Command {
	return rootCmd
}
