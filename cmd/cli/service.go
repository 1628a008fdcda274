package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/agent"
)

// serviceCmd manages the daemon as an OS service.
var serviceCmd = &cobra.Command{
	Use:       "service [install|uninstall|start|stop|status]",
	Short:     "Manage the passthrough service as an OS service",
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"install", "uninstall", "start", "stop", "status"},
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, err := agent.CreateService(cfg)
		if err != nil {
			return fmt.Errorf("failed to create service: %w", err)
		}

		action := args[0]

		switch action {
		case "install":
			if err := svc.Install(); err != nil {
				return fmt.Errorf("failed to install service: %w", err)
			}
			fmt.Println(successStyle.Render("Service installed"))
		case "uninstall":
			if err := svc.Uninstall(); err != nil {
				return fmt.Errorf("failed to uninstall service: %w", err)
			}
			fmt.Println(successStyle.Render("Service uninstalled"))
		case "start":
			if err := svc.Start(); err != nil {
				return fmt.Errorf("failed to start service: %w", err)
			}
			fmt.Println(successStyle.Render("Service started"))
		case "stop":
			if err := svc.Stop(); err != nil {
				return fmt.Errorf("failed to stop service: %w", err)
			}
			fmt.Println(successStyle.Render("Service stopped"))
		case "status":
			status, err := svc.Status()
			if err != nil {
				return fmt.Errorf("failed to query service status: %w", err)
			}
			fmt.Printf("Service status: %v\n", status)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(serviceCmd)
}
