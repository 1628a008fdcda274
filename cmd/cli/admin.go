package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/models"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Hub-level administration",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var adminHealthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check hub health",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		health := client.GetHealth(context.Background())

		if health.Status == models.HealthStatusOK {
			fmt.Println(successStyle.Render("Hub is healthy"))
		} else {
			fmt.Println(errorStyle.Render(fmt.Sprintf("Hub is unhealthy: %s", health.Detail)))
		}
		return nil
	},
}

var adminInfoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show hub version and spawner details",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetInfo(context.Background())
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

var adminProxyCmd = &cobra.Command{
	Use:   "proxy",
	Short: "Show the proxy routing table",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		check, _ := cmd.Flags().GetBool("check")

		ctx := context.Background()

		if check {
			if err := client.ForceProxyCheck(ctx); err != nil {
				return err
			}
			fmt.Println(successStyle.Render("Proxy check requested"))
			return nil
		}

		record, err := client.GetProxy(ctx)
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

var adminCullCmd = &cobra.Command{
	Use:   "cull",
	Short: "Trigger the idle-server cull",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.CullServers(context.Background())
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Cull triggered"))
		if len(record) > 0 {
			return printJSON(record)
		}
		return nil
	},
}

var adminShutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Shut the hub down",
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			confirmed, err := confirmAction("Shut down the hub? All notebook servers will stop.")
			if err != nil {
				return err
			}
			if !confirmed {
				fmt.Println(infoStyle.Render("Cancelled"))
				return nil
			}
		}

		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if _, err := client.Shutdown(context.Background()); err != nil {
			return err
		}

		fmt.Println(successStyle.Render("Hub shutdown requested"))
		return nil
	},
}

func init() {
	adminProxyCmd.Flags().Bool("check", false, "Force a proxy routing table resync instead of printing it")
	adminShutdownCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")

	adminCmd.AddCommand(adminHealthCmd)
	adminCmd.AddCommand(adminInfoCmd)
	adminCmd.AddCommand(adminProxyCmd)
	adminCmd.AddCommand(adminCullCmd)
	adminCmd.AddCommand(adminShutdownCmd)

	rootCmd.AddCommand(adminCmd)
}
