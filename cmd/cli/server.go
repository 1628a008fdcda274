package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/agent"
	"github.com/hubman-io/hubman/internal/common"
)

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the passthrough API service",
	Long: `Start the passthrough API service in the foreground.
Every route forwards one operation to the configured JupyterHub and mirrors
its status code and detail message.`,
	Run: func(cmd *cobra.Command, args []string) {
		if cfg == nil {
			fmt.Println("Configuration not loaded")
			os.Exit(1)
		}

		// Flag overrides for the bind address
		if host, err := cmd.Flags().GetString("host"); err == nil && len(host) > 0 {
			cfg.Server.Host = host
		}
		if port, err := cmd.Flags().GetInt("port"); err == nil && port > 0 {
			cfg.Server.Port = port
		}

		// Set up signal handling for graceful shutdown
		sigChan, cleanup := common.NewInterruptChannel()
		defer cleanup()

		fmt.Printf("Starting passthrough service for %s on %s\n", cfg.GetHubURL(), cfg.GetListenAddr())

		server, err := agent.StartWebService(cfg)
		if err != nil {
			fmt.Printf("Server failed to start: %v\n", err)
			os.Exit(1)
		}

		sig := <-sigChan
		fmt.Printf("\nReceived signal %v, shutting down gracefully...\n", sig)
		server.Stop()
		fmt.Println("Server stopped")
	},
}

func init() {
	serverCmd.Flags().String("host", "", "Bind host (overrides HUBMAN_SERVER_HOST)")
	serverCmd.Flags().Int("port", 0, "Bind port (overrides HUBMAN_SERVER_PORT)")
	rootCmd.AddCommand(serverCmd)
}
