package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/hub"
	"github.com/hubman-io/hubman/internal/models"
)

var serversCmd = &cobra.Command{
	Use:   "servers",
	Short: "Manage notebook servers",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var serversListCmd = &cobra.Command{
	Use:   "list <user>",
	Short: "List a user's servers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := client.ListServers(context.Background(), args[0])
		if err != nil {
			return err
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Servers for %s", args[0])))
		fmt.Println()

		if len(records) == 0 {
			fmt.Println(infoStyle.Render("No servers"))
			return nil
		}

		for name, raw := range records {
			record, ok := raw.(map[string]any)
			if !ok {
				continue
			}

			var server models.Server
			if err := common.ConvertMapToInterface(record, &server); err != nil {
				continue
			}

			display := name
			if len(display) == 0 {
				display = "(default)"
			}

			fmt.Printf("%s  %s\n", display, serverStateBadge(server.Ready, server.Pending))
			if len(server.URL) > 0 {
				fmt.Printf("  URL: %s\n", server.URL)
			}
			fmt.Printf("  Last activity: %s\n", formatTimestamp(server.LastActivity))
		}

		return nil
	},
}

var serversStartCmd = &cobra.Command{
	Use:   "start <user> [server]",
	Short: "Start a user's server",
	Long: `Start a notebook server for a user. With no server name the default
server is started. Spawn options are forwarded to the hub as given.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		server := ""
		if len(args) > 1 {
			server = args[1]
		}

		options, err := serverOptionsFromFlags(cmd)
		if err != nil {
			return err
		}

		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.StartServer(context.Background(), args[0], server, options)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Server start requested for %s", args[0])))
		if len(record) > 0 {
			return printJSON(record)
		}
		return nil
	},
}

var serversStopCmd = &cobra.Command{
	Use:   "stop <user> [server]",
	Short: "Stop a user's server",
	Args:  cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		server := ""
		if len(args) > 1 {
			server = args[1]
		}

		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.StopServer(context.Background(), args[0], server); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Server stop requested for %s", args[0])))
		return nil
	},
}

var serversStartAllCmd = &cobra.Command{
	Use:   "start-all [user...]",
	Short: "Start the default server for many users",
	Long: `Start the default server for the named users, or for every hub user
when none are named. Failures are reported per user; one user's failure
never aborts the rest.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		options, err := serverOptionsFromFlags(cmd)
		if err != nil {
			return err
		}

		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx := context.Background()

		users, err := resolveUsers(ctx, client, args)
		if err != nil {
			return err
		}

		result := client.StartServers(ctx, users, options)
		printBulkResult("started", result)
		return nil
	},
}

var serversStopAllCmd = &cobra.Command{
	Use:   "stop-all [user...]",
	Short: "Stop the default server for many users",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		ctx := context.Background()

		users, err := resolveUsers(ctx, client, args)
		if err != nil {
			return err
		}

		result := client.StopServers(ctx, users)
		printBulkResult("stopped", result)
		return nil
	},
}

// serverOptionsFromFlags collects spawn options from the shared flag set.
// Only flags the user actually set end up in the payload.
func serverOptionsFromFlags(cmd *cobra.Command) (models.ServerOptions, error) {
	options := models.ServerOptions{}

	if image, _ := cmd.Flags().GetString("image"); len(image) > 0 {
		options.WithImage(image)
	}
	if cmd.Flags().Changed("cpu-limit") {
		limit, _ := cmd.Flags().GetFloat64("cpu-limit")
		options.WithCPULimit(limit)
	}
	if memLimit, _ := cmd.Flags().GetString("mem-limit"); len(memLimit) > 0 {
		options.WithMemLimit(memLimit)
	}

	envPairs, _ := cmd.Flags().GetStringSlice("env")
	if len(envPairs) > 0 {
		env := make(map[string]string, len(envPairs))
		for _, pair := range envPairs {
			key, value, found := strings.Cut(pair, "=")
			if !found {
				return nil, fmt.Errorf("invalid env entry %q, expected KEY=VALUE", pair)
			}
			env[key] = value
		}
		options.WithEnv(env)
	}

	return options, nil
}

// resolveUsers expands an empty argument list to every hub user.
func resolveUsers(ctx context.Context, client *hub.Client, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	records, err := client.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]string, 0, len(records))
	for _, record := range records {
		name, ok := record["name"].(string)
		if !ok || len(name) == 0 {
			continue
		}
		users = append(users, name)
	}
	return users, nil
}

func printBulkResult(verb string, result models.BulkServersResult) {
	fmt.Println(successStyle.Render(fmt.Sprintf("%d server(s) %s", len(result.Succeeded), verb)))
	for _, user := range result.Succeeded {
		fmt.Printf("  %s\n", user)
	}

	if len(result.Failed) > 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("%d failure(s)", len(result.Failed))))
		for user, detail := range result.Failed {
			fmt.Printf("  %s: %s\n", user, detail)
		}
	}
}

func addSpawnOptionFlags(cmd *cobra.Command) {
	cmd.Flags().String("image", "", "Container image to spawn")
	cmd.Flags().Float64("cpu-limit", 0, "CPU limit in cores")
	cmd.Flags().String("mem-limit", "", "Memory limit, e.g. 2G")
	cmd.Flags().StringSlice("env", nil, "Environment variables as KEY=VALUE")
}

func init() {
	addSpawnOptionFlags(serversStartCmd)
	addSpawnOptionFlags(serversStartAllCmd)

	serversCmd.AddCommand(serversListCmd)
	serversCmd.AddCommand(serversStartCmd)
	serversCmd.AddCommand(serversStopCmd)
	serversCmd.AddCommand(serversStartAllCmd)
	serversCmd.AddCommand(serversStopAllCmd)

	rootCmd.AddCommand(serversCmd)
}
