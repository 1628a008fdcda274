package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/models"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage hub users",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all users",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := client.ListUsers(context.Background())
		if err != nil {
			return err
		}

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			return printJSON(records)
		}

		var users []models.User
		if err := common.ConvertSliceToInterface(records, &users); err != nil {
			return fmt.Errorf("failed to parse users: %w", err)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Users (%d)", len(users))))
		fmt.Println()

		if len(users) == 0 {
			fmt.Println(infoStyle.Render("No users found"))
			return nil
		}

		for _, user := range users {
			line := user.Name
			if user.Admin {
				line += " " + adminBadgeStyle.Render("ADMIN")
			}
			fmt.Println(line)

			if user.HasActiveServer() {
				fmt.Println("  " + readyStyle.Render("server running"))
			}
			fmt.Printf("  Last activity: %s\n", formatTimestamp(user.LastActivity))
		}

		return nil
	},
}

var usersGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one user's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetUser(context.Background(), args[0])
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

var usersCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		admin, _ := cmd.Flags().GetBool("admin")

		record, err := client.CreateUser(context.Background(), args[0], admin)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("User %s created", args[0])))
		return printJSON(record)
	},
}

var usersDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a user and their servers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			confirmed, err := confirmAction(fmt.Sprintf("Delete user %s and all of their servers?", args[0]))
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

		if err := client.DeleteUser(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("User %s deleted", args[0])))
		return nil
	},
}

var usersPromoteCmd = &cobra.Command{
	Use:   "promote <name>",
	Short: "Grant a user admin rights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserAdmin(args[0], true)
	},
}

var usersDemoteCmd = &cobra.Command{
	Use:   "demote <name>",
	Short: "Revoke a user's admin rights",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setUserAdmin(args[0], false)
	},
}

func setUserAdmin(name string, admin bool) error {
	client, err := newHubClient()
	if err != nil {
		return err
	}
	defer client.Close()

	if _, err := client.ModifyUser(context.Background(), name, &admin); err != nil {
		return err
	}

	if admin {
		fmt.Println(successStyle.Render(fmt.Sprintf("User %s is now an admin", name)))
	} else {
		fmt.Println(successStyle.Render(fmt.Sprintf("User %s is no longer an admin", name)))
	}
	return nil
}

func init() {
	usersListCmd.Flags().Bool("json", false, "Print the raw hub response")
	usersCreateCmd.Flags().Bool("admin", false, "Create the user as an admin")
	usersDeleteCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")

	usersCmd.AddCommand(usersListCmd)
	usersCmd.AddCommand(usersGetCmd)
	usersCmd.AddCommand(usersCreateCmd)
	usersCmd.AddCommand(usersDeleteCmd)
	usersCmd.AddCommand(usersPromoteCmd)
	usersCmd.AddCommand(usersDemoteCmd)

	rootCmd.AddCommand(usersCmd)
}
