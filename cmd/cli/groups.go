package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/models"
)

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage hub groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all groups",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := client.ListGroups(context.Background())
		if err != nil {
			return err
		}

		var groups []models.Group
		if err := common.ConvertSliceToInterface(records, &groups); err != nil {
			return fmt.Errorf("failed to parse groups: %w", err)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("Groups (%d)", len(groups))))
		fmt.Println()

		if len(groups) == 0 {
			fmt.Println(infoStyle.Render("No groups found"))
			return nil
		}

		for _, group := range groups {
			fmt.Printf("%s (%d members)\n", group.Name, len(group.Users))
			if len(group.Users) > 0 {
				fmt.Printf("  %s\n", strings.Join(group.Users, ", "))
			}
		}

		return nil
	},
}

var groupsGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one group's record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.GetGroup(context.Background(), args[0])
		if err != nil {
			return err
		}

		return printJSON(record)
	},
}

var groupsCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a group",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		users, _ := cmd.Flags().GetStringSlice("user")

		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.CreateGroup(context.Background(), args[0], users)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Group %s created", args[0])))
		return printJSON(record)
	},
}

var groupsDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a group (members are untouched)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		force, _ := cmd.Flags().GetBool("force")
		if !force {
			confirmed, err := confirmAction(fmt.Sprintf("Delete group %s?", args[0]))
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

		if err := client.DeleteGroup(context.Background(), args[0]); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Group %s deleted", args[0])))
		return nil
	},
}

var groupsAddUserCmd = &cobra.Command{
	Use:   "add-user <group> <user...>",
	Short: "Add users to a group",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.AddGroupMembers(context.Background(), args[0], args[1:])
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Added %d user(s) to %s", len(args)-1, args[0])))
		return printJSON(record)
	},
}

var groupsRemoveUserCmd = &cobra.Command{
	Use:   "remove-user <group> <user>",
	Short: "Remove a user from a group",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.RemoveGroupMember(context.Background(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Removed %s from %s", args[1], args[0])))
		return nil
	},
}

func init() {
	groupsCreateCmd.Flags().StringSlice("user", nil, "Initial group members")
	groupsDeleteCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")

	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsGetCmd)
	groupsCmd.AddCommand(groupsCreateCmd)
	groupsCmd.AddCommand(groupsDeleteCmd)
	groupsCmd.AddCommand(groupsAddUserCmd)
	groupsCmd.AddCommand(groupsRemoveUserCmd)

	rootCmd.AddCommand(groupsCmd)
}
