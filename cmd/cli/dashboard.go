package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/hub"
)

// DashboardAction represents available actions in the admin dashboard
type DashboardAction string

const (
	ActionOverview    DashboardAction = "overview"
	ActionListGroups  DashboardAction = "groups"
	ActionListTokens  DashboardAction = "tokens"
	ActionListSvcs    DashboardAction = "services"
	ActionCreateUser  DashboardAction = "create-user"
	ActionCreateGroup DashboardAction = "create-group"
	ActionStartServer DashboardAction = "start-server"
	ActionStopServer  DashboardAction = "stop-server"
	ActionExit        DashboardAction = "exit"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Interactive admin dashboard",
	Long: `Manage the hub interactively: a live overview of hub health and user
server states, plus forms to create users and groups and to start or stop
notebook servers.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		return runDashboard(client)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(client *hub.Client) error {
	fmt.Println(titleStyle.Render("JupyterHub Admin Dashboard"))
	fmt.Println()

	for {
		action, err := promptForAction()
		if err != nil {
			return fmt.Errorf("failed to get action: %w", err)
		}

		if action == ActionExit {
			fmt.Println(successStyle.Render("Goodbye!"))
			return nil
		}

		if err := runDashboardAction(client, action); err != nil {
			fmt.Println(errorStyle.Render("Error: " + err.Error()))
		}

		fmt.Println()
		time.Sleep(500 * time.Millisecond)
	}
}

func runDashboardAction(client *hub.Client, action DashboardAction) error {
	switch action {
	case ActionOverview:
		return runOverview(client)
	case ActionListGroups:
		return groupsListCmd.RunE(groupsListCmd, nil)
	case ActionListTokens:
		return tokensListCmd.RunE(tokensListCmd, nil)
	case ActionListSvcs:
		return listHubServices(client)
	case ActionCreateUser:
		return dashboardCreateUser(client)
	case ActionCreateGroup:
		return dashboardCreateGroup(client)
	case ActionStartServer:
		return dashboardStartServer(client)
	case ActionStopServer:
		return dashboardStopServer(client)
	}
	return nil
}

func promptForAction() (DashboardAction, error) {
	var action string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Live overview", string(ActionOverview)),
					huh.NewOption("List groups", string(ActionListGroups)),
					huh.NewOption("List API tokens", string(ActionListTokens)),
					huh.NewOption("List services", string(ActionListSvcs)),
					huh.NewOption("Create user", string(ActionCreateUser)),
					huh.NewOption("Create group", string(ActionCreateGroup)),
					huh.NewOption("Start a server", string(ActionStartServer)),
					huh.NewOption("Stop a server", string(ActionStopServer)),
					huh.NewOption("Exit", string(ActionExit)),
				).
				Value(&action),
		),
	)

	if err := form.Run(); err != nil {
		return ActionExit, err
	}

	return DashboardAction(action), nil
}

func listHubServices(client *hub.Client) error {
	records, err := client.ListServices(context.Background())
	if err != nil {
		return err
	}

	fmt.Println(headerStyle.Render(fmt.Sprintf("Services (%d)", len(records))))
	fmt.Println()

	if len(records) == 0 {
		fmt.Println(infoStyle.Render("No services registered"))
		return nil
	}

	for _, record := range records {
		name, _ := record["name"].(string)
		url, _ := record["url"].(string)
		line := name
		if len(url) > 0 {
			line += "  " + url
		}
		fmt.Println(line)
	}
	return nil
}

func dashboardCreateUser(client *hub.Client) error {
	var name string
	var admin bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Username").
				Value(&name).
				Validate(func(s string) error {
					if len(s) == 0 {
						return fmt.Errorf("username is required")
					}
					return nil
				}),
			huh.NewConfirm().
				Title("Grant admin rights?").
				Value(&admin),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := client.CreateUser(context.Background(), name, admin); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("User %s created", name)))
	return nil
}

func dashboardCreateGroup(client *hub.Client) error {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Group name").
				Value(&name).
				Validate(func(s string) error {
					if len(s) == 0 {
						return fmt.Errorf("group name is required")
					}
					return nil
				}),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	if _, err := client.CreateGroup(context.Background(), name, nil); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Group %s created", name)))
	return nil
}

// selectUser builds a picker over the hub's current users.
func selectUser(client *hub.Client, title string) (string, error) {
	records, err := client.ListUsers(context.Background())
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		return "", fmt.Errorf("the hub has no users")
	}

	var options []huh.Option[string]
	for _, record := range records {
		name, ok := record["name"].(string)
		if !ok || len(name) == 0 {
			continue
		}

		label := name
		if servers, ok := record["servers"].(map[string]any); ok && len(servers) > 0 {
			label = fmt.Sprintf("%s (%d server(s))", name, len(servers))
		}
		options = append(options, huh.NewOption(label, name))
	}

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title(title).
				Options(options...).
				Value(&selected),
		),
	)

	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func dashboardStartServer(client *hub.Client) error {
	user, err := selectUser(client, "Start the default server for:")
	if err != nil {
		return err
	}

	if _, err := client.StartServer(context.Background(), user, "", nil); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Server start requested for %s", user)))
	return nil
}

func dashboardStopServer(client *hub.Client) error {
	user, err := selectUser(client, "Stop the default server for:")
	if err != nil {
		return err
	}

	if err := client.StopServer(context.Background(), user, ""); err != nil {
		return err
	}

	fmt.Println(successStyle.Render(fmt.Sprintf("Server stop requested for %s", user)))
	return nil
}
