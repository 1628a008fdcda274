package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hubman-io/hubman/internal/common"
	"github.com/hubman-io/hubman/internal/models"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "Manage API tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var tokensListCmd = &cobra.Command{
	Use:   "list",
	Short: "List API tokens",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		records, err := client.ListTokens(context.Background())
		if err != nil {
			return err
		}

		var tokens []models.Token
		if err := common.ConvertSliceToInterface(records, &tokens); err != nil {
			return fmt.Errorf("failed to parse tokens: %w", err)
		}

		fmt.Println(headerStyle.Render(fmt.Sprintf("API Tokens (%d)", len(tokens))))
		fmt.Println()

		if len(tokens) == 0 {
			fmt.Println(infoStyle.Render("No tokens found"))
			return nil
		}

		for _, token := range tokens {
			line := token.ID
			if len(token.User) > 0 {
				line += fmt.Sprintf("  user=%s", token.User)
			}
			if len(token.Note) > 0 {
				line += fmt.Sprintf("  (%s)", token.Note)
			}
			if token.IsExpired() {
				line += "  " + errorStyle.Render("EXPIRED")
			}
			fmt.Println(line)
		}

		return nil
	},
}

var tokensCreateCmd = &cobra.Command{
	Use:   "create <user>",
	Short: "Mint an API token for a user",
	Long: `Mint an API token for a user. The token value is printed once and
cannot be recovered afterwards.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var req models.CreateTokenRequest
		req.Note, _ = cmd.Flags().GetString("note")
		req.ExpiresIn, _ = cmd.Flags().GetInt("expires-in")
		req.Roles, _ = cmd.Flags().GetStringSlice("role")
		req.Scopes, _ = cmd.Flags().GetStringSlice("scope")

		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		record, err := client.CreateToken(context.Background(), args[0], req)
		if err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Token created for %s", args[0])))
		if token, ok := record["token"].(string); ok {
			fmt.Println(warningStyle.Render("Save this token now, it is shown only once:"))
			fmt.Println(token)
		}
		return printJSON(record)
	},
}

var tokensDeleteCmd = &cobra.Command{
	Use:   "delete <user> <token-id>",
	Short: "Revoke a user's token",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newHubClient()
		if err != nil {
			return err
		}
		defer client.Close()

		if err := client.DeleteToken(context.Background(), args[0], args[1]); err != nil {
			return err
		}

		fmt.Println(successStyle.Render(fmt.Sprintf("Token %s revoked", args[1])))
		return nil
	},
}

func init() {
	tokensCreateCmd.Flags().String("note", "", "Human-readable token label")
	tokensCreateCmd.Flags().Int("expires-in", 0, "Token lifetime in seconds (0 = no expiry)")
	tokensCreateCmd.Flags().StringSlice("role", nil, "Roles to grant the token")
	tokensCreateCmd.Flags().StringSlice("scope", nil, "Scopes to grant the token")

	tokensCmd.AddCommand(tokensListCmd)
	tokensCmd.AddCommand(tokensCreateCmd)
	tokensCmd.AddCommand(tokensDeleteCmd)

	rootCmd.AddCommand(tokensCmd)
}
