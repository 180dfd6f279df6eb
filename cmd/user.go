package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghpeek/gh-peek/internal/format"
)

var userNoCache bool

// userCmd represents the user command
var userCmd = &cobra.Command{
	Use:   "user <username>",
	Short: "Show a GitHub user's profile",
	Long: `Show a GitHub user's profile: name, bio, company, location, follower
counts, and public repository count.

Examples:
  # Show a user's profile
  gh-peek user octocat

  # Output as JSON for scripting
  gh-peek user octocat --json`,
	Args: cobra.ExactArgs(1),
	RunE: runUser,
}

func init() {
	rootCmd.AddCommand(userCmd)

	userCmd.Flags().BoolVar(&userNoCache, "no-cache", false, "Skip cache and fetch fresh data")
}

func runUser(cmd *cobra.Command, args []string) error {
	client, err := newClient(userNoCache)
	if err != nil {
		return err
	}

	user, err := client.GetUser(context.Background(), args[0])
	if err != nil {
		return err
	}

	if GetJSON() {
		out, err := format.JSON(user)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(format.User(user, formatOptions()))
	return nil
}
