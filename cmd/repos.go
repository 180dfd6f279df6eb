package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ghpeek/gh-peek/internal/format"
)

// defaultListLimit is the number of entries list commands print by default.
const defaultListLimit = 10

var (
	reposNoCache bool
	reposLimit   int
)

// reposCmd represents the repos command
var reposCmd = &cobra.Command{
	Use:   "repos <username> [limit]",
	Short: "List a user's repositories",
	Long: `List a user's repositories, most recently updated first.

Examples:
  # List the 10 most recently updated repositories
  gh-peek repos octocat

  # List up to 25
  gh-peek repos octocat 25`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runRepos,
}

func init() {
	rootCmd.AddCommand(reposCmd)

	reposCmd.Flags().BoolVar(&reposNoCache, "no-cache", false, "Skip cache and fetch fresh data")
	reposCmd.Flags().IntVar(&reposLimit, "limit", defaultListLimit, "Maximum number of repositories to list")
}

func runRepos(cmd *cobra.Command, args []string) error {
	limit := reposLimit
	if len(args) == 2 {
		parsed, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid limit %q: %w", args[1], err)
		}
		limit = parsed
	}
	// An explicit flag wins over the positional form.
	if cmd.Flags().Changed("limit") {
		limit = reposLimit
	}

	client, err := newClient(reposNoCache)
	if err != nil {
		return err
	}

	repos, err := client.ListUserRepositories(context.Background(), args[0], limit)
	if err != nil {
		return err
	}

	if GetJSON() {
		out, err := format.JSON(repos)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(format.RepositoryList(repos, formatOptions()))
	return nil
}
