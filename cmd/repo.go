package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghpeek/gh-peek/internal/format"
	"github.com/ghpeek/gh-peek/internal/git"
)

var repoNoCache bool

// repoCmd represents the repo command
var repoCmd = &cobra.Command{
	Use:   "repo [owner] [name]",
	Short: "Show repository metadata",
	Long: `Show repository metadata: description, language, stars, forks, open
issues, license, and topics.

When invoked without arguments inside a git checkout, the repository is
resolved from the origin remote.

Examples:
  # Show a repository by owner and name
  gh-peek repo golang go

  # Show the repository of the current checkout
  gh-peek repo`,
	Args: cobra.MaximumNArgs(2),
	RunE: runRepo,
}

func init() {
	rootCmd.AddCommand(repoCmd)

	repoCmd.Flags().BoolVar(&repoNoCache, "no-cache", false, "Skip cache and fetch fresh data")
}

func runRepo(cmd *cobra.Command, args []string) error {
	owner, name, err := resolveRepoArgs(args)
	if err != nil {
		return err
	}

	client, err := newClient(repoNoCache)
	if err != nil {
		return err
	}

	repo, err := client.GetRepository(context.Background(), owner, name)
	if err != nil {
		return err
	}

	if GetJSON() {
		out, err := format.JSON(repo)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(format.Repository(repo, formatOptions()))
	return nil
}

// resolveRepoArgs turns positional owner/name arguments into a repository
// reference, falling back to the origin remote of the current checkout.
func resolveRepoArgs(args []string) (owner, name string, err error) {
	switch len(args) {
	case 2:
		return args[0], args[1], nil
	case 0:
		repo, err := git.CurrentRepo("")
		if err != nil {
			return "", "", fmt.Errorf("owner and name are required outside a GitHub checkout: %w", err)
		}
		return repo.Owner, repo.Name, nil
	default:
		return "", "", fmt.Errorf("accepts owner and name, or no arguments inside a checkout")
	}
}
