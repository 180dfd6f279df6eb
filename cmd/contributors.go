package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ghpeek/gh-peek/internal/format"
)

var contributorsLimit int

// contributorsCmd represents the contributors command
var contributorsCmd = &cobra.Command{
	Use:   "contributors [owner] [name] [limit]",
	Short: "List a repository's top contributors",
	Long: `List a repository's contributors, ordered by contribution count.

When owner and name are omitted inside a git checkout, the repository is
resolved from the origin remote.

Examples:
  # Top 10 contributors of a repository
  gh-peek contributors golang go

  # Top 25
  gh-peek contributors golang go 25

  # Top 10 of the current checkout
  gh-peek contributors`,
	Args: cobra.MaximumNArgs(3),
	RunE: runContributors,
}

func init() {
	rootCmd.AddCommand(contributorsCmd)

	contributorsCmd.Flags().IntVar(&contributorsLimit, "limit", defaultListLimit, "Maximum number of contributors to list")
}

func runContributors(cmd *cobra.Command, args []string) error {
	owner, name, limit, err := resolveContributorArgs(args)
	if err != nil {
		return err
	}
	// An explicit flag wins over the positional form.
	if cmd.Flags().Changed("limit") {
		limit = contributorsLimit
	}

	client, err := newClient(false)
	if err != nil {
		return err
	}

	contributors, err := client.ListContributors(context.Background(), owner, name, limit)
	if err != nil {
		return err
	}

	if GetJSON() {
		out, err := format.JSON(contributors)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(format.Contributors(contributors, formatOptions()))
	return nil
}

// resolveContributorArgs accepts "owner name [limit]" or "[limit]" with the
// repository taken from the current checkout.
func resolveContributorArgs(args []string) (owner, name string, limit int, err error) {
	limit = defaultListLimit

	switch len(args) {
	case 0, 1:
		owner, name, err = resolveRepoArgs(nil)
		if err != nil {
			return "", "", 0, err
		}
		if len(args) == 1 {
			limit, err = parseLimit(args[0])
		}
	case 2, 3:
		owner, name = args[0], args[1]
		if len(args) == 3 {
			limit, err = parseLimit(args[2])
		}
	}
	if err != nil {
		return "", "", 0, err
	}
	return owner, name, limit, nil
}

func parseLimit(arg string) (int, error) {
	limit, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid limit %q: %w", arg, err)
	}
	return limit, nil
}
