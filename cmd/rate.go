package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ghpeek/gh-peek/internal/format"
)

// rateCmd represents the rate command
var rateCmd = &cobra.Command{
	Use:   "rate",
	Short: "Show the current API quota",
	Long: `Show the current API rate limit: total, remaining, used, and when the
window resets. This always queries the API directly and never uses the
cache.`,
	Args: cobra.NoArgs,
	RunE: runRate,
}

func init() {
	rootCmd.AddCommand(rateCmd)
}

func runRate(cmd *cobra.Command, args []string) error {
	client, err := newClient(false)
	if err != nil {
		return err
	}

	rl, err := client.GetRateLimit(context.Background())
	if err != nil {
		return err
	}

	if GetJSON() {
		out, err := format.JSON(rl)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}

	fmt.Print(format.RateLimit(rl, formatOptions()))
	return nil
}
