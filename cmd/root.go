package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ghpeek/gh-peek/internal/config"
	"github.com/ghpeek/gh-peek/internal/format"
	"github.com/ghpeek/gh-peek/internal/github"
	"github.com/ghpeek/gh-peek/internal/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool

	// cfg holds the loaded configuration
	cfg *config.Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "gh-peek",
	Short: "Peek at GitHub users, repositories, and contributors",
	Long: `gh-peek is a read-only command-line client for the GitHub API. It prints
formatted summaries of user profiles, repository metadata, repository
contributors, and your remaining API quota.

Responses are cached in memory for the lifetime of the process, outbound
calls are gated on the known rate-limit state, and the access token is read
from the GITHUB_TOKEN environment variable.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errors.New("a command is required")
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !quiet {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	// Define persistent flags that will be global for the application
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Load configuration
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config: %v\n", err)
		cfg = config.Get()
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: invalid config: %v\n", err)
	}

	// Apply config values to flags if flags weren't explicitly set
	if !rootCmd.PersistentFlags().Changed("verbose") {
		verbose = cfg.Output.Verbose
	}
	if !rootCmd.PersistentFlags().Changed("quiet") {
		quiet = cfg.Output.Quiet
	}
	if !rootCmd.PersistentFlags().Changed("json") {
		jsonOut = cfg.Output.JSON
	}

	verbosity := 0
	if verbose {
		verbosity = 2
	}
	logger.Init(logger.Config{
		Verbosity: verbosity,
		Quiet:     quiet,
		JSON:      jsonOut,
	})
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}

// GetQuiet returns the quiet flag value
func GetQuiet() bool {
	return quiet
}

// GetJSON returns the JSON output flag value
func GetJSON() bool {
	return jsonOut
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	if cfg == nil {
		// If config hasn't been loaded, load it
		cfg, _ = config.Load()
	}
	return cfg
}

// newClient constructs the API client from the loaded configuration.
func newClient(noCache bool) (*github.Client, error) {
	c := GetConfig()

	opts := []github.ClientOption{
		github.WithCacheTTL(time.Duration(c.Cache.TTLSeconds) * time.Second),
		github.WithRateLimitThreshold(c.RateLimit.Threshold),
		github.WithFailOnRateLimit(c.RateLimit.FailWhenExceeded),
	}
	if c.GitHub.Host != "" {
		opts = append(opts, github.WithHost(c.GitHub.Host))
	}
	if c.GitHub.UserAgent != "" {
		opts = append(opts, github.WithUserAgent(c.GitHub.UserAgent))
	}
	if !c.Cache.Enabled || noCache {
		opts = append(opts, github.WithoutCache())
	}

	return github.NewClient(c.GitHub.Token, opts...)
}

// formatOptions builds rendering options from flags and config.
func formatOptions() *format.Options {
	opts := format.DefaultOptions()
	if !GetConfig().Output.Color {
		opts.UseColor = false
	}
	return opts
}
