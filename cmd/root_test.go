package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestRootCommand(t *testing.T) {
	t.Run("command initialization", func(t *testing.T) {
		if rootCmd.Use != "gh-peek" {
			t.Errorf("Expected Use to be 'gh-peek', got '%s'", rootCmd.Use)
		}

		if rootCmd.Short == "" {
			t.Error("Expected Short description to be set")
		}

		if !rootCmd.SilenceUsage {
			t.Error("Expected SilenceUsage to be true")
		}

		if !rootCmd.SilenceErrors {
			t.Error("Expected SilenceErrors to be true")
		}
	})

	t.Run("persistent flags are registered", func(t *testing.T) {
		verboseFlag := rootCmd.PersistentFlags().Lookup("verbose")
		if verboseFlag == nil {
			t.Fatal("Expected 'verbose' flag to be registered")
		}
		if verboseFlag.Shorthand != "v" {
			t.Errorf("Expected verbose shorthand to be 'v', got '%s'", verboseFlag.Shorthand)
		}

		quietFlag := rootCmd.PersistentFlags().Lookup("quiet")
		if quietFlag == nil {
			t.Fatal("Expected 'quiet' flag to be registered")
		}

		jsonFlag := rootCmd.PersistentFlags().Lookup("json")
		if jsonFlag == nil {
			t.Fatal("Expected 'json' flag to be registered")
		}
	})

	t.Run("all commands are registered", func(t *testing.T) {
		expected := []string{"user", "repo", "repos", "contributors", "rate", "version"}

		for _, name := range expected {
			found := false
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == name {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("Expected command '%s' to be registered", name)
			}
		}
	})

	t.Run("root without a subcommand fails", func(t *testing.T) {
		if rootCmd.RunE == nil {
			t.Fatal("Expected root RunE to be set")
		}
		if err := rootCmd.RunE(rootCmd, nil); err == nil {
			t.Error("Expected an error when no command is given")
		}
	})
}

func TestArgValidation(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    []string
		wantErr bool
	}{
		{"user requires a username", "user", []string{}, true},
		{"user accepts one argument", "user", []string{"octocat"}, false},
		{"user rejects two arguments", "user", []string{"a", "b"}, true},
		{"repos requires a username", "repos", []string{}, true},
		{"repos accepts username and limit", "repos", []string{"octocat", "25"}, false},
		{"repos rejects three arguments", "repos", []string{"a", "b", "c"}, true},
		{"rate rejects arguments", "rate", []string{"extra"}, true},
		{"contributors accepts owner name limit", "contributors", []string{"o", "r", "5"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var target *cobra.Command
			for _, cmd := range rootCmd.Commands() {
				if cmd.Name() == tt.command {
					target = cmd
					break
				}
			}
			if target == nil {
				t.Fatalf("Command '%s' not found", tt.command)
			}

			err := target.Args(target, tt.args)
			if tt.wantErr && err == nil {
				t.Error("Expected an argument validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got: %v", err)
			}
		})
	}
}
