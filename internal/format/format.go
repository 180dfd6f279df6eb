// Package format renders fetched API data as terminal output. It only
// formats data that has already been retrieved; it performs no I/O of its
// own beyond writing to the supplied buffer.
package format

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/ghpeek/gh-peek/internal/github"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorBlue   = "\033[34m"
	ColorGray   = "\033[90m"
	ColorBold   = "\033[1m"
)

// Options contains output rendering options
type Options struct {
	UseColor bool // Enable color output
}

// DefaultOptions returns options with sensible defaults
func DefaultOptions() *Options {
	return &Options{
		UseColor: isTerminal(),
	}
}

// isTerminal checks if output is going to a terminal
func isTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}

// User renders a user profile as labelled fields.
func User(u *github.User, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	var b strings.Builder
	name := u.Name
	if name == "" {
		name = u.Login
	}
	fmt.Fprintf(&b, "%s (%s)\n", colorize(name, ColorBold, opts), u.Login)

	if u.Bio != "" {
		fmt.Fprintf(&b, "%s\n", u.Bio)
	}
	writeField(&b, "Company", u.Company)
	writeField(&b, "Location", u.Location)
	writeField(&b, "Email", u.Email)
	writeField(&b, "Blog", u.Blog)
	writeField(&b, "Public repos", strconv.Itoa(u.PublicRepos))
	writeField(&b, "Followers", fmt.Sprintf("%d (following %d)", u.Followers, u.Following))
	if !u.CreatedAt.IsZero() {
		writeField(&b, "Joined", u.CreatedAt.Format("Jan 2, 2006"))
	}
	writeField(&b, "Profile", u.HTMLURL)

	return b.String()
}

// Repository renders repository metadata as labelled fields.
func Repository(r *github.Repository, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s", colorize(r.FullName, ColorBold, opts))
	if r.Archived {
		fmt.Fprintf(&b, " %s", colorize("[archived]", ColorYellow, opts))
	}
	if r.Fork {
		fmt.Fprintf(&b, " %s", colorize("[fork]", ColorGray, opts))
	}
	b.WriteString("\n")

	if r.Description != "" {
		fmt.Fprintf(&b, "%s\n", r.Description)
	}
	writeField(&b, "Language", r.Language)
	writeField(&b, "Stars", strconv.Itoa(r.StargazersCount))
	writeField(&b, "Forks", strconv.Itoa(r.ForksCount))
	writeField(&b, "Open issues", strconv.Itoa(r.OpenIssuesCount))
	writeField(&b, "Default branch", r.DefaultBranch)
	writeField(&b, "License", r.License.Name)
	if len(r.Topics) > 0 {
		writeField(&b, "Topics", strings.Join(r.Topics, ", "))
	}
	if !r.UpdatedAt.IsZero() {
		writeField(&b, "Updated", relativeTime(r.UpdatedAt))
	}
	writeField(&b, "URL", r.HTMLURL)

	return b.String()
}

// RepositoryList renders repositories as a numbered table, in the order the
// API returned them (most recently updated first).
func RepositoryList(repos []github.Repository, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(repos) == 0 {
		return "No repositories found.\n"
	}

	var output strings.Builder
	table := newTable(&output, []string{"#", "Name", "Language", "Stars", "Updated"})

	for i, repo := range repos {
		table.Append([]string{
			strconv.Itoa(i + 1),
			truncate(repo.Name, 40),
			repo.Language,
			strconv.Itoa(repo.StargazersCount),
			relativeTime(repo.UpdatedAt),
		})
	}
	table.Render()

	return output.String()
}

// Contributors renders contributors as a numbered table, in the order the
// API returned them (highest contribution count first).
func Contributors(contributors []github.Contributor, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}
	if len(contributors) == 0 {
		return "No contributors found.\n"
	}

	var output strings.Builder
	table := newTable(&output, []string{"#", "Login", "Contributions"})

	for i, c := range contributors {
		login := c.Login
		if c.Type == "Bot" {
			login += " [bot]"
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			login,
			strconv.Itoa(c.Contributions),
		})
	}
	table.Render()

	return output.String()
}

// RateLimit renders the quota status.
func RateLimit(rl *github.RateLimit, opts *Options) string {
	if opts == nil {
		opts = DefaultOptions()
	}

	remaining := strconv.Itoa(rl.Remaining)
	if opts.UseColor {
		switch {
		case rl.Remaining == 0:
			remaining = colorize(remaining, ColorYellow, opts)
		default:
			remaining = colorize(remaining, ColorGreen, opts)
		}
	}

	var b strings.Builder
	writeField(&b, "Limit", strconv.Itoa(rl.Limit))
	writeField(&b, "Remaining", remaining)
	writeField(&b, "Used", strconv.Itoa(rl.Used))
	reset := rl.ResetTime()
	writeField(&b, "Resets", fmt.Sprintf("%s (in %s)",
		reset.Format(time.RFC1123), time.Until(reset).Round(time.Second)))

	return b.String()
}

// JSON renders any fetched entity as indented JSON for --json output.
func JSON(v interface{}) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal output: %w", err)
	}
	return string(data), nil
}

// newTable creates a borderless left-aligned table writer.
func newTable(output *strings.Builder, header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(output)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetColumnSeparator("")
	table.SetCenterSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	return table
}

// writeField writes one "Label: value" line, skipping empty values.
func writeField(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "%-15s %s\n", label+":", value)
}

// colorize applies a color to text when colors are enabled
func colorize(text, color string, opts *Options) string {
	if !opts.UseColor {
		return text
	}
	return color + text + ColorReset
}

// truncate shortens a string to maxLen characters with an ellipsis
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

func relativeTime(t time.Time) string {
	diff := time.Since(t)

	switch {
	case diff < time.Minute:
		return "just now"
	case diff < time.Hour:
		return plural(int(diff.Minutes()), "minute")
	case diff < 24*time.Hour:
		return plural(int(diff.Hours()), "hour")
	case diff < 30*24*time.Hour:
		return plural(int(diff.Hours()/24), "day")
	case diff < 365*24*time.Hour:
		return plural(int(diff.Hours()/24/30), "month")
	default:
		return plural(int(diff.Hours()/24/365), "year")
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s ago", unit)
	}
	return fmt.Sprintf("%d %ss ago", n, unit)
}
