package format

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ghpeek/gh-peek/internal/github"
)

// noColor avoids terminal detection in tests.
var noColor = &Options{UseColor: false}

func TestUser(t *testing.T) {
	user := &github.User{
		Login:       "octocat",
		Name:        "The Octocat",
		Bio:         "Mascot",
		Location:    "San Francisco",
		PublicRepos: 8,
		Followers:   4000,
		Following:   9,
		HTMLURL:     "https://github.com/octocat",
		CreatedAt:   time.Date(2011, 1, 25, 0, 0, 0, 0, time.UTC),
	}

	out := User(user, noColor)

	assert.Contains(t, out, "The Octocat (octocat)")
	assert.Contains(t, out, "Mascot")
	assert.Contains(t, out, "San Francisco")
	assert.Contains(t, out, "4000 (following 9)")
	assert.Contains(t, out, "Jan 25, 2011")
}

func TestUserFallsBackToLogin(t *testing.T) {
	out := User(&github.User{Login: "ghost"}, noColor)
	assert.Contains(t, out, "ghost (ghost)")
}

func TestRepository(t *testing.T) {
	repo := &github.Repository{
		FullName:        "golang/go",
		Description:     "The Go programming language",
		Language:        "Go",
		StargazersCount: 120000,
		ForksCount:      17000,
		OpenIssuesCount: 9000,
		DefaultBranch:   "master",
		Archived:        true,
		Topics:          []string{"go", "language"},
		HTMLURL:         "https://github.com/golang/go",
	}

	out := Repository(repo, noColor)

	assert.Contains(t, out, "golang/go")
	assert.Contains(t, out, "[archived]")
	assert.Contains(t, out, "The Go programming language")
	assert.Contains(t, out, "120000")
	assert.Contains(t, out, "go, language")
}

func TestRepositoryList(t *testing.T) {
	repos := []github.Repository{
		{Name: "hello-world", Language: "Go", StargazersCount: 42, UpdatedAt: time.Now()},
		{Name: "spoon-knife", Language: "HTML", StargazersCount: 7, UpdatedAt: time.Now()},
	}

	out := RepositoryList(repos, noColor)

	assert.Contains(t, out, "hello-world")
	assert.Contains(t, out, "spoon-knife")
	// Numbered in API order
	assert.Less(t, strings.Index(out, "hello-world"), strings.Index(out, "spoon-knife"))
	assert.Contains(t, out, "1")
	assert.Contains(t, out, "2")
}

func TestRepositoryListEmpty(t *testing.T) {
	out := RepositoryList(nil, noColor)
	assert.Contains(t, out, "No repositories found")
}

func TestContributors(t *testing.T) {
	contributors := []github.Contributor{
		{Login: "alice", Contributions: 120},
		{Login: "dependabot", Type: "Bot", Contributions: 40},
	}

	out := Contributors(contributors, noColor)

	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "120")
	assert.Contains(t, out, "dependabot [bot]")
}

func TestRateLimit(t *testing.T) {
	rl := &github.RateLimit{
		Limit:     5000,
		Remaining: 4321,
		Used:      679,
		Reset:     time.Now().Add(30 * time.Minute).Unix(),
	}

	out := RateLimit(rl, noColor)

	assert.Contains(t, out, "5000")
	assert.Contains(t, out, "4321")
	assert.Contains(t, out, "679")
	assert.Contains(t, out, "Resets:")
}

func TestJSON(t *testing.T) {
	out, err := JSON(&github.User{Login: "octocat"})
	assert.NoError(t, err)
	assert.Contains(t, out, `"login": "octocat"`)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in       string
		maxLen   int
		expected string
	}{
		{"short", 40, "short"},
		{"a-very-long-repository-name", 10, "a-very-..."},
		{"abc", 3, "abc"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, truncate(tt.in, tt.maxLen))
	}
}

func TestRelativeTime(t *testing.T) {
	tests := []struct {
		name     string
		t        time.Time
		expected string
	}{
		{"just now", time.Now().Add(-10 * time.Second), "just now"},
		{"minutes", time.Now().Add(-5 * time.Minute), "5 minutes ago"},
		{"singular hour", time.Now().Add(-90 * time.Minute), "1 hour ago"},
		{"days", time.Now().Add(-72 * time.Hour), "3 days ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, relativeTime(tt.t))
		})
	}
}
