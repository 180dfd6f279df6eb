// Package git resolves the GitHub repository context from the enclosing git
// repository, so commands can omit owner/name arguments when run inside a
// checkout.
package git

import (
	"errors"
	"fmt"
	"os"
	"strings"

	gogit "github.com/go-git/go-git/v5"
)

var (
	// ErrNotARepository is returned when the path is not a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrNoOriginRemote is returned when the repository has no origin remote
	ErrNoOriginRemote = errors.New("repository has no origin remote")

	// ErrNotAGitHubRemote is returned when the origin remote does not point
	// at a GitHub repository
	ErrNotAGitHubRemote = errors.New("origin remote is not a GitHub repository")
)

// Repo identifies a GitHub repository by owner and name.
type Repo struct {
	Owner string
	Name  string
}

// String returns the repository in "owner/name" format
func (r Repo) String() string {
	return r.Owner + "/" + r.Name
}

// CurrentRepo resolves the GitHub repository from the origin remote of the
// git repository enclosing path. An empty path means the working directory.
func CurrentRepo(path string) (Repo, error) {
	if path == "" {
		var err error
		path, err = os.Getwd()
		if err != nil {
			return Repo{}, fmt.Errorf("failed to get working directory: %w", err)
		}
	}

	repo, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		if errors.Is(err, gogit.ErrRepositoryNotExists) {
			return Repo{}, ErrNotARepository
		}
		return Repo{}, fmt.Errorf("failed to open repository: %w", err)
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		if errors.Is(err, gogit.ErrRemoteNotFound) {
			return Repo{}, ErrNoOriginRemote
		}
		return Repo{}, fmt.Errorf("failed to look up origin remote: %w", err)
	}

	urls := remote.Config().URLs
	if len(urls) == 0 {
		return Repo{}, ErrNoOriginRemote
	}

	return ParseRemoteURL(urls[0])
}

// ParseRemoteURL extracts the owner and name from a GitHub remote URL.
// Supported forms:
//
//	https://github.com/owner/name.git
//	git@github.com:owner/name.git
//	ssh://git@github.com/owner/name.git
func ParseRemoteURL(remoteURL string) (Repo, error) {
	s := remoteURL
	s = strings.TrimPrefix(s, "ssh://")
	s = strings.TrimPrefix(s, "git@")
	s = strings.TrimPrefix(s, "https://")
	s = strings.TrimPrefix(s, "http://")

	// scp-like syntax uses a colon between host and path
	s = strings.Replace(s, ":", "/", 1)

	if !strings.HasPrefix(s, "github.com/") {
		return Repo{}, ErrNotAGitHubRemote
	}
	s = strings.TrimPrefix(s, "github.com/")
	s = strings.TrimSuffix(s, ".git")
	s = strings.TrimSuffix(s, "/")

	parts := strings.Split(s, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return Repo{}, ErrNotAGitHubRemote
	}

	return Repo{Owner: parts[0], Name: parts[1]}, nil
}
