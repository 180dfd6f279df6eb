package git

import (
	"testing"

	gogit "github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRemoteURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    Repo
		wantErr error
	}{
		{
			name: "https with .git suffix",
			url:  "https://github.com/golang/go.git",
			want: Repo{Owner: "golang", Name: "go"},
		},
		{
			name: "https without suffix",
			url:  "https://github.com/octocat/hello-world",
			want: Repo{Owner: "octocat", Name: "hello-world"},
		},
		{
			name: "scp-like ssh",
			url:  "git@github.com:golang/go.git",
			want: Repo{Owner: "golang", Name: "go"},
		},
		{
			name: "ssh scheme",
			url:  "ssh://git@github.com/golang/go.git",
			want: Repo{Owner: "golang", Name: "go"},
		},
		{
			name: "trailing slash",
			url:  "https://github.com/golang/go/",
			want: Repo{Owner: "golang", Name: "go"},
		},
		{
			name:    "non-github host",
			url:     "https://gitlab.com/group/project.git",
			wantErr: ErrNotAGitHubRemote,
		},
		{
			name:    "missing name",
			url:     "https://github.com/golang",
			wantErr: ErrNotAGitHubRemote,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRemoteURL(tt.url)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCurrentRepo(t *testing.T) {
	t.Run("resolves owner and name from origin", func(t *testing.T) {
		dir := t.TempDir()
		repo, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		_, err = repo.CreateRemote(&gitconfig.RemoteConfig{
			Name: "origin",
			URLs: []string{"git@github.com:octocat/hello-world.git"},
		})
		require.NoError(t, err)

		got, err := CurrentRepo(dir)
		require.NoError(t, err)
		assert.Equal(t, "octocat/hello-world", got.String())
	})

	t.Run("repository without origin", func(t *testing.T) {
		dir := t.TempDir()
		_, err := gogit.PlainInit(dir, false)
		require.NoError(t, err)

		_, err = CurrentRepo(dir)
		assert.ErrorIs(t, err, ErrNoOriginRemote)
	})

	t.Run("not a repository", func(t *testing.T) {
		_, err := CurrentRepo(t.TempDir())
		assert.ErrorIs(t, err, ErrNotARepository)
	})
}
