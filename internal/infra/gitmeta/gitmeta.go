// Package gitmeta derives project metadata from a git repository.
package gitmeta

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/scattering-central/pawsdoc/internal/domain"
)

// Ensure Client implements domain.ProjectMetadata.
var _ domain.ProjectMetadata = (*Client)(nil)

// Client reads repository metadata with go-git.
type Client struct{}

// NewClient creates a new metadata client.
func NewClient() *Client {
	return &Client{}
}

// Describe inspects the repository containing dir and returns the
// project name, last commit author and HEAD short hash. A directory
// outside any repository yields an empty ProjectInfo and no error, so
// title/author defaults simply stay unset.
func (c *Client) Describe(dir string) (*domain.ProjectInfo, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return &domain.ProjectInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open repository: %w", err)
	}

	info := &domain.ProjectInfo{Name: repoName(repo, dir)}

	head, err := repo.Head()
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		// Repository without commits; name is still usable.
		return info, nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("read HEAD commit: %w", err)
	}

	info.Author = commit.Author.Name
	info.Commit = head.Hash().String()[:7]
	return info, nil
}

// repoName derives the project name from the origin remote URL, falling
// back to the worktree directory name.
func repoName(repo *git.Repository, dir string) string {
	if remote, err := repo.Remote("origin"); err == nil {
		urls := remote.Config().URLs
		if len(urls) > 0 {
			return nameFromURL(urls[0])
		}
	}
	if wt, err := repo.Worktree(); err == nil {
		return filepath.Base(wt.Filesystem.Root())
	}
	return filepath.Base(filepath.Clean(dir))
}

// nameFromURL extracts the repository name from a remote URL
// ("https://github.com/scattering-central/paws.git" -> "paws").
func nameFromURL(url string) string {
	url = strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")
	if i := strings.LastIndexAny(url, "/:"); i >= 0 {
		url = url[i+1:]
	}
	return url
}
