package download

import (
	"context"
	"fmt"

	"github.com/google/go-github/github"
	"github.com/pkg/errors"
)

// ReleasePayload is the subset of the GitHub release object that wgpuctl
// reads. Timestamps are kept as the raw strings the API sent so callers can
// apply their own format checks.
type ReleasePayload struct {
	TagName   string         `json:"tag_name"`
	CreatedAt string         `json:"created_at"`
	Assets    []AssetPayload `json:"assets"`
}

// AssetPayload is one entry of ReleasePayload.Assets
type AssetPayload struct {
	Name               string `json:"name"`
	ContentType        string `json:"content_type"`
	BrowserDownloadURL string `json:"browser_download_url"`
	Size               int64  `json:"size"`
}

// GitHubReleasesAPI wraps the go-github client for release lookups
type GitHubReleasesAPI interface {
	LatestRelease(ctx context.Context, owner, repo string) (*ReleasePayload, error)
}

type githubClientReleasesAdapter struct {
	client *github.Client
}

// NewGitHubReleasesAPI returns a GitHubReleasesAPI backed by gh.
func NewGitHubReleasesAPI(gh *github.Client) GitHubReleasesAPI {
	return githubClientReleasesAdapter{client: gh}
}

func (a githubClientReleasesAdapter) LatestRelease(ctx context.Context, owner, repo string) (*ReleasePayload, error) {
	req, err := a.client.NewRequest("GET", fmt.Sprintf("repos/%s/%s/releases/latest", owner, repo), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create release request")
	}

	release := new(ReleasePayload)
	if _, err = a.client.Do(ctx, req, release); err != nil {
		return nil, errors.Wrapf(err, "failed to get latest release of %s/%s", owner, repo)
	}
	return release, nil
}
