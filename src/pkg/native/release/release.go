package release

import (
	"context"
	"time"

	"github.com/Masterminds/semver"
	"github.com/pkg/errors"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/download"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

const (
	// DefaultOwner and DefaultRepo locate the upstream project
	DefaultOwner = "gfx-rs"
	DefaultRepo  = "wgpu-native"

	// ZipContentType is the only asset content type that is downloaded
	ZipContentType = "application/zip"

	// TimestampLayout is the exact shape of created_at
	TimestampLayout = "2006-01-02T15:04:05Z"
)

// Asset is one downloadable archive of a release
type Asset struct {
	Triple      Triple
	Name        string
	DownloadURL string
	Size        int64
}

func (a Asset) String() string {
	return a.Triple.String()
}

// Release is the latest tagged release and its zip assets
type Release struct {
	Version   string
	CreatedAt time.Time
	Assets    []Asset
}

// SemVer interprets the release tag as a semantic version
func (r Release) SemVer() (*semver.Version, error) {
	return semver.NewVersion(r.Version)
}

// FetchLatest queries the latest release of owner/repo and classifies its zip
// assets. Any asset that fails classification aborts the fetch.
func FetchLatest(ctx context.Context, api download.GitHubReleasesAPI, owner, repo string) (release Release, err error) {
	payload, err := api.LatestRelease(ctx, owner, repo)
	if err != nil {
		return
	}
	return FromPayload(*payload)
}

// FromPayload converts the raw API response into a Release.
func FromPayload(payload download.ReleasePayload) (release Release, err error) {
	release.Version = payload.TagName

	release.CreatedAt, err = ParseTimestamp(payload.CreatedAt)
	if err != nil {
		err = errors.Wrapf(err, "release %s", payload.TagName)
		return
	}

	for _, a := range payload.Assets {
		if a.ContentType != ZipContentType {
			print.Verb("skipping asset", a.Name, "with content type", a.ContentType)
			continue
		}

		var triple Triple
		triple, err = ParseFilename(a.Name)
		if err != nil {
			return
		}

		release.Assets = append(release.Assets, Asset{
			Triple:      triple,
			Name:        a.Name,
			DownloadURL: a.BrowserDownloadURL,
			Size:        a.Size,
		})
	}

	return release, nil
}

// ParseTimestamp accepts exactly YYYY-MM-DDTHH:MM:SSZ. time.Parse tolerates
// fractional seconds, so the value must also survive a round trip.
func ParseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(TimestampLayout, value)
	if err == nil && t.Format(TimestampLayout) != value {
		err = errors.New("fractional seconds are not allowed")
	}
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "unexpected timestamp %q", value)
	}
	return t, nil
}
