package release

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/download"
)

type fakeReleasesAPI struct {
	payload *download.ReleasePayload
	err     error

	owner string
	repo  string
	calls int
}

func (f *fakeReleasesAPI) LatestRelease(ctx context.Context, owner, repo string) (*download.ReleasePayload, error) {
	f.calls++
	f.owner = owner
	f.repo = repo
	return f.payload, f.err
}

func TestFetchLatestFiltersByContentType(t *testing.T) {
	fake := &fakeReleasesAPI{payload: &download.ReleasePayload{
		TagName:   "v0.19.0",
		CreatedAt: "2024-01-20T10:11:12Z",
		Assets: []download.AssetPayload{
			{Name: "wgpu-linux-x86_64-release.zip", ContentType: "application/zip", BrowserDownloadURL: "https://x/1", Size: 10},
			{Name: "checksums.txt", ContentType: "text/plain", BrowserDownloadURL: "https://x/2"},
			{Name: "wgpu-macos-arm64-debug.zip", ContentType: "application/zip", BrowserDownloadURL: "https://x/3"},
			{Name: "wgpu-linux-x86_64-release.zip.sig", ContentType: "application/octet-stream", BrowserDownloadURL: "https://x/4"},
			{Name: "wgpu-windows-i686-release.zip", ContentType: "application/x-zip-compressed", BrowserDownloadURL: "https://x/5"},
		},
	}}

	release, err := FetchLatest(context.Background(), fake, DefaultOwner, DefaultRepo)
	require.NoError(t, err)
	assert.Equal(t, 1, fake.calls)
	assert.Equal(t, "gfx-rs", fake.owner)
	assert.Equal(t, "wgpu-native", fake.repo)

	assert.Equal(t, "v0.19.0", release.Version)
	assert.Equal(t, time.Date(2024, 1, 20, 10, 11, 12, 0, time.UTC), release.CreatedAt)
	assert.Equal(t, []Asset{
		{
			Triple:      Triple{System: Linux, Arch: AMD64, Build: BuildRelease},
			Name:        "wgpu-linux-x86_64-release.zip",
			DownloadURL: "https://x/1",
			Size:        10,
		},
		{
			Triple:      Triple{System: MacOS, Arch: ARM64, Build: BuildDebug},
			Name:        "wgpu-macos-arm64-debug.zip",
			DownloadURL: "https://x/3",
		},
	}, release.Assets)
}

func TestFetchLatestUnknownAssetIsFatal(t *testing.T) {
	fake := &fakeReleasesAPI{payload: &download.ReleasePayload{
		TagName:   "v0.20.0",
		CreatedAt: "2024-01-20T10:11:12Z",
		Assets: []download.AssetPayload{
			{Name: "wgpu-linux-riscv64-release.zip", ContentType: "application/zip"},
		},
	}}

	_, err := FetchLatest(context.Background(), fake, "o", "r")
	require.Error(t, err)
	assert.Equal(t, ErrUnknownToken, errors.Cause(err))
}

func TestFetchLatestPropagatesAPIError(t *testing.T) {
	fake := &fakeReleasesAPI{err: errors.New("connection refused")}

	_, err := FetchLatest(context.Background(), fake, "o", "r")
	require.EqualError(t, err, "connection refused")
}

func TestParseTimestamp(t *testing.T) {
	got, err := ParseTimestamp("2023-12-31T23:59:59Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), got)

	for _, bad := range []string{
		"",
		"2023-12-31",
		"2023-12-31T23:59:59",
		"2023-12-31T23:59:59.123Z",
		"2023-12-31T23:59:59+00:00",
		"2023-12-31 23:59:59Z",
		"1703980799",
	} {
		_, err := ParseTimestamp(bad)
		assert.Error(t, err, bad)
	}
}

func TestFromPayloadBadTimestamp(t *testing.T) {
	_, err := FromPayload(download.ReleasePayload{TagName: "v1", CreatedAt: "yesterday"})
	require.Error(t, err)
}

func TestSemVer(t *testing.T) {
	v, err := Release{Version: "v0.19.0"}.SemVer()
	require.NoError(t, err)
	assert.Equal(t, "0.19.0", v.String())

	_, err = Release{Version: "nightly"}.SemVer()
	assert.Error(t, err)
}
