package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/google/go-github/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, srv *httptest.Server) *github.Client {
	t.Helper()
	gh := github.NewClient(srv.Client())
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = base
	return gh
}

func TestLatestRelease(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/gfx-rs/wgpu-native/releases/latest", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "v0.19.0",
			"created_at": "2024-01-20T10:11:12Z",
			"assets": [{
				"name": "wgpu-linux-x86_64-release.zip",
				"content_type": "application/zip",
				"browser_download_url": "https://example.com/a.zip",
				"size": 1024
			}]
		}`))
	}))
	defer srv.Close()

	api := NewGitHubReleasesAPI(newTestClient(t, srv))
	release, err := api.LatestRelease(context.Background(), "gfx-rs", "wgpu-native")
	require.NoError(t, err)
	require.Equal(t, "v0.19.0", release.TagName)
	require.Equal(t, "2024-01-20T10:11:12Z", release.CreatedAt)
	require.Equal(t, []AssetPayload{{
		Name:               "wgpu-linux-x86_64-release.zip",
		ContentType:        "application/zip",
		BrowserDownloadURL: "https://example.com/a.zip",
		Size:               1024,
	}}, release.Assets)
}

func TestLatestReleaseNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer srv.Close()

	api := NewGitHubReleasesAPI(newTestClient(t, srv))
	_, err := api.LatestRelease(context.Background(), "o", "r")
	require.Error(t, err)
}

func TestLatestReleaseMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"tag_name": `))
	}))
	defer srv.Close()

	api := NewGitHubReleasesAPI(newTestClient(t, srv))
	_, err := api.LatestRelease(context.Background(), "o", "r")
	require.Error(t, err)
}
