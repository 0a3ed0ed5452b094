// Package download fetches GitHub release metadata and release archives and
// extracts them. Every archive is held in memory while it is extracted.
package download

import (
	"bytes"
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	pb "github.com/schollz/progressbar/v3"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

// FetchBytes downloads location in full and returns the body. When progress is
// not nil a byte counter is rendered to it while the body is read.
func FetchBytes(ctx context.Context, client HTTPDoer, location string, progress io.Writer) ([]byte, error) {
	print.Verb("downloading", location)
	if client == nil {
		client = DefaultClient()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}
	req.Header.Set("User-Agent", "wgpuctl")
	req.Header.Set("Accept", "application/octet-stream, application/*, */*")

	resp, err := client.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to download %s", location)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unexpected status code given %d for %s", resp.StatusCode, location)
	}

	var buf bytes.Buffer
	if resp.ContentLength > 0 {
		buf.Grow(int(resp.ContentLength))
	}

	var w io.Writer = &buf
	if progress != nil {
		bar := pb.NewOptions64(
			resp.ContentLength,
			pb.OptionSetWriter(progress),
			pb.OptionShowBytes(true),
			pb.OptionSetDescription("downloading"),
			pb.OptionClearOnFinish(),
		)
		defer bar.Finish()
		w = io.MultiWriter(&buf, bar)
	}

	if _, err = io.Copy(w, resp.Body); err != nil {
		return nil, errors.Wrapf(err, "failed to read response body from %s", location)
	}

	return buf.Bytes(), nil
}
