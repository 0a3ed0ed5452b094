// Package fetch runs the whole download: it clears the output root, reads the
// latest release, extracts every asset into its triple directory and
// optionally builds the C++ headers.
package fetch

import (
	"context"
	"io"

	"github.com/pkg/errors"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/download"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/prompt"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/headers"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/layout"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/release"
)

// Options mirrors the command line
type Options struct {
	Output         string
	Force          bool
	GenerateCpp    bool
	UpdateDefaults bool
	Owner          string
	Repo           string

	// Progress receives download progress bars, nil disables them
	Progress io.Writer
}

// Deps are the collaborators a run talks to
type Deps struct {
	Releases  download.GitHubReleasesAPI
	HTTP      download.HTTPDoer
	Confirmer prompt.Confirmer
	Generator headers.Generator
}

// Target is one extracted asset
type Target struct {
	Asset   release.Asset
	Dir     string
	Bytes   int64
	Files   int
	Headers []string
}

// Result describes what a run produced
type Result struct {
	Aborted bool
	Release release.Release
	Targets []Target
}

// Run performs a single fetch. If the user declines removing an existing
// output root, Result.Aborted is set and nothing is touched.
func Run(ctx context.Context, deps Deps, opts Options) (result Result, err error) {
	if opts.Owner == "" {
		opts.Owner = release.DefaultOwner
	}
	if opts.Repo == "" {
		opts.Repo = release.DefaultRepo
	}
	if opts.Output == "" {
		opts.Output = layout.DefaultRoot
	}

	proceed, err := layout.PrepareRoot(opts.Output, opts.Force, deps.Confirmer)
	if err != nil {
		return
	}
	if !proceed {
		result.Aborted = true
		return
	}

	result.Release, err = release.FetchLatest(ctx, deps.Releases, opts.Owner, opts.Repo)
	if err != nil {
		return result, errors.Wrap(err, "failed to fetch latest release")
	}
	describe(result.Release)

	if opts.GenerateCpp {
		if err = deps.Generator.EnsureDefaults(ctx, opts.UpdateDefaults); err != nil {
			return
		}
	}

	for _, asset := range result.Release.Assets {
		var target Target
		target, err = extractAsset(ctx, deps, opts, asset)
		if err != nil {
			return
		}
		result.Targets = append(result.Targets, target)
	}

	print.Info("Finished.")
	return result, nil
}

func extractAsset(ctx context.Context, deps Deps, opts Options, asset release.Asset) (target Target, err error) {
	target.Asset = asset
	target.Dir, err = layout.Ensure(opts.Output, asset.Triple)
	if err != nil {
		return
	}

	print.Info("Downloading", asset, "to", "'"+target.Dir+"'", "...")
	data, err := download.FetchBytes(ctx, deps.HTTP, asset.DownloadURL, opts.Progress)
	if err != nil {
		return
	}
	target.Bytes = int64(len(data))

	files, err := download.UnzipBytes(data, target.Dir)
	if err != nil {
		return target, errors.Wrapf(err, "failed to extract %s", asset.Name)
	}
	target.Files = len(files)

	if !opts.GenerateCpp {
		return target, nil
	}

	if _, err = deps.Generator.Generate(ctx, target.Dir); err != nil {
		return
	}
	target.Headers, err = headers.Relocate(target.Dir)
	return
}

func describe(r release.Release) {
	print.Info("Latest release", r.Version, "created at", r.CreatedAt.Format(release.TimestampLayout), "with", len(r.Assets), "archives")
	if _, err := r.SemVer(); err != nil {
		print.Warn("Release tag", r.Version, "is not a semantic version:", err)
	}
}
