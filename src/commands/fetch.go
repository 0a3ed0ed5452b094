package commands

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/urfave/cli.v1"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/download"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/fetch"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/headers"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/layout"
)

var fetchFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "output",
		Value: layout.DefaultRoot,
		Usage: "set output path",
	},
	cli.BoolFlag{
		Name:  "force",
		Usage: "remove an existing output path without asking",
	},
	cli.BoolFlag{
		Name:  "generate_cpp",
		Usage: "generate the C++ wrapper header for every downloaded archive",
	},
	cli.BoolFlag{
		Name:  "update_default",
		Usage: "fetch the default value files again before generating headers",
	},
	cli.BoolFlag{
		Name:  "verbose",
		Usage: "output all detailed information - useful for debugging",
	},
	cli.StringFlag{
		Name:  "config-dir",
		Usage: "read config.json or config.yaml from this directory instead of the user config directory",
	},
}

func fetchAction(c *cli.Context) error {
	output, err := fs.Expand(c.String("output"))
	if err != nil {
		return errors.Wrap(err, "failed to resolve output path")
	}

	deps := fetch.Deps{
		Releases:  download.NewGitHubReleasesAPI(gh),
		HTTP:      httpClient(),
		Confirmer: newConfirmer(),
		Generator: headers.Generator{
			Runner:  headers.NewExecRunner(),
			Tooling: cfg.Tooling(),
		},
	}
	opts := fetch.Options{
		Output:         output,
		Force:          c.Bool("force"),
		GenerateCpp:    c.Bool("generate_cpp"),
		UpdateDefaults: c.Bool("update_default"),
		Owner:          cfg.Owner,
		Repo:           cfg.Repo,
		Progress:       progressWriter(),
	}

	result, err := fetch.Run(context.Background(), deps, opts)
	if err != nil {
		return err
	}
	if result.Aborted {
		print.Info("Keeping", output, "- nothing was downloaded")
		return nil
	}

	fetch.WriteSummary(os.Stdout, result)
	return nil
}
