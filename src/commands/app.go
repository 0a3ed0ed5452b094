package commands

import (
	"context"
	"io"
	"os"
	"runtime"

	"github.com/google/go-github/github"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	"gopkg.in/urfave/cli.v1"

	"github.com/wgpuctl/wgpuctl/src/config"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/download"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/prompt"
)

var (
	cfg *config.Config // global config
	gh  *github.Client // a github client to use for API requests

	// swapped in tests
	newConfirmer = prompt.Default
	httpClient   = download.DefaultClient
)

func Run(args []string, version string) error {
	app := cli.NewApp()

	app.Name = "wgpuctl"
	app.Usage = "Downloads the latest wgpu-native release binaries and lays them out per platform."
	app.Version = version
	app.Flags = fetchFlags
	app.Action = fetchAction

	app.Before = func(c *cli.Context) error {
		if c.Bool("verbose") {
			print.SetVerbose()
			print.Verb("Verbose logging active")
		}
		if runtime.GOOS != "windows" {
			print.SetColoured()
		}

		configDir := c.String("config-dir")
		if configDir == "" {
			var err error
			configDir, err = fs.ConfigDir()
			if err != nil {
				return err
			}
		}

		var err error
		cfg, err = config.Load(configDir)
		if err != nil {
			return errors.Wrapf(err, "Failed to load wgpuctl config in %s", configDir)
		}

		gh = newGitHubClient(cfg.GitHubToken)
		return nil
	}
	app.OnUsageError = func(c *cli.Context, err error, isSubcommand bool) error {
		return err
	}

	return app.Run(args)
}

func newGitHubClient(token string) *github.Client {
	base := httpClient()
	if token == "" {
		return github.NewClient(base)
	}
	ctx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	return github.NewClient(oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})))
}

// progressWriter returns stderr when it is a terminal so progress bars do not
// end up in redirected logs.
func progressWriter() io.Writer {
	if isatty.IsTerminal(os.Stderr.Fd()) || isatty.IsCygwinTerminal(os.Stderr.Fd()) {
		return os.Stderr
	}
	return nil
}
