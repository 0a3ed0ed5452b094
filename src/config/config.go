// Package config loads the optional wgpuctl configuration file and
// environment overrides.
package config

import (
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sampctl/configor"

	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/headers"
	"github.com/wgpuctl/wgpuctl/src/pkg/native/release"
)

// EnvironmentPrefix is prepended to every env override, e.g. WGPUCTL_GITHUB_TOKEN
const EnvironmentPrefix = "WGPUCTL"

// Config represents a local configuration for wgpuctl
// nolint:lll
type Config struct {
	GitHubToken string `json:"github_token,omitempty" yaml:"github_token,omitempty" env:"WGPUCTL_GITHUB_TOKEN"` // GitHub API token for extended API rate limit
	Owner       string `json:"owner,omitempty"        yaml:"owner,omitempty"        env:"WGPUCTL_OWNER"`        // owner of the upstream repository
	Repo        string `json:"repo,omitempty"         yaml:"repo,omitempty"         env:"WGPUCTL_REPO"`         // name of the upstream repository

	Python              string `json:"python,omitempty"                yaml:"python,omitempty"                env:"WGPUCTL_PYTHON"`
	GeneratorScript     string `json:"generator_script,omitempty"      yaml:"generator_script,omitempty"      env:"WGPUCTL_GENERATOR_SCRIPT"`
	FetchDefaultsScript string `json:"fetch_defaults_script,omitempty" yaml:"fetch_defaults_script,omitempty" env:"WGPUCTL_FETCH_DEFAULTS_SCRIPT"`
	Template            string `json:"template,omitempty"              yaml:"template,omitempty"              env:"WGPUCTL_TEMPLATE"`
	DefaultsFile        string `json:"defaults_file,omitempty"         yaml:"defaults_file,omitempty"         env:"WGPUCTL_DEFAULTS_FILE"`
	ExtraDefaultsFile   string `json:"extra_defaults_file,omitempty"   yaml:"extra_defaults_file,omitempty"   env:"WGPUCTL_EXTRA_DEFAULTS_FILE"`
	SpecFile            string `json:"spec_file,omitempty"             yaml:"spec_file,omitempty"             env:"WGPUCTL_SPEC_FILE"`
	HeaderName          string `json:"header_name,omitempty"           yaml:"header_name,omitempty"           env:"WGPUCTL_HEADER_NAME"`
	OutputHeaderName    string `json:"output_header_name,omitempty"    yaml:"output_header_name,omitempty"    env:"WGPUCTL_OUTPUT_HEADER_NAME"`
}

// Default returns the built-in values used for every field left empty
func Default() Config {
	return Config{
		Owner:               release.DefaultOwner,
		Repo:                release.DefaultRepo,
		Python:              "python3",
		GeneratorScript:     "generate.py",
		FetchDefaultsScript: "fetch_defaults.py",
		Template:            "webgpu.template.hpp",
		DefaultsFile:        "defaults.txt",
		ExtraDefaultsFile:   "extra-defaults.txt",
		SpecFile:            "webgpu.yml",
		HeaderName:          "webgpu.h",
		OutputHeaderName:    "webgpu.hpp",
	}
}

// Load reads config.json or config.yaml from configDir when present, applies
// WGPUCTL_* environment overrides (including any in ./.env) and fills the rest
// from Default.
func Load(configDir string) (cfg *Config, err error) {
	cfg = new(Config)

	err = godotenv.Load(".env")
	// on unix: "open .env: no such file or directory"
	// on windows: "open .env: The system cannot find the file specified"
	if err != nil && !strings.HasPrefix(err.Error(), "open .env") {
		print.Warn("Failed to load .env:", err)
	}

	var files []string
	for _, file := range []string{
		filepath.Join(configDir, "config.json"),
		filepath.Join(configDir, "config.yaml"),
	} {
		if fs.Exists(file) {
			files = append(files, file)
			break
		}
	}
	if len(files) == 0 {
		print.Verb("No configuration file found in", configDir, "- using defaults")
	}

	cnfgr := configor.New(&configor.Config{
		EnvironmentPrefix:    EnvironmentPrefix,
		ErrorOnUnmatchedKeys: false,
	})
	if err = cnfgr.Load(cfg, files...); err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	if err = mergo.Merge(cfg, Default()); err != nil {
		return nil, errors.Wrap(err, "failed to apply default configuration")
	}

	print.Verb("Using configuration:", pretty.Sprint(cfg.redacted()))
	return cfg, nil
}

// Tooling returns the header generator settings
func (c Config) Tooling() headers.Tooling {
	return headers.Tooling{
		Python:              c.Python,
		GeneratorScript:     c.GeneratorScript,
		FetchDefaultsScript: c.FetchDefaultsScript,
		Template:            c.Template,
		DefaultsFile:        c.DefaultsFile,
		ExtraDefaultsFile:   c.ExtraDefaultsFile,
		SpecFile:            c.SpecFile,
		HeaderName:          c.HeaderName,
		OutputHeaderName:    c.OutputHeaderName,
	}
}

func (c Config) redacted() Config {
	if c.GitHubToken != "" {
		c.GitHubToken = "***"
	}
	return c
}
