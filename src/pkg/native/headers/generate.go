// Package headers turns the C header shipped in a wgpu-native archive into the
// C++ wrapper header by driving the external generator scripts, and moves the
// results into an include/webgpu directory.
package headers

import (
	"context"
	"io/fs"
	"path/filepath"

	"github.com/pkg/errors"

	wfs "github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/fs"
	"github.com/wgpuctl/wgpuctl/src/pkg/infrastructure/print"
)

// ErrHeaderNotFound is returned when an extracted archive has no C header
var ErrHeaderNotFound = errors.New("low-level header not found")

// Tooling locates the generator scripts and their inputs
type Tooling struct {
	Python              string
	GeneratorScript     string
	FetchDefaultsScript string
	Template            string
	DefaultsFile        string
	ExtraDefaultsFile   string
	SpecFile            string
	HeaderName          string
	OutputHeaderName    string
}

// Generator runs the header tools through a Runner
type Generator struct {
	Runner  Runner
	Tooling Tooling
}

// EnsureDefaults runs the fetch script when the defaults or spec file is
// missing, or unconditionally when update is set.
func (g Generator) EnsureDefaults(ctx context.Context, update bool) error {
	t := g.Tooling
	if !update && wfs.Exists(t.DefaultsFile) && wfs.Exists(t.SpecFile) {
		print.Verb("using existing", t.DefaultsFile, "and", t.SpecFile)
		return nil
	}

	print.Info("Fetching default values into", t.DefaultsFile)
	err := g.Runner.Run(ctx, Command{
		Name: t.Python,
		Args: []string{
			t.FetchDefaultsScript,
			"--defaults", t.DefaultsFile,
			"--spec", t.SpecFile,
		},
	})
	return errors.Wrap(err, "failed to fetch default values")
}

// Generate writes the high-level header into targetDir from the C header found
// somewhere beneath it. It returns the path of the generated file.
func (g Generator) Generate(ctx context.Context, targetDir string) (string, error) {
	t := g.Tooling

	input, err := FindHeader(targetDir, t.HeaderName)
	if err != nil {
		return "", err
	}
	output := filepath.Join(targetDir, t.OutputHeaderName)

	print.Info("Generating", output, "from", input)
	err = g.Runner.Run(ctx, Command{
		Name: t.Python,
		Args: []string{
			t.GeneratorScript,
			"--template", t.Template,
			"--defaults", t.DefaultsFile, t.ExtraDefaultsFile,
			"--header", input,
			"--output", output,
		},
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to generate %s", output)
	}
	return output, nil
}

// FindHeader returns the shallowest file named name under dir.
func FindHeader(dir, name string) (string, error) {
	if !wfs.IsDir(dir) {
		return "", errors.Errorf("target directory %s does not exist", dir)
	}

	var found string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != name {
			return nil
		}
		if found == "" || depth(path) < depth(found) {
			found = path
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to search %s", dir)
	}
	if found == "" {
		return "", errors.Wrapf(ErrHeaderNotFound, "no %s in %s", name, dir)
	}
	return found, nil
}

func depth(path string) int {
	n := 0
	for p := filepath.Clean(path); p != filepath.Dir(p); p = filepath.Dir(p) {
		n++
	}
	return n
}
